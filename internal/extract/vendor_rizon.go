package extract

import (
	"regexp"
	"strings"

	"github.com/atozflooring/po-extract/internal/template"
)

// The Client / Site Details grid box: the customer's name on the first
// line, then up to three address lines.
var rizonClientSiteRe = regexp.MustCompile(`(?i)Client\s*/\s*Site\s+Details[:\s]*\n[A-Za-z\s]+?\n([\s\S]+?)(?:\n\n|$)`)

// applyRizon pulls the site address out of the Client / Site Details
// grid when nothing else found one.
func applyRizon(s *Service, text string, rec *Record, tpl *template.Template) {
	if rec.Address != "" {
		return
	}
	m := rizonClientSiteRe.FindStringSubmatch(text)
	if m == nil {
		return
	}
	lines := strings.Split(strings.TrimSpace(m[1]), "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}
	addr := strings.Join(lines, " ")
	if addr == "" {
		return
	}
	rec.Address = addr
	parseAddress(addr, rec)
}
