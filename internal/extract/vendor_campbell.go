package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atozflooring/po-extract/internal/template"
)

var (
	campbellSiteContactRe = regexp.MustCompile(`(?i)Site\s+Contact:\s*\n([A-Za-z\s\-'\.]+?)(?:\s*-\s*[^,\n]+)?(?:\n|Phone:|Contact)`)
	campbellContactNoRe   = regexp.MustCompile(`(?i)Contact\s+No[.:]?\s*\n([0-9\s\-\(\)]+)`)
	campbellSiteAddrRe    = regexp.MustCompile(`(?i)Site\s+Address:\s*\n([^\n]+)`)
	subtotalRe            = regexp.MustCompile(`(?i)Subtotal\s*\n\s*\$?([\d,]+\.?\d*)`)
)

// applyCampbell fills fields that Campbell Construction prints on the
// line after their label rather than beside it.
func applyCampbell(s *Service, text string, rec *Record, tpl *template.Template) {
	if rec.CustomerName == "" {
		if m := campbellSiteContactRe.FindStringSubmatch(text); m != nil {
			rec.CustomerName = strings.TrimSpace(m[1])
		}
	}
	if rec.Phone == "" {
		if m := campbellContactNoRe.FindStringSubmatch(text); m != nil {
			rec.Phone = strings.TrimSpace(m[1])
		}
	}
	if rec.Address == "" {
		if m := campbellSiteAddrRe.FindStringSubmatch(text); m != nil {
			rec.Address = strings.TrimSpace(m[1])
			parseAddress(rec.Address, rec)
		}
	}
	if rec.DollarValue.IsZero() {
		if m := subtotalRe.FindStringSubmatch(text); m != nil {
			if v, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "")); err == nil {
				rec.DollarValue = v
			}
		}
	}
}
