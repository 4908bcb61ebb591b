package extract

import (
	"regexp"
	"strings"

	"github.com/atozflooring/po-extract/internal/template"
)

var (
	arcProjectManagerRe = regexp.MustCompile(`(?i)Project\s+Manager[:\s]*([A-Za-z\s\-'\.]+?)(?:\n|P:|$)`)
	arcSupPhoneRe       = regexp.MustCompile(`(?i)P:\s*([0-9\s\-\(\)]+?)(?:\n|E:|$)`)
	arcSupEmailRe       = regexp.MustCompile(`(?i)E:\s*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	arcCustomerPhoneRe  = regexp.MustCompile(`(?i)Customer\s+Phone[:\s]*([0-9\s\-\(\)]+)`)
)

// applyAustralianRestoration reads the project manager block, which
// doubles as the supervisor, and the customer phone line.
func applyAustralianRestoration(s *Service, text string, rec *Record, tpl *template.Template) {
	if m := arcProjectManagerRe.FindStringSubmatch(text); m != nil {
		rec.SupervisorName = strings.TrimSpace(m[1])
	}
	if m := arcSupPhoneRe.FindStringSubmatch(text); m != nil {
		rec.SupervisorPhone = strings.TrimSpace(m[1])
	}
	if m := arcSupEmailRe.FindStringSubmatch(text); m != nil {
		rec.SupervisorEmail = strings.TrimSpace(m[1])
	}
	if m := arcCustomerPhoneRe.FindStringSubmatch(text); m != nil {
		rec.Phone = strings.TrimSpace(m[1])
	}
}
