package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atozflooring/po-extract/internal/template"
)

var (
	townsendContactNameRe  = regexp.MustCompile(`(?i)Site\s+Contact\s+Name\s*\n([A-Za-z\s\(\)\-'\.]+?)(?:\n|Atf|atf|Mr|Ms|Mrs)`)
	townsendContactPhoneRe = regexp.MustCompile(`(?i)Site\s+Contact\s+Phone\s*\n([0-9\s\-\(\)]+)`)
	townsendEmailRe        = regexp.MustCompile(`(?i)Customer\s+Email\s*\n([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	townsendSiteAddrRe     = regexp.MustCompile(`(?i)Site\s+Address\s*\n([^\n]+)`)
	townsendSupervisorRe   = regexp.MustCompile(`(?i)Supervisor\s*\n([A-Za-z\s\-'\.]+?)(?:\n|Site)`)
	townsendSupPhoneRe     = regexp.MustCompile(`(?i)Supervisor\s+Contact\s*\n([0-9\s\-\(\)]+)`)
)

// applyTownsend handles Townsend Building Services, whose values sit on
// the line below each label.
func applyTownsend(s *Service, text string, rec *Record, tpl *template.Template) {
	if rec.CustomerName == "" {
		if m := townsendContactNameRe.FindStringSubmatch(text); m != nil {
			rec.CustomerName = strings.TrimSpace(m[1])
		}
	}
	if rec.Phone == "" {
		if m := townsendContactPhoneRe.FindStringSubmatch(text); m != nil {
			rec.Phone = strings.TrimSpace(m[1])
		}
	}
	if rec.Email == "" {
		if m := townsendEmailRe.FindStringSubmatch(text); m != nil {
			rec.Email = strings.TrimSpace(m[1])
		}
	}
	if rec.Address == "" {
		if m := townsendSiteAddrRe.FindStringSubmatch(text); m != nil {
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
	if rec.SupervisorName == "" {
		if m := townsendSupervisorRe.FindStringSubmatch(text); m != nil {
			rec.SupervisorName = strings.TrimSpace(m[1])
		}
	}
	if rec.SupervisorPhone == "" {
		if m := townsendSupPhoneRe.FindStringSubmatch(text); m != nil {
			rec.SupervisorPhone = strings.TrimSpace(m[1])
		}
	}
}
