package extract

import (
	"regexp"
	"strings"

	"github.com/atozflooring/po-extract/internal/template"
)

var (
	siteContactOverrideRe = regexp.MustCompile(`(?i)SITE\s+CONTACT:\s*([A-Za-z\s\-'\.]+?)\n`)
	siteContactPhoneRe    = regexp.MustCompile(`(?i)SITE\s+CONTACT\s+PHONE:\s*([0-9\s\-\(\)]+?)\n`)
	attendanceRe          = regexp.MustCompile(`(?i)ATTENDANCE\s+SCHEDULED\s+FOR:\s*(\d{1,2}/\d{1,2}/\d{4})\s*to\s*(\d{1,2}/\d{1,2}/\d{4})`)
	pbSupervisorRe        = regexp.MustCompile(`(?i)2/133\s+REDLAND\s+BAY\s+RD[\s\S]*?Supervisor:\s*\n([A-Za-z\s]+?)(?:\n|ABN:|Phone:|$)`)
	pbEmailRe             = regexp.MustCompile(`(?i)([a-zA-Z0-9._%+-]+@profilebuildgroup\.com\.au)`)
	pbSiteLocationRe      = regexp.MustCompile(`(?i)SITE\s+LOCATION:\s*([^\n]+)`)

	pbNotesRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)NOTES:\s*(Hi\s+[A-Za-z]+[\s\S]*?)(?:Date:|Client:|Job Number:|SITE LOCATION:|ATTENDANCE|Flooring|Subtotal|Total|$)`),
		regexp.MustCompile(`(?i)NOTES:\s*([A-Za-z][\s\S]*?)(?:Date:|Client:|Job Number:|SITE LOCATION:|ATTENDANCE|Flooring|Subtotal|Total|$)`),
	}
	pbFlooringRe = regexp.MustCompile(`(?i)Flooring\s*\n([\s\S]+?)(?:Subtotal|Total|NOTES|$)`)

	pbNoteStopRe      = regexp.MustCompile(`(?i)^(To:|Profile Build Group|ABN:|Phone:|Email:|Supervisor:|QBCC|Date:|Client:|Job Number:|SITE|ATTENDANCE)`)
	pbPhoneLineRe     = regexp.MustCompile(`^[0-9\s\-\(\)]+$`)
	pbStatePostRe     = regexp.MustCompile(`^[A-Z]{2,3}\s+\d{4}$`)
	pbFlooringStopRe  = regexp.MustCompile(`(?i)^(PO|Work Order|Customer|Phone|Email):`)
	pbNotesHeaderLead = regexp.MustCompile(`(?i)^(To:|Profile|ABN|Phone|Email)`)

	pbHeaderScrubRes = []*regexp.Regexp{
		regexp.MustCompile(`(?is)To:\s*A to Z Flooring Solutions.*?(?:Hi\s+[A-Za-z]+|$)`),
		regexp.MustCompile(`(?is)Profile Build Group.*?(?:Hi\s+[A-Za-z]+|$)`),
		regexp.MustCompile(`(?is)\d{11}.*?(?:Hi\s+[A-Za-z]+|$)`),
		regexp.MustCompile(`(?is)[A-Z]{2,3}\s+\d{4}.*?(?:Hi\s+[A-Za-z]+|$)`),
		regexp.MustCompile(`(?is)T:\s*\d+.*?(?:Hi\s+[A-Za-z]+|$)`),
		regexp.MustCompile(`(?is)E:\s*\w+@.*?(?:Hi\s+[A-Za-z]+|$)`),
		regexp.MustCompile(`(?is)Supervisor:.*?(?:Hi\s+[A-Za-z]+|$)`),
		regexp.MustCompile(`(?is)ABN:.*?(?:Hi\s+[A-Za-z]+|$)`),
		regexp.MustCompile(`(?is)QBCC.*?(?:Hi\s+[A-Za-z]+|$)`),
	}
)

// applyProfileBuild handles the Profile Build Group work order. The
// customer is the SITE CONTACT, not the Client line, which names the
// insurer.
func applyProfileBuild(s *Service, text string, rec *Record, tpl *template.Template) {
	overrideCustomerFromSiteContact(text, rec)

	if m := attendanceRe.FindStringSubmatch(text); m != nil {
		rec.CommencementDate = strings.TrimSpace(m[1])
		rec.InstallationDate = strings.TrimSpace(m[2])
	}

	if m := pbSupervisorRe.FindStringSubmatch(text); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			rec.SupervisorName = name
		}
	}
	if rec.SupervisorName != "" {
		// Phone is printed directly under the supervisor's name, with
		// or without a "Phone:" label.
		labeled := regexp.MustCompile(`(?i)Supervisor:\s*\n` + regexp.QuoteMeta(rec.SupervisorName) + `[\s\S]*?Phone:\s*\n([0-9\s\-\(\)]+)`)
		if m := labeled.FindStringSubmatch(text); m != nil {
			phone := strings.TrimSpace(m[1])
			if n := len(digitsOnly(phone)); n >= 8 && n <= 12 {
				rec.SupervisorPhone = phone
			}
		} else {
			unlabeled := regexp.MustCompile(`(?i)Supervisor:\s*\n` + regexp.QuoteMeta(rec.SupervisorName) + `[\s\S]{0,100}?([0-9\s\-\(\)]+)`)
			if m := unlabeled.FindStringSubmatch(text); m != nil {
				phone := strings.TrimSpace(m[1])
				if n := len(digitsOnly(phone)); n >= 8 && n <= 12 {
					rec.SupervisorPhone = phone
				}
			}
		}
	}

	if rec.Email == "" {
		if m := pbEmailRe.FindStringSubmatch(text); m != nil {
			rec.Email = m[1]
		}
	}

	if m := pbSiteLocationRe.FindStringSubmatch(text); m != nil {
		addr := strings.TrimSpace(m[1])
		rec.Address = addr
		parseAddress(addr, rec)
	}

	if desc := profileBuildDescription(text); desc != "" {
		rec.DescriptionOfWorks = desc
	}
}

// profileBuildDescription assembles the NOTES section plus the flooring
// line items, dropping any header content that leaks into either.
func profileBuildDescription(text string) string {
	var parts []string

	var notes string
	for _, re := range pbNotesRes {
		if m := re.FindStringSubmatch(text); m != nil {
			notes = strings.TrimSpace(m[1])
			break
		}
	}
	if notes != "" {
		var kept []string
		for _, line := range strings.Split(notes, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if pbNoteStopRe.MatchString(line) || pbPhoneLineRe.MatchString(line) ||
				pbStatePostRe.MatchString(line) || strings.HasPrefix(line, "{") ||
				strings.HasPrefix(line, `"`) {
				break
			}
			kept = append(kept, line)
		}
		if len(kept) > 0 {
			final := strings.Join(kept, "\n")
			for _, re := range pbHeaderScrubRes {
				final = re.ReplaceAllString(final, "")
			}
			final = strings.TrimSpace(final)
			if len(final) > 10 && !pbNotesHeaderLead.MatchString(final) {
				parts = append(parts, final)
			}
		}
	}

	if m := pbFlooringRe.FindStringSubmatch(text); m != nil {
		var kept []string
		for _, line := range strings.Split(strings.TrimSpace(m[1]), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if pbFlooringStopRe.MatchString(line) || strings.HasPrefix(line, "{") ||
				strings.HasPrefix(line, `"`) {
				break
			}
			kept = append(kept, line)
		}
		if len(kept) > 0 {
			parts = append(parts, "Flooring Details:\n"+strings.Join(kept, "\n"))
		}
	}

	return strings.Join(parts, "\n\n")
}

// overrideCustomerFromSiteContact replaces whatever the generic parse
// found with the SITE CONTACT person and pulls their phone number.
// Shared with One Solutions, whose orders use the same labels.
func overrideCustomerFromSiteContact(text string, rec *Record) {
	if m := siteContactOverrideRe.FindStringSubmatch(text); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			rec.CustomerName = name
			rec.SplitName(name)
		}
	}
	if m := siteContactPhoneRe.FindStringSubmatch(text); m != nil {
		phone := strings.TrimSpace(m[1])
		if n := len(digitsOnly(phone)); n >= 8 && n <= 12 {
			rec.Phone = phone
		}
	}
}
