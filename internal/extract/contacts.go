package extract

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	labeledEmailPatterns = ci(
		`Email:?\s*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`,
		`E-mail:?\s*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`,
	)

	bestContactSectionRe = regexp.MustCompile(`(?i)BEST\s+CONTACT\s+DETAILS([\s\S]+?)(?:SUPERVISOR|JOB\s+DETAILS|$)`)

	// Candidate phone shapes seen across builders. Matches are
	// post-filtered on digit count since the shapes overlap with ABNs
	// and job numbers.
	phoneScanRe = regexp.MustCompile(`(?:\+?61|0)?(?:\(?\d{2,4}\)?\s?\d{3,4}\s?\d{3,4}|\d{4}\s?\d{3}\s?\d{3}|\d{8,10})`)

	abnRe           = regexp.MustCompile(`ABN:\s*(\d+)`)
	jobNumberLineRe = regexp.MustCompile(`Job\s+Number:?\s*([0-9-]+)`)

	bestContactMobileRe = regexp.MustCompile(`(?i)Mobile:?\s*(\(?\d{4}\)?[-.\s]?\d{3}[-.\s]?\d{3})`)
	bestContactHomeRe   = regexp.MustCompile(`(?i)Home:?\s*(\(?\d{2}\)?[-.\s]?\d{4}[-.\s]?\d{4})`)
	bestContactWorkRe   = regexp.MustCompile(`(?i)Work:?\s*(\(?\d{4}\)?[-.\s]?\d{3}[-.\s]?\d{3})`)

	mobilePatterns = ci(
		`Mobile:?\s*(\(?\d{4}\)?[-.\s]?\d{3}[-.\s]?\d{3})`,
		`Mobile:?\s*(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})`,
		`M:?\s*(\(?\d{4}\)?[-.\s]?\d{3}[-.\s]?\d{3})`,
	)

	genericPhonePatterns = ci(
		`Phone:?\s*(\(?\d{2}\)?[-.\s]?\d{4}[-.\s]?\d{4})`,
		`Phone:?\s*(\(?\d{4}\)?[-.\s]?\d{3}[-.\s]?\d{3})`,
		`Tel:?\s*(\(?\d{2}\)?[-.\s]?\d{4}[-.\s]?\d{4})`,
		`Contact:?\s*(\(?\d{2}\)?[-.\s]?\d{4}[-.\s]?\d{4})`,
	)
)

// extractContactDetails fills email and phone fields plus the extra
// phone pool from anywhere in the document.
func (s *Service) extractContactDetails(text string, rec *Record) {
	var bestContact string
	if m := bestContactSectionRe.FindStringSubmatch(text); m != nil {
		bestContact = m[1]
	}

	// Email: prefer the best-contact section, then labeled emails
	// anywhere, then any address that is not a company one.
	if bestContact != "" {
		if v := extractField(bestContact, labeledEmailPatterns); v != "" {
			rec.Email = v
		}
	}
	if rec.Email == "" {
		for _, re := range labeledEmailPatterns {
			if m := re.FindStringSubmatch(text); m != nil {
				addr := strings.TrimSpace(m[1])
				if !s.cfg.IsCompanyEmail(addr) {
					rec.Email = addr
					break
				}
			}
		}
	}
	if rec.Email == "" {
		for _, addr := range emailRe.FindAllString(text, -1) {
			if !s.cfg.IsCompanyEmail(addr) {
				rec.Email = addr
				break
			}
		}
	}

	// Collect every plausible phone number, excluding company numbers,
	// the ABN, the job number and the supervisor's own phone.
	exclude := make(map[string]bool)
	for _, n := range s.cfg.ExcludedNumbers {
		exclude[digitsOnly(n)] = true
	}
	if m := abnRe.FindStringSubmatch(text); m != nil {
		exclude[digitsOnly(m[1])] = true
	}
	if m := jobNumberLineRe.FindStringSubmatch(text); m != nil {
		exclude[digitsOnly(m[1])] = true
	}
	if rec.SupervisorPhone != "" {
		exclude[digitsOnly(rec.SupervisorPhone)] = true
	}

	var scanned []string
	for _, raw := range phoneScanRe.FindAllString(text, -1) {
		clean := digitsOnly(raw)
		if len(clean) < 8 || len(clean) > 12 {
			continue
		}
		if exclude[clean] {
			continue
		}
		if clean == digitsOnly(rec.Phone) || clean == digitsOnly(rec.Mobile) ||
			clean == digitsOnly(rec.HomePhone) || clean == digitsOnly(rec.WorkPhone) {
			continue
		}
		scanned = append(scanned, strings.TrimSpace(raw))
	}

	if bestContact != "" {
		if m := bestContactMobileRe.FindStringSubmatch(bestContact); m != nil {
			rec.Mobile = strings.TrimSpace(m[1])
			if rec.Phone == "" {
				rec.Phone = rec.Mobile
			}
		}
		if m := bestContactHomeRe.FindStringSubmatch(bestContact); m != nil {
			rec.HomePhone = strings.TrimSpace(m[1])
			if rec.Phone == "" {
				rec.Phone = rec.HomePhone
			}
		}
		if m := bestContactWorkRe.FindStringSubmatch(bestContact); m != nil {
			rec.WorkPhone = strings.TrimSpace(m[1])
		}
	}

	if rec.Mobile == "" {
		if v := extractField(text, mobilePatterns); v != "" {
			rec.Mobile = v
			if rec.Phone == "" {
				rec.Phone = rec.Mobile
			}
		}
	}
	if rec.Phone == "" {
		rec.Phone = extractField(text, genericPhonePatterns)
	}

	// Anything scanned that is not already assigned goes into the extra
	// pool, digits only. The cleaner filters it again at the end.
	for _, raw := range scanned {
		clean := digitsOnly(raw)
		assigned := false
		for _, v := range []string{rec.Phone, rec.Mobile, rec.HomePhone, rec.WorkPhone} {
			if v != "" && digitsOnly(v) == clean {
				assigned = true
				break
			}
		}
		if assigned {
			continue
		}
		dup := false
		for _, p := range rec.ExtraPhones {
			if p == clean {
				dup = true
				break
			}
		}
		if !dup {
			rec.ExtraPhones = append(rec.ExtraPhones, clean)
		}
	}
}
