package extract

import (
	"regexp"
	"strings"

	"github.com/atozflooring/po-extract/internal/template"
)

var (
	ambroseCustomerFallbackPatterns = ci(
		`Insured\s+Owner[:\s]*\n([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Insured\s+Owner[:\s]+([A-Za-z\s\-'\.]+?)(?:\n|Authorised|BEST|$)`,
		`(?:Customer|Client|Name)[:\s]*\n?([A-Z][A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Bill\s*To[:\s]*\n?([A-Za-z\s\-'\.]+?)(?:\n|$)`,
	)

	ambroseSupervisorSectionRe = regexp.MustCompile(`(?i)Supervisor\s+Details[:\s]*\n([\s\S]+?)(?:BEST\s+CONTACT|JOB\s+DETAILS|$)`)
	ambroseSupNamePatterns     = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Name[:\s]*([A-Za-z\s\-'\.]+?)(?:\n|Phone|Mobile|$)`),
		regexp.MustCompile(`(?im)^([A-Za-z\s\-'\.]+?)(?:\n|Phone|Mobile)`),
	}
	ambroseSupPhonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Phone[:\s]*([0-9\s\-\(\)]+?)(?:\n|Mobile|$)`),
		regexp.MustCompile(`(?i)Mobile[:\s]*([0-9\s\-\(\)]+?)(?:\n|Phone|$)`),
		regexp.MustCompile(`(\(?0\d{1,2}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4})`),
	}

	contactTypeRe    = regexp.MustCompile(`(?i)Contact\s+Type[:\s]*([A-Za-z\s]+?)(?:\n|$)`)
	contextNameRe    = regexp.MustCompile(`(?m)^\s*([A-Za-z\s\-'\.]+?)(?:\n|Mobile|Phone|Email|$)`)
	contextPhoneRe   = regexp.MustCompile(`(?i)(?:Mobile|Phone|Home)[:\s]*([0-9\s\-\(\)]+)`)
	contextEmailRe   = regexp.MustCompile(`(?i)Email[:\s]*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	nearbyPhoneRe    = regexp.MustCompile(`(?i)(?:Mobile|Phone)[:\s]*([0-9\s\-\(\)]+)`)
	authPhonePairRe  = regexp.MustCompile(`(?i)Authorised\s+Contact\s*#?[:\s]*\(H\)\s*([0-9\s\-\(\)]+)\s*\(M\)\s*([0-9\s\-\(\)]+)`)
	authNameBeforeRe = regexp.MustCompile(`(?i)Authorised\s+Contact[:\s]*([A-Za-z\s\-'\.]+?)(?:\n|Authorised\s+Contact\s*#|$)`)

	decisionMakerLineRe  = regexp.MustCompile(`(?i)Decision\s+Maker[:\s]*([A-Za-z\s\-'\.]+?)(?:\n|$)`)
	mobileNumberLineRe   = regexp.MustCompile(`(?i)Mobile\s+Number[:\s]*([0-9\s\-\(\)]+)`)
	siteContactLineRe    = regexp.MustCompile(`(?i)Site\s+Contact[:\s]*([A-Za-z\s\-'\.]+?)(?:\n|Contact\s+Type|$)`)
	occupantContactRe    = regexp.MustCompile(`(?i)Occupant\s+Contact[:\s]*([A-Za-z\s\-'\.]*?)(?:\n|Property\s+Manager|Real\s+Estate|BEST\s+CONTACT|$)`)
	propertyManagerRe    = regexp.MustCompile(`(?i)Property\s+Manager[:\s]*([A-Za-z\s\-'\.]+?)(?:\n|Real\s+Estate|BEST\s+CONTACT|$)`)
	realEstateContactRe  = regexp.MustCompile(`(?i)Real\s+Estate\s+Contact[:\s]*([A-Za-z\s\-'\.]+?)(?:\n|BEST\s+CONTACT|$)`)
	homePhoneLooseRe     = regexp.MustCompile(`(?i)Home[:\s]*([0-9\s\-\(\)]+)`)
	workPhoneLooseRe     = regexp.MustCompile(`(?i)Work[:\s]*([0-9\s\-\(\)]+)`)
	mobilePhoneLooseRe   = regexp.MustCompile(`(?i)Mobile[:\s]*([0-9\s\-\(\)]+)`)
	anyEmailRe           = regexp.MustCompile(`[\w\.-]+@[\w\.-]+\.\w+`)
	backfillPhoneWindows = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Mobile[:\s]*([0-9\s\-\(\)]{8,})`),
		regexp.MustCompile(`(?i)Phone[:\s]*([0-9\s\-\(\)]{8,})`),
		regexp.MustCompile(`([0-9]{2}[)\s\-]*[0-9]{4}[)\s\-]*[0-9]{4})`),
		regexp.MustCompile(`(\([0-9]{2}\)[)\s\-]*[0-9]{4}[)\s\-]*[0-9]{4})`),
		regexp.MustCompile(`([0-9]{4}[)\s\-]*[0-9]{3}[)\s\-]*[0-9]{3})`),
	}

	ambroseFallbackPhonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Phone:\s*(\d[\d\s-]+)`),
		regexp.MustCompile(`(?i)Mobile:\s*(\d[\d\s-]+)`),
		regexp.MustCompile(`(?i)Contact No\.:\s*(\d[\d\s-]+)`),
		regexp.MustCompile(`(?i)Phone1:\s*(\d[\d\s-]+)`),
		regexp.MustCompile(`(?i)Phone2:\s*(\d[\d\s-]+)`),
		regexp.MustCompile(`(?i)Home:\s*(\d[\d\s-]+)`),
		regexp.MustCompile(`(?i)Work:\s*(\d[\d\s-]+)`),
	}
)

// Boilerplate markers in Ambrose work descriptions. A marker line and
// everything after it is dropped until real work content shows up
// again.
var ambroseSkipKeywords = []string{
	"notification_important", "please note", "below has been provided",
	"as an example only", "adjust the break down", "invoice to reflect",
	"quantity unit", "quantity", "unit",
}

var ambroseResumeKeywords = []string{
	"master", "bedroom", "carpet", "supply", "install", "remove", "repair", "hrs",
}

// cleanAmbroseDescription strips the example-pricing disclaimer and
// table headers that Ambrose embeds in the Description of Works.
func cleanAmbroseDescription(desc string) string {
	var kept []string
	skipping := false

	for _, line := range strings.Split(desc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		skip := false
		for _, kw := range ambroseSkipKeywords {
			if strings.Contains(lower, kw) {
				skip = true
				break
			}
		}
		if skip || lower == "quantity" || lower == "unit" || lower == "quantity unit" {
			skipping = true
			continue
		}

		if skipping {
			resume := strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-")
			if !resume {
				for _, kw := range ambroseResumeKeywords {
					if strings.Contains(lower, kw) {
						resume = true
						break
					}
				}
			}
			if resume {
				skipping = false
			}
		}

		if !skipping {
			kept = append(kept, line)
		}
	}

	if len(kept) == 0 {
		return desc
	}
	return strings.Join(kept, "\n")
}

// ambroseCustomerFallback tries the looser Insured Owner variants when
// the template's own customer patterns miss.
func ambroseCustomerFallback(text string, rec *Record) {
	for _, re := range ambroseCustomerFallbackPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if len(name) > 2 {
			rec.CustomerName = name
			return
		}
	}
}

// applyAmbrose handles the Ambrose Construct Group layout: a bounded
// supervisor section, street-type aware addresses and a BEST CONTACT
// DETAILS section that lists every contact tied to the claim.
func applyAmbrose(s *Service, text string, rec *Record, tpl *template.Template) {
	ambroseSupervisor(text, rec)
	ambroseAddress(text, rec, tpl)
	ambroseContacts(s, text, rec)
}

func ambroseSupervisor(text string, rec *Record) {
	m := ambroseSupervisorSectionRe.FindStringSubmatch(text)
	if m == nil {
		return
	}
	section := m[1]
	for _, re := range ambroseSupNamePatterns {
		if nm := re.FindStringSubmatch(strings.TrimSpace(section)); nm != nil {
			rec.SupervisorName = strings.TrimSpace(nm[1])
			break
		}
	}
	for _, re := range ambroseSupPhonePatterns {
		if pm := re.FindStringSubmatch(section); pm != nil {
			rec.SupervisorPhone = strings.TrimSpace(pm[1])
			break
		}
	}
}

func ambroseAddress(text string, rec *Record, tpl *template.Template) {
	for _, re := range tpl.Address {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if strings.Contains(strings.ToLower(candidate), "tax invoice") {
			continue
		}
		rec.Address = candidate
		parseAmbroseAddress(candidate, rec)
		return
	}
}

func ambroseContacts(s *Service, text string, rec *Record) {
	mainName := strings.ToLower(strings.TrimSpace(rec.CustomerName))
	var phones []string

	addPhone := func(p string, priority bool) {
		p = strings.TrimSpace(p)
		if p == "" {
			return
		}
		for _, existing := range phones {
			if existing == p {
				return
			}
		}
		if priority {
			phones = append([]string{p}, phones...)
		} else {
			phones = append(phones, p)
		}
	}

	hasContact := func(name string) bool {
		for _, c := range rec.AlternateContacts {
			if strings.EqualFold(c.Name, name) {
				return true
			}
		}
		return false
	}

	var contactText string
	if m := bestContactSectionRe.FindStringSubmatch(text); m != nil {
		contactText = m[1]
	}

	if contactText != "" {
		// Blocks like "Contact Type: Authorised Contact" followed by
		// name, phones and email within the next 150 characters.
		for _, loc := range contactTypeRe.FindAllStringSubmatchIndex(contactText, -1) {
			ctype := strings.TrimSpace(contactText[loc[2]:loc[3]])
			context := contactText[loc[1]:min(loc[1]+150, len(contactText))]

			var name string
			if nm := contextNameRe.FindStringSubmatch(context); nm != nil {
				name = strings.TrimSpace(nm[1])
			}
			phoneMatches := contextPhoneRe.FindAllStringSubmatch(context, -1)
			var phone, phone2 string
			if len(phoneMatches) > 0 {
				phone = strings.TrimSpace(phoneMatches[0][1])
			}
			if len(phoneMatches) > 1 {
				phone2 = strings.TrimSpace(phoneMatches[1][1])
			}
			var email string
			if em := contextEmailRe.FindStringSubmatch(context); em != nil {
				email = em[1]
			}

			if name == "" || strings.ToLower(name) == mainName || len(name) <= 2 {
				continue
			}
			rec.AlternateContacts = append(rec.AlternateContacts, Contact{
				Type: ctype, Name: name, Phone: phone, Phone2: phone2, Email: email,
			})

			lower := strings.ToLower(ctype)
			priority := lower == "authorised contact" || lower == "site contact"
			addPhone(phone, priority)
			addPhone(phone2, false)

			if (lower == "decision maker" || priority) && rec.AlternateContactName == "" {
				rec.AlternateContactName = name
				rec.AlternateContactPhone = phone
				rec.AlternateContactEmail = email
			}
		}

		// Standalone labels inside the section.
		for _, m := range mobileNumberLineRe.FindAllStringSubmatch(contactText, -1) {
			addPhone(m[1], false)
		}
		for _, re := range []*regexp.Regexp{decisionMakerLineRe, siteContactLineRe} {
			for _, loc := range re.FindAllStringSubmatchIndex(contactText, -1) {
				name := strings.TrimSpace(contactText[loc[2]:loc[3]])
				if name == "" || strings.ToLower(name) == mainName || len(name) <= 2 || hasContact(name) {
					continue
				}
				start := max(loc[0]-50, 0)
				end := min(loc[1]+100, len(contactText))
				context := contactText[start:end]

				var phone, email string
				if pm := nearbyPhoneRe.FindStringSubmatch(context); pm != nil {
					phone = strings.TrimSpace(pm[1])
				}
				if em := contextEmailRe.FindStringSubmatch(context); em != nil {
					email = em[1]
				}
				label := "Decision Maker"
				if re == siteContactLineRe {
					label = "Site Contact"
				}
				rec.AlternateContacts = append(rec.AlternateContacts, Contact{
					Type: label, Name: name, Phone: phone, Email: email,
				})
				addPhone(phone, false)
			}
		}

		// "Authorised Contact #: (H) 7899737 (M) 0409483445"
		if am := authPhonePairRe.FindStringSubmatchIndex(contactText); am != nil {
			home := strings.TrimSpace(contactText[am[2]:am[3]])
			mobile := strings.TrimSpace(contactText[am[4]:am[5]])
			before := contactText[max(am[0]-100, 0):am[0]]

			name := "Authorised Contact"
			if nm := authNameBeforeRe.FindStringSubmatch(before); nm != nil {
				name = strings.TrimSpace(nm[1])
			}
			if strings.ToLower(name) != mainName {
				rec.AlternateContacts = append(rec.AlternateContacts, Contact{
					Type: "Authorised Contact", Name: name, Phone: mobile, Phone2: home,
				})
				addPhone(mobile, true)
				addPhone(home, false)
				if rec.AlternateContactName == "" {
					rec.AlternateContactName = name
					rec.AlternateContactPhone = mobile
				}
			}
		}
	}

	// Contacts listed outside BEST CONTACT DETAILS.
	outside := []struct {
		label string
		re    *regexp.Regexp
	}{
		{"Occupant Contact", occupantContactRe},
		{"Property Manager", propertyManagerRe},
		{"Real Estate Contact", realEstateContactRe},
	}
	for _, oc := range outside {
		for _, loc := range oc.re.FindAllStringSubmatchIndex(text, -1) {
			name := strings.TrimSpace(text[loc[2]:loc[3]])
			if name == "" || strings.ToLower(name) == mainName || len(name) <= 2 {
				continue
			}
			start := max(loc[0]-50, 0)
			end := min(loc[1]+100, len(text))
			context := text[start:end]

			var phone, email string
			if pm := nearbyPhoneRe.FindStringSubmatch(context); pm != nil {
				phone = strings.TrimSpace(pm[1])
			}
			if em := contextEmailRe.FindStringSubmatch(context); em != nil {
				email = em[1]
			}
			rec.AlternateContacts = append(rec.AlternateContacts, Contact{
				Type: oc.label, Name: name, Phone: phone, Email: email,
			})
			addPhone(phone, false)
		}
	}

	// Backfill phones for contacts that came through without one by
	// scanning a window around where their name appears.
	for i := range rec.AlternateContacts {
		c := &rec.AlternateContacts[i]
		if strings.TrimSpace(c.Phone) != "" || c.Name == "" || c.Name == "Email" || len(strings.TrimSpace(c.Name)) <= 2 {
			continue
		}
		idx := strings.Index(text, c.Name)
		if idx < 0 {
			continue
		}
		window := text[max(idx-150, 0):min(idx+len(c.Name)+150, len(text))]
		for _, re := range backfillPhoneWindows {
			pm := re.FindStringSubmatch(window)
			if pm == nil {
				continue
			}
			clean := digitsOnly(pm[1])
			if len(clean) >= 8 {
				c.Phone = clean
				addPhone(clean, false)
				break
			}
		}
	}

	if len(phones) > 4 {
		phones = phones[:4]
	}
	rec.ExtraPhones = phones

	// Promote the decision maker (or first contact) into the main
	// contact fields.
	if len(rec.AlternateContacts) > 0 {
		primary := &rec.AlternateContacts[0]
		for i := range rec.AlternateContacts {
			if strings.EqualFold(rec.AlternateContacts[i].Type, "decision maker") {
				primary = &rec.AlternateContacts[i]
				break
			}
		}
		if primary.Email != "" && rec.Email == "" {
			rec.Email = primary.Email
		}
		if primary.Phone != "" {
			rec.Mobile = primary.Phone
			rec.Phone = primary.Phone
		}
		if primary.Phone2 != "" {
			rec.Phone2 = primary.Phone2
		}
	}

	if contactText != "" {
		if m := homePhoneLooseRe.FindStringSubmatch(contactText); m != nil {
			rec.HomePhone = strings.TrimSpace(m[1])
		}
		if m := workPhoneLooseRe.FindStringSubmatch(contactText); m != nil {
			rec.WorkPhone = strings.TrimSpace(m[1])
		}

		if rec.Email == "" {
			if m := contextEmailRe.FindStringSubmatch(contactText); m != nil {
				rec.Email = m[1]
			}
		}
		directPhones := []struct {
			field *string
			re    *regexp.Regexp
		}{
			{&rec.Mobile, mobilePhoneLooseRe},
			{&rec.HomePhone, homePhoneLooseRe},
			{&rec.WorkPhone, workPhoneLooseRe},
		}
		for _, dp := range directPhones {
			if *dp.field != "" {
				continue
			}
			m := dp.re.FindStringSubmatch(contactText)
			if m == nil {
				continue
			}
			clean := digitsOnly(m[1])
			if len(clean) >= 8 {
				*dp.field = clean
				if dp.field == &rec.Mobile && rec.Phone == "" {
					rec.Phone = clean
				}
			}
		}

		if len(phones) > 0 && rec.Phone == "" {
			rec.Phone = phones[0]
		}
		if len(phones) > 0 && rec.Mobile == "" {
			rec.Mobile = phones[0]
		}
		if len(phones) > 1 && rec.Phone2 == "" {
			rec.Phone2 = phones[1]
		}
	}

	// Last resort simple patterns.
	if rec.Email == "" || rec.Phone == "" || rec.Mobile == "" {
		var simple []string
		for _, re := range ambroseFallbackPhonePatterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			clean := digitsOnly(m[1])
			if len(clean) < 8 {
				continue
			}
			dup := false
			for _, p := range simple {
				if p == clean {
					dup = true
					break
				}
			}
			if !dup {
				simple = append(simple, clean)
			}
		}
		if len(simple) > 0 && rec.Phone == "" {
			rec.Phone = simple[0]
		}
		if len(simple) > 1 && rec.Mobile == "" {
			rec.Mobile = simple[1]
		}
		if len(simple) > 2 && rec.HomePhone == "" {
			rec.HomePhone = simple[2]
		}
		if len(simple) > 3 && rec.WorkPhone == "" {
			rec.WorkPhone = simple[3]
		}
		if rec.Email == "" {
			if m := anyEmailRe.FindString(text); m != "" {
				rec.Email = m
			}
		}
	}
}
