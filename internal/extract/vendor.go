package extract

import (
	"regexp"
	"strings"

	"github.com/atozflooring/po-extract/internal/template"
)

// vendorExtension runs after the generic parse for builders whose
// layouts need their own handling. Extensions overwrite generic results
// where the builder's layout is authoritative.
type vendorExtension func(s *Service, text string, rec *Record, tpl *template.Template)

var vendorExtensions = map[template.Key]vendorExtension{
	template.KeyAmbrose:               applyAmbrose,
	template.KeyProfileBuild:          applyProfileBuild,
	template.KeyOneSolutions:          applyOneSolutions,
	template.KeyCampbell:              applyCampbell,
	template.KeyTownsend:              applyTownsend,
	template.KeyAustralianRestoration: applyAustralianRestoration,
	template.KeyRizon:                 applyRizon,
}

// Labeled contact sections used by most builders. Each section runs to
// the next major heading.
var contactSectionHeaders = []struct {
	label  string
	header *regexp.Regexp
}{
	{"Best Contact", regexp.MustCompile(`(?i)BEST\s+CONTACT\s+DETAILS([\s\S]+?)(?:SUPERVISOR|JOB\s+DETAILS|$)`)},
	{"Real Estate Agent", regexp.MustCompile(`(?i)REAL\s+ESTATE\s+AGENT([\s\S]+?)(?:SUPERVISOR|JOB\s+DETAILS|$)`)},
	{"Site Contact", regexp.MustCompile(`(?i)SITE\s+CONTACT([\s\S]+?)(?:SUPERVISOR|JOB\s+DETAILS|$)`)},
	{"Authorised Contact", regexp.MustCompile(`(?i)AUTHORI[ZS]ED\s+CONTACT([\s\S]+?)(?:SUPERVISOR|JOB\s+DETAILS|$)`)},
}

var (
	decisionMakerRe      = regexp.MustCompile(`(?i)Decision Maker:?[ \t]*([A-Za-z\s\-'\.]+?)(?:\n|$)`)
	contactSectionName   = regexp.MustCompile(`(?i)Name:?[ \t]*([A-Za-z\s\-'\.]+?)(?:\n|$)`)
	contactSectionPhone  = regexp.MustCompile(`(?i)(Mobile|Phone|Contact):?[ \t]*([\d\(\)\-\s]+)`)
	contactSectionMobile = regexp.MustCompile(`(?i)Mobile:?[ \t]*([\d\(\)\-\s]+)`)
	contactSectionEmail  = regexp.MustCompile(`(?i)Email:?[ \t]*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)

	standaloneContactRes = map[string]*regexp.Regexp{
		"Authorised Contact": regexp.MustCompile(`(?i)Authorised Contact:?\s*([A-Za-z\s\-'\.]+)\n?(\(H\)\s*\d+)?\s*(\(M\)\s*\d+)?`),
		"Site Contact":       regexp.MustCompile(`(?i)Site Contact:?\s*([A-Za-z\s\-'\.]+)\n?(\(H\)\s*\d+)?\s*(\(M\)\s*\d+)?`),
	}
)

// extractContactSections reads the labeled contact sections used by
// everyone except Ambrose, pulling out the decision maker and any named
// alternates.
func extractContactSections(text string, rec *Record) {
	mainName := strings.ToLower(strings.TrimSpace(rec.CustomerName))

	for _, sec := range contactSectionHeaders {
		m := sec.header.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		body := m[1]

		if dm := decisionMakerRe.FindStringSubmatch(body); dm != nil {
			name := strings.TrimSpace(dm[1])
			var phone, email string
			if pm := contactSectionMobile.FindStringSubmatch(body); pm != nil {
				phone = strings.TrimSpace(pm[1])
			}
			if em := contactSectionEmail.FindStringSubmatch(body); em != nil {
				email = strings.TrimSpace(em[1])
			}
			if name != "" && strings.ToLower(name) != mainName {
				rec.AlternateContactName = name
				rec.AlternateContactPhone = phone
				rec.AlternateContactEmail = email
				rec.AlternateContacts = append(rec.AlternateContacts, Contact{
					Type: "Decision Maker", Name: name, Phone: phone, Email: email,
				})
			}
		}

		var name, phone, email string
		if nm := contactSectionName.FindStringSubmatch(body); nm != nil {
			name = strings.TrimSpace(nm[1])
		}
		if pm := contactSectionPhone.FindStringSubmatch(body); pm != nil {
			phone = strings.TrimSpace(pm[2])
		}
		if em := contactSectionEmail.FindStringSubmatch(body); em != nil {
			email = strings.TrimSpace(em[1])
		}
		if name != "" && strings.ToLower(name) != mainName {
			rec.AlternateContacts = append(rec.AlternateContacts, Contact{
				Type: sec.label, Name: name, Phone: phone, Email: email,
			})
		}
		if (sec.label == "Best Contact" || sec.label == "Real Estate Agent") &&
			rec.AlternateContactName == "" && name != "" && strings.ToLower(name) != mainName {
			rec.AlternateContactName = name
			rec.AlternateContactPhone = phone
			rec.AlternateContactEmail = email
		}
	}
}

// extractStandaloneContacts catches "Authorised Contact: Name" style
// lines that appear outside any section, with optional (H)/(M) numbers.
func extractStandaloneContacts(text string, rec *Record) {
	mainName := strings.ToLower(strings.TrimSpace(rec.CustomerName))

	for _, label := range []string{"Authorised Contact", "Site Contact"} {
		re := standaloneContactRes[label]
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(m[1])
			phone1 := strings.TrimSpace(strings.ReplaceAll(m[2], "(H)", ""))
			phone2 := strings.TrimSpace(strings.ReplaceAll(m[3], "(M)", ""))
			if name == "" || strings.ToLower(name) == mainName {
				continue
			}
			rec.AlternateContacts = append(rec.AlternateContacts, Contact{
				Type: label, Name: name, Phone: phone1, Phone2: phone2,
			})
		}
	}
}
