package extract

import "github.com/atozflooring/po-extract/internal/template"

// applyOneSolutions treats the SITE CONTACT person as the customer,
// same as Profile Build.
func applyOneSolutions(s *Service, text string, rec *Record, tpl *template.Template) {
	overrideCustomerFromSiteContact(text, rec)
}
