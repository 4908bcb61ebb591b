package extract

import (
	"regexp"
	"strings"

	"github.com/atozflooring/po-extract/internal/config"
)

var (
	trailingLineRe   = regexp.MustCompile(`\n.*$`)
	quantityHeaderRe = regexp.MustCompile(`^Quantity\s+Unit\s+`)
	ratePerSquareRe  = regexp.MustCompile(`\n\$\d+m2`)
	multiSpaceRe     = regexp.MustCompile(`\s{2,}`)
)

// Cleaner normalizes a parsed record before it is shown or exported.
type Cleaner struct {
	cfg *config.Config
}

func NewCleaner(cfg *config.Config) *Cleaner {
	return &Cleaner{cfg: cfg}
}

// Clean strips stray lines out of name fields, rewrites the job number
// to the supervisor's name and phone, and filters the phone and contact
// pools down to customer-related entries.
func (c *Cleaner) Clean(rec *Record) {
	if rec.CustomerName != "" && (rec.FirstName == "" || rec.LastName == "") {
		rec.SplitName(trailingLineRe.ReplaceAllString(rec.CustomerName, ""))
	}

	rec.SupervisorName = trailingLineRe.ReplaceAllString(rec.SupervisorName, "")
	rec.CustomerName = trailingLineRe.ReplaceAllString(rec.CustomerName, "")
	rec.Address = trailingLineRe.ReplaceAllString(rec.Address, "")

	// Business information is always ours, never the customer's.
	rec.BusinessName = ""

	if rec.DescriptionOfWorks != "" {
		d := rec.DescriptionOfWorks
		d = quantityHeaderRe.ReplaceAllString(d, "")
		d = ratePerSquareRe.ReplaceAllString(d, " - $45/m2")
		d = multiSpaceRe.ReplaceAllString(d, " ")
		rec.DescriptionOfWorks = d
	}

	// The order form's job number field carries the supervisor's name
	// and phone; the document's own number moves aside.
	if rec.SupervisorName != "" && rec.SupervisorPhone != "" {
		rec.ActualJobNumber = rec.JobNumber
		rec.JobNumber = rec.SupervisorName + " " + rec.SupervisorPhone
	}

	rec.ExtraPhones = c.filterExtraPhones(rec)
	rec.AlternateContacts = filterAlternateContacts(rec.AlternateContacts)
}

func (c *Cleaner) filterExtraPhones(rec *Record) []string {
	if len(rec.ExtraPhones) == 0 {
		return rec.ExtraPhones
	}

	exclude := make(map[string]bool)
	for _, n := range c.cfg.ExcludedNumbers {
		exclude[digitsOnly(n)] = true
	}
	exclude[digitsOnly(rec.ActualJobNumber)] = true
	exclude[digitsOnly(rec.SupervisorPhone)] = true

	assigned := map[string]bool{
		digitsOnly(rec.Phone):     true,
		digitsOnly(rec.Mobile):    true,
		digitsOnly(rec.HomePhone): true,
		digitsOnly(rec.WorkPhone): true,
	}

	var kept []string
	for _, phone := range rec.ExtraPhones {
		clean := digitsOnly(phone)
		if clean == "" || exclude[clean] || assigned[clean] {
			continue
		}
		kept = append(kept, phone)
	}
	return kept
}

// filterAlternateContacts drops entries whose name is empty or the
// literal "Email" artifact, or that carry neither phone nor email.
func filterAlternateContacts(contacts []Contact) []Contact {
	var kept []Contact
	for _, contact := range contacts {
		name := strings.TrimSpace(strings.ReplaceAll(contact.Name, "\n", " "))
		phone := strings.TrimSpace(contact.Phone)
		email := strings.TrimSpace(contact.Email)
		if name == "" || strings.EqualFold(name, "email") || (phone == "" && email == "") {
			continue
		}
		kept = append(kept, Contact{
			Type:   contact.Type,
			Name:   name,
			Phone:  phone,
			Phone2: strings.TrimSpace(contact.Phone2),
			Email:  email,
		})
	}
	return kept
}
