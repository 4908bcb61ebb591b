package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atozflooring/po-extract/internal/template"
)

// Contact is an additional person attached to a job (decision maker,
// site contact, property manager and so on).
type Contact struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Phone2 string `json:"phone2,omitempty"`
	Email  string `json:"email"`
}

// Record is everything extracted from one purchase order document.
// Missing fields stay zero valued; only the essential trio (PO number,
// customer name, dollar value) gates retries.
type Record struct {
	// Customer identity
	CustomerName string `json:"customer_name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BusinessName string `json:"business_name"`

	// Job site address
	Address  string `json:"address"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	PostCode string `json:"zip_code"`
	Country  string `json:"country"`

	// Delivery details, defaulted from the site address when absent
	ShipToName     string `json:"ship_to_name"`
	ShipToAddress  string `json:"ship_to_address"`
	ShipToAddress1 string `json:"ship_to_address1"`
	ShipToAddress2 string `json:"ship_to_address2"`
	ShipToCity     string `json:"ship_to_city"`
	ShipToState    string `json:"ship_to_state"`
	ShipToPostCode string `json:"ship_to_zip"`

	// Contact channels
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Phone2      string   `json:"phone2"`
	Mobile      string   `json:"mobile"`
	HomePhone   string   `json:"home_phone"`
	WorkPhone   string   `json:"work_phone"`
	ExtraPhones []string `json:"extra_phones"`

	// Purchase order
	PONumber           string          `json:"po_number"`
	ScopeOfWork        string          `json:"scope_of_work"`
	DescriptionOfWorks string          `json:"description_of_works"`
	DollarValue        decimal.Decimal `json:"dollar_value"`

	// Job details. JobNumber is rewritten by the cleaner to
	// "supervisor name supervisor phone"; ActualJobNumber keeps the
	// document's own value.
	JobNumber       string `json:"job_number"`
	ActualJobNumber string `json:"actual_job_number"`
	SupervisorName  string `json:"supervisor_name"`
	SupervisorPhone string `json:"supervisor_phone"`
	SupervisorEmail string `json:"supervisor_email"`

	// Alternate contacts
	AlternateContactName  string    `json:"alternate_contact_name"`
	AlternateContactPhone string    `json:"alternate_contact_phone"`
	AlternateContactEmail string    `json:"alternate_contact_email"`
	AlternateContacts     []Contact `json:"alternate_contacts"`

	// Schedule
	CommencementDate string `json:"commencement_date"`
	InstallationDate string `json:"installation_date"`

	// Provenance
	RawText         string       `json:"raw_text"`
	TemplateKey     template.Key `json:"template_key"`
	Backend         string       `json:"backend"`
	MismatchWarning string       `json:"builder_mismatch_warning,omitempty"`
}

// NewRecord returns a record with defaults applied.
func NewRecord() *Record {
	return &Record{
		Country:     "Australia",
		DollarValue: decimal.Zero,
	}
}

// EssentialFieldsPresent reports whether the fields that make a record
// usable downstream were all found.
func (r *Record) EssentialFieldsPresent() bool {
	return r.PONumber != "" && r.CustomerName != "" && !r.DollarValue.IsZero()
}

// Override copies every non-empty field of manual over r. The payload
// builder uses it so operator corrections win over extracted values.
func (r *Record) Override(manual *Record) {
	if manual == nil {
		return
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&r.CustomerName, manual.CustomerName)
	set(&r.FirstName, manual.FirstName)
	set(&r.LastName, manual.LastName)
	set(&r.BusinessName, manual.BusinessName)
	set(&r.Address, manual.Address)
	set(&r.Address1, manual.Address1)
	set(&r.Address2, manual.Address2)
	set(&r.City, manual.City)
	set(&r.State, manual.State)
	set(&r.PostCode, manual.PostCode)
	set(&r.Country, manual.Country)
	set(&r.ShipToName, manual.ShipToName)
	set(&r.ShipToAddress, manual.ShipToAddress)
	set(&r.ShipToAddress1, manual.ShipToAddress1)
	set(&r.ShipToAddress2, manual.ShipToAddress2)
	set(&r.ShipToCity, manual.ShipToCity)
	set(&r.ShipToState, manual.ShipToState)
	set(&r.ShipToPostCode, manual.ShipToPostCode)
	set(&r.Email, manual.Email)
	set(&r.Phone, manual.Phone)
	set(&r.Phone2, manual.Phone2)
	set(&r.Mobile, manual.Mobile)
	set(&r.HomePhone, manual.HomePhone)
	set(&r.WorkPhone, manual.WorkPhone)
	set(&r.PONumber, manual.PONumber)
	set(&r.ScopeOfWork, manual.ScopeOfWork)
	set(&r.DescriptionOfWorks, manual.DescriptionOfWorks)
	set(&r.JobNumber, manual.JobNumber)
	set(&r.ActualJobNumber, manual.ActualJobNumber)
	set(&r.SupervisorName, manual.SupervisorName)
	set(&r.SupervisorPhone, manual.SupervisorPhone)
	set(&r.SupervisorEmail, manual.SupervisorEmail)
	set(&r.AlternateContactName, manual.AlternateContactName)
	set(&r.AlternateContactPhone, manual.AlternateContactPhone)
	set(&r.AlternateContactEmail, manual.AlternateContactEmail)
	set(&r.CommencementDate, manual.CommencementDate)
	set(&r.InstallationDate, manual.InstallationDate)
	if !manual.DollarValue.IsZero() {
		r.DollarValue = manual.DollarValue
	}
	if len(manual.ExtraPhones) > 0 {
		r.ExtraPhones = manual.ExtraPhones
	}
	if len(manual.AlternateContacts) > 0 {
		r.AlternateContacts = manual.AlternateContacts
	}
}

// FillFrom copies src values into fields of r that are still empty.
// Retry passes use it so a later backend's text never overwrites a
// previously resolved value.
func (r *Record) FillFrom(src *Record) {
	fill := func(dst *string, v string) {
		if *dst == "" && v != "" {
			*dst = v
		}
	}
	fill(&r.CustomerName, src.CustomerName)
	fill(&r.FirstName, src.FirstName)
	fill(&r.LastName, src.LastName)
	fill(&r.BusinessName, src.BusinessName)
	fill(&r.Address, src.Address)
	fill(&r.Address1, src.Address1)
	fill(&r.Address2, src.Address2)
	fill(&r.City, src.City)
	fill(&r.State, src.State)
	fill(&r.PostCode, src.PostCode)
	fill(&r.ShipToName, src.ShipToName)
	fill(&r.ShipToAddress, src.ShipToAddress)
	fill(&r.ShipToAddress1, src.ShipToAddress1)
	fill(&r.ShipToAddress2, src.ShipToAddress2)
	fill(&r.ShipToCity, src.ShipToCity)
	fill(&r.ShipToState, src.ShipToState)
	fill(&r.ShipToPostCode, src.ShipToPostCode)
	fill(&r.Email, src.Email)
	fill(&r.Phone, src.Phone)
	fill(&r.Phone2, src.Phone2)
	fill(&r.Mobile, src.Mobile)
	fill(&r.HomePhone, src.HomePhone)
	fill(&r.WorkPhone, src.WorkPhone)
	fill(&r.PONumber, src.PONumber)
	fill(&r.ScopeOfWork, src.ScopeOfWork)
	fill(&r.DescriptionOfWorks, src.DescriptionOfWorks)
	fill(&r.JobNumber, src.JobNumber)
	fill(&r.ActualJobNumber, src.ActualJobNumber)
	fill(&r.SupervisorName, src.SupervisorName)
	fill(&r.SupervisorPhone, src.SupervisorPhone)
	fill(&r.SupervisorEmail, src.SupervisorEmail)
	fill(&r.AlternateContactName, src.AlternateContactName)
	fill(&r.AlternateContactPhone, src.AlternateContactPhone)
	fill(&r.AlternateContactEmail, src.AlternateContactEmail)
	fill(&r.CommencementDate, src.CommencementDate)
	fill(&r.InstallationDate, src.InstallationDate)
	if r.DollarValue.IsZero() {
		r.DollarValue = src.DollarValue
	}
	if len(r.ExtraPhones) == 0 {
		r.ExtraPhones = src.ExtraPhones
	}
	if len(r.AlternateContacts) == 0 {
		r.AlternateContacts = src.AlternateContacts
	}
}

// SplitName populates FirstName/LastName from a full name. A single
// token becomes the last name.
func (r *Record) SplitName(full string) {
	parts := strings.Fields(full)
	switch {
	case len(parts) >= 2:
		r.FirstName = parts[0]
		r.LastName = strings.Join(parts[1:], " ")
	case len(parts) == 1:
		r.FirstName = ""
		r.LastName = parts[0]
	}
}
