package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atozflooring/po-extract/internal/template"
)

func TestCleanAmbroseDescription(t *testing.T) {
	desc := "Please note the below has been provided\n" +
		"Quantity Unit\n" +
		"Supply and install carpet to Master Bedroom\n" +
		"12 hrs labour"

	got := cleanAmbroseDescription(desc)

	assert.Equal(t, "Supply and install carpet to Master Bedroom\n12 hrs labour", got)
}

func TestCleanAmbroseDescriptionAllBoilerplateKeepsOriginal(t *testing.T) {
	desc := "Please note the below has been provided"

	assert.Equal(t, desc, cleanAmbroseDescription(desc))
}

func TestOverrideCustomerFromSiteContact(t *testing.T) {
	rec := NewRecord()
	rec.CustomerName = "Some Insurance Company"

	text := "SITE CONTACT: John Smith\nSITE CONTACT PHONE: 0412 345 678\n"
	overrideCustomerFromSiteContact(text, rec)

	assert.Equal(t, "John Smith", rec.CustomerName)
	assert.Equal(t, "John", rec.FirstName)
	assert.Equal(t, "Smith", rec.LastName)
	assert.Equal(t, "0412 345 678", rec.Phone)
}

func TestOverrideCustomerRejectsShortPhone(t *testing.T) {
	rec := NewRecord()

	text := "SITE CONTACT: John Smith\nSITE CONTACT PHONE: 123\n"
	overrideCustomerFromSiteContact(text, rec)

	assert.Empty(t, rec.Phone)
}

func TestExtractStandaloneContacts(t *testing.T) {
	rec := NewRecord()
	rec.CustomerName = "Jane Citizen"

	text := "Authorised Contact: Mary Jones\n(H) 7899737 (M) 0409483445\n"
	extractStandaloneContacts(text, rec)

	require.Len(t, rec.AlternateContacts, 1)
	c := rec.AlternateContacts[0]
	assert.Equal(t, "Authorised Contact", c.Type)
	assert.Equal(t, "Mary Jones", c.Name)
	assert.Equal(t, "7899737", c.Phone)
	assert.Equal(t, "0409483445", c.Phone2)
}

func TestExtractContactSectionsDecisionMaker(t *testing.T) {
	rec := NewRecord()
	rec.CustomerName = "Jane Citizen"

	text := "BEST CONTACT DETAILS\n" +
		"Decision Maker: Alice Owner\n" +
		"Mobile: 0400 123 123\n" +
		"Email: alice@example.com\n" +
		"SUPERVISOR DETAILS\n"
	extractContactSections(text, rec)

	assert.Equal(t, "Alice Owner", rec.AlternateContactName)
	assert.Equal(t, "0400 123 123", rec.AlternateContactPhone)
	assert.Equal(t, "alice@example.com", rec.AlternateContactEmail)
	require.NotEmpty(t, rec.AlternateContacts)
	assert.Equal(t, "Decision Maker", rec.AlternateContacts[0].Type)
}

func TestExtractContactSectionsSkipsMainCustomer(t *testing.T) {
	rec := NewRecord()
	rec.CustomerName = "Alice Owner"

	text := "BEST CONTACT DETAILS\n" +
		"Decision Maker: Alice Owner\n" +
		"Mobile: 0400 123 123\n" +
		"JOB DETAILS\n"
	extractContactSections(text, rec)

	assert.Empty(t, rec.AlternateContactName)
	assert.Empty(t, rec.AlternateContacts)
}

func TestApplyTownsend(t *testing.T) {
	tpl := template.Lookup(template.KeyTownsend)
	rec := NewRecord()

	text := "Site Contact Name\nJohn Smith\n" +
		"Site Contact Phone\n0412 345 678\n" +
		"Customer Email\njohn@example.com\n" +
		"Site Address\n12 Example St, Chandler, QLD 4155\n" +
		"Subtotal\n$2,500.00\n" +
		"Supervisor\nSam Foreman\n" +
		"Supervisor Contact\n0400 999 888\n"

	applyTownsend(nil, text, rec, tpl)

	assert.Equal(t, "John Smith", rec.CustomerName)
	assert.Equal(t, "0412 345 678", rec.Phone)
	assert.Equal(t, "john@example.com", rec.Email)
	assert.Equal(t, "12 Example St", rec.Address1)
	assert.Equal(t, "Chandler", rec.City)
	assert.True(t, rec.DollarValue.Equal(decimal.RequireFromString("2500.00")))
	assert.Equal(t, "Sam Foreman", rec.SupervisorName)
	assert.Equal(t, "0400 999 888", rec.SupervisorPhone)
}

func TestApplyAustralianRestoration(t *testing.T) {
	tpl := template.Lookup(template.KeyAustralianRestoration)
	rec := NewRecord()

	text := "Project Manager: Chris Manager\n" +
		"P: 0400 555 666\n" +
		"E: chris@restoration.example\n" +
		"Customer Phone: 0411 222 333\n"

	applyAustralianRestoration(nil, text, rec, tpl)

	assert.Equal(t, "Chris Manager", rec.SupervisorName)
	assert.Equal(t, "0400 555 666", rec.SupervisorPhone)
	assert.Equal(t, "chris@restoration.example", rec.SupervisorEmail)
	assert.Equal(t, "0411 222 333", rec.Phone)
}

func TestProfileBuildDescription(t *testing.T) {
	text := "NOTES: Hi Adrian\n" +
		"Please replace the wet carpet in both bedrooms\n" +
		"SITE LOCATION: 5 Sample St, Dakabin, QLD 4503\n" +
		"Flooring\n" +
		"Carpet supply and lay 40m2\n" +
		"Subtotal\n$3,000.00\n"

	got := profileBuildDescription(text)

	assert.Contains(t, got, "Please replace the wet carpet")
	assert.Contains(t, got, "Flooring Details:\nCarpet supply and lay 40m2")
	assert.NotContains(t, got, "SITE LOCATION")
}
