package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atozflooring/po-extract/internal/config"
)

func TestCleanSplitsCustomerName(t *testing.T) {
	c := NewCleaner(config.DefaultConfig())

	rec := NewRecord()
	rec.CustomerName = "Jane Anne Citizen"
	c.Clean(rec)

	assert.Equal(t, "Jane", rec.FirstName)
	assert.Equal(t, "Anne Citizen", rec.LastName)
}

func TestCleanSingleTokenNameBecomesLastName(t *testing.T) {
	c := NewCleaner(config.DefaultConfig())

	rec := NewRecord()
	rec.CustomerName = "Citizen"
	c.Clean(rec)

	assert.Equal(t, "", rec.FirstName)
	assert.Equal(t, "Citizen", rec.LastName)
}

func TestCleanRewritesJobNumber(t *testing.T) {
	c := NewCleaner(config.DefaultConfig())

	rec := NewRecord()
	rec.JobNumber = "J-100"
	rec.SupervisorName = "Sam Foreman"
	rec.SupervisorPhone = "0400111222"
	c.Clean(rec)

	assert.Equal(t, "Sam Foreman 0400111222", rec.JobNumber)
	assert.Equal(t, "J-100", rec.ActualJobNumber)
}

func TestCleanKeepsJobNumberWithoutSupervisor(t *testing.T) {
	c := NewCleaner(config.DefaultConfig())

	rec := NewRecord()
	rec.JobNumber = "J-100"
	c.Clean(rec)

	assert.Equal(t, "J-100", rec.JobNumber)
	assert.Empty(t, rec.ActualJobNumber)
}

func TestCleanDescription(t *testing.T) {
	c := NewCleaner(config.DefaultConfig())

	rec := NewRecord()
	rec.DescriptionOfWorks = "Quantity Unit Supply and install carpet\n$45m2  to  bedrooms"
	c.Clean(rec)

	assert.Equal(t, "Supply and install carpet - $45/m2 to bedrooms", rec.DescriptionOfWorks)
}

func TestCleanClearsBusinessName(t *testing.T) {
	c := NewCleaner(config.DefaultConfig())

	rec := NewRecord()
	rec.BusinessName = "A TO Z FLOORING SOLUTIONS"
	c.Clean(rec)

	assert.Empty(t, rec.BusinessName)
}

func TestCleanFiltersExtraPhones(t *testing.T) {
	cfg := config.DefaultConfig()
	c := NewCleaner(cfg)

	rec := NewRecord()
	rec.Phone = "0412 111 222"
	rec.SupervisorName = "Sam Foreman"
	rec.SupervisorPhone = "0400111222"
	rec.ExtraPhones = []string{
		"0412111222",           // already the main phone
		"0400111222",           // supervisor
		cfg.ExcludedNumbers[0], // company number
		"0433999888",           // genuine extra
	}
	c.Clean(rec)

	assert.Equal(t, []string{"0433999888"}, rec.ExtraPhones)
}

func TestCleanFiltersAlternateContacts(t *testing.T) {
	c := NewCleaner(config.DefaultConfig())

	rec := NewRecord()
	rec.AlternateContacts = []Contact{
		{Type: "Site Contact", Name: "Bob Neighbour", Phone: "0411222333"},
		{Type: "Best Contact", Name: "Email"},
		{Type: "Best Contact", Name: "No Details"},
		{Type: "Real Estate Agent", Name: "Pat Agent\n", Email: "pat@example.com"},
	}
	c.Clean(rec)

	assert.Len(t, rec.AlternateContacts, 2)
	assert.Equal(t, "Bob Neighbour", rec.AlternateContacts[0].Name)
	assert.Equal(t, "Pat Agent", rec.AlternateContacts[1].Name)
}

func TestCleanStripsTrailingLines(t *testing.T) {
	c := NewCleaner(config.DefaultConfig())

	rec := NewRecord()
	rec.CustomerName = "Jane Citizen\nSome trailing junk"
	rec.SupervisorName = "Sam Foreman\nPhone: 0400"
	c.Clean(rec)

	assert.Equal(t, "Jane Citizen", rec.CustomerName)
	assert.Equal(t, "Sam Foreman", rec.SupervisorName)
}
