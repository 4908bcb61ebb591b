package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddressCommaFormat(t *testing.T) {
	rec := NewRecord()
	parseAddress("22 FAIRY WREN CIRCUIT, Dakabin, QLD 4503", rec)

	assert.Equal(t, "22 FAIRY WREN CIRCUIT", rec.Address1)
	assert.Equal(t, "Dakabin", rec.City)
	assert.Equal(t, "QLD", rec.State)
	assert.Equal(t, "4503", rec.PostCode)
}

func TestParseAddressNoCommas(t *testing.T) {
	rec := NewRecord()
	parseAddress("151 Warriewood Street Chandler QLD 4155", rec)

	assert.Equal(t, "QLD", rec.State)
	assert.Equal(t, "4155", rec.PostCode)
}

func TestParseAddressUnitWithComma(t *testing.T) {
	rec := NewRecord()
	parseAddress("Unit 1/22 FAIRY WREN CIRCUIT, Dakabin QLD 4503", rec)

	assert.Equal(t, "Unit 1/22 FAIRY WREN CIRCUIT", rec.Address1)
	assert.Equal(t, "Dakabin", rec.City)
	assert.Equal(t, "4503", rec.PostCode)
}

func TestParseAddressUnparseableKeepsWhole(t *testing.T) {
	rec := NewRecord()
	parseAddress("Lot 7 somewhere without a postcode", rec)

	assert.Equal(t, "Lot 7 somewhere without a postcode", rec.Address1)
	assert.Empty(t, rec.City)
	assert.Empty(t, rec.PostCode)
}

func TestParseAddressBackfillsShipTo(t *testing.T) {
	rec := NewRecord()
	parseAddress("22 FAIRY WREN CIRCUIT, Dakabin, QLD 4503", rec)

	assert.Equal(t, rec.Address1, rec.ShipToAddress1)
	assert.Equal(t, rec.City, rec.ShipToCity)
	assert.Equal(t, rec.State, rec.ShipToState)
	assert.Equal(t, rec.PostCode, rec.ShipToPostCode)
}

func TestParseAddressKeepsExistingShipTo(t *testing.T) {
	rec := NewRecord()
	rec.ShipToAddress1 = "1 Depot Rd"
	parseAddress("22 FAIRY WREN CIRCUIT, Dakabin, QLD 4503", rec)

	assert.Equal(t, "1 Depot Rd", rec.ShipToAddress1)
}

func TestParseAmbroseAddressStreetTypeSplit(t *testing.T) {
	rec := NewRecord()
	parseAmbroseAddress("4 Pampas Court Capalaba QLD 4157", rec)

	assert.Equal(t, "4 Pampas Court", rec.Address1)
	assert.Equal(t, "Capalaba", rec.City)
	assert.Equal(t, "QLD", rec.State)
	assert.Equal(t, "4157", rec.PostCode)
}

func TestParseAmbroseAddressCommaFormat(t *testing.T) {
	rec := NewRecord()
	parseAmbroseAddress("12 Example St, Chandler, QLD 4155", rec)

	assert.Equal(t, "12 Example St", rec.Address1)
	assert.Equal(t, "Chandler", rec.City)
}
