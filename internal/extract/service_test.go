package extract

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atozflooring/po-extract/internal/config"
	"github.com/atozflooring/po-extract/internal/template"
	"github.com/atozflooring/po-extract/internal/textextract"
)

type fakeBackend struct {
	name string
	text string
	err  error
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Extract(string) (string, error) { return f.text, f.err }

const ambroseOrderText = `Ambrose Construct Group Pty Ltd
P.O. No: 20250342-01
Insured Owner: Jane Citizen
Site Address: 4 Pampas Court Capalaba QLD 4157
Description of Works:
Supply and install carpet to Master Bedroom
Total Purchase Order Value (ex GST) $4,500.00
Supervisor Details:
Name: Sam Foreman
Mobile: 0400 111 222
BEST CONTACT DETAILS
Contact Type: Decision Maker
Jane Citizen
Mobile: 0412 345 678
Email: jane@example.com
JOB DETAILS
Job Number: 12345
`

func newTestService(t *testing.T, backends ...textextract.Backend) *Service {
	t.Helper()
	return NewService(config.DefaultConfig(), textextract.NewServiceWithBackends(nil, backends...), nil)
}

func TestExtractFileAmbrose(t *testing.T) {
	svc := newTestService(t, &fakeBackend{name: "fitz", text: ambroseOrderText})

	rec, err := svc.ExtractFile("order.pdf", "")
	require.NoError(t, err)

	assert.Equal(t, template.KeyAmbrose, rec.TemplateKey)
	assert.Equal(t, "fitz", rec.Backend)
	assert.Equal(t, "20250342-01", rec.PONumber)
	assert.Equal(t, "Jane Citizen", rec.CustomerName)
	assert.Equal(t, "Jane", rec.FirstName)
	assert.Equal(t, "Citizen", rec.LastName)
	assert.True(t, rec.DollarValue.Equal(decimal.RequireFromString("4500.00")))
	assert.Equal(t, "4 Pampas Court", rec.Address1)
	assert.Equal(t, "Capalaba", rec.City)
	assert.Equal(t, "QLD", rec.State)
	assert.Equal(t, "4157", rec.PostCode)
	assert.Equal(t, "jane@example.com", rec.Email)
	assert.Equal(t, "0412 345 678", rec.Phone)
	assert.Equal(t, "Sam Foreman", rec.SupervisorName)
	assert.Equal(t, "Sam Foreman 0400 111 222", rec.JobNumber)
	assert.Equal(t, "12345", rec.ActualJobNumber)
	assert.Empty(t, rec.MismatchWarning)
	assert.True(t, rec.EssentialFieldsPresent())
}

func TestExtractFileRetriesNextBackend(t *testing.T) {
	svc := newTestService(t,
		&fakeBackend{name: "first", text: "nothing useful in this scan\n"},
		&fakeBackend{name: "second", text: ambroseOrderText},
	)

	rec, err := svc.ExtractFile("order.pdf", "")
	require.NoError(t, err)

	assert.Equal(t, "second", rec.Backend)
	assert.True(t, rec.EssentialFieldsPresent())
}

func TestExtractFileRetryKeepsResolvedFields(t *testing.T) {
	firstText := "Ambrose Construct Group Pty Ltd\nP.O. No: 20250001-01\n"
	svc := newTestService(t,
		&fakeBackend{name: "first", text: firstText},
		&fakeBackend{name: "second", text: ambroseOrderText},
	)

	rec, err := svc.ExtractFile("order.pdf", "")
	require.NoError(t, err)

	// The second pass fills what the first missed but never overwrites
	// the PO number the first pass already resolved.
	assert.Equal(t, "20250001-01", rec.PONumber)
	assert.Equal(t, "Jane Citizen", rec.CustomerName)
	assert.True(t, rec.DollarValue.Equal(decimal.RequireFromString("4500.00")))
	assert.Equal(t, "second", rec.Backend)
}

func TestExtractFileReturnsPartialRecord(t *testing.T) {
	svc := newTestService(t, &fakeBackend{name: "only", text: "Customer: Jane Citizen\n"})

	rec, err := svc.ExtractFile("order.pdf", "")
	require.NoError(t, err)

	assert.False(t, rec.EssentialFieldsPresent())
	assert.Equal(t, "only", rec.Backend)
}

func TestExtractFileAllBackendsFail(t *testing.T) {
	svc := newTestService(t, &fakeBackend{name: "broken", err: errors.New("parse failure")})

	_, err := svc.ExtractFile("order.pdf", "")
	require.Error(t, err)
}

func TestExtractFileNoTextAnywhere(t *testing.T) {
	svc := newTestService(t, &fakeBackend{name: "empty", text: "   \n"})

	_, err := svc.ExtractFile("order.pdf", "")
	require.ErrorIs(t, err, textextract.ErrNoText)
}

func TestExtractFileVendorHintAndMismatch(t *testing.T) {
	svc := newTestService(t, &fakeBackend{name: "fitz", text: ambroseOrderText})

	rec, err := svc.ExtractFile("order.pdf", "Rizon Group")
	require.NoError(t, err)

	assert.Equal(t, template.KeyRizon, rec.TemplateKey)
	assert.NotEmpty(t, rec.MismatchWarning)
	assert.Contains(t, rec.MismatchWarning, "Rizon Group")
}
