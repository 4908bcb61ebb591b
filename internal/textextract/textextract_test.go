package textextract

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	name  string
	text  string
	err   error
	calls int
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) Extract(path string) (string, error) {
	s.calls++
	return s.text, s.err
}

func writeTempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "order.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n%%EOF\n"), 0o600))
	return path
}

func TestExtractReturnsFirstNonEmpty(t *testing.T) {
	path := writeTempPDF(t)

	first := &stubBackend{name: "first", text: "PURCHASE ORDER\nPO123"}
	second := &stubBackend{name: "second", text: "should not be reached"}

	svc := NewServiceWithBackends(slog.Default(), first, second)
	res, err := svc.Extract(path)

	require.NoError(t, err)
	assert.Equal(t, "first", res.Backend)
	assert.Equal(t, "PURCHASE ORDER\nPO123", res.Text)
	assert.Equal(t, 0, second.calls)
}

func TestExtractSkipsFailingAndEmptyBackends(t *testing.T) {
	path := writeTempPDF(t)

	failing := &stubBackend{name: "failing", err: errors.New("corrupt xref")}
	empty := &stubBackend{name: "empty", text: "   \n\t"}
	good := &stubBackend{name: "good", text: "Purchase Order No: 42"}

	svc := NewServiceWithBackends(slog.Default(), failing, empty, good)
	res, err := svc.Extract(path)

	require.NoError(t, err)
	assert.Equal(t, "good", res.Backend)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, empty.calls)
}

func TestExtractAllBackendsFail(t *testing.T) {
	path := writeTempPDF(t)

	svc := NewServiceWithBackends(slog.Default(),
		&stubBackend{name: "a", err: errors.New("boom")},
		&stubBackend{name: "b", text: ""},
	)

	_, err := svc.Extract(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestExtractMissingFile(t *testing.T) {
	svc := NewServiceWithBackends(slog.Default(), &stubBackend{name: "a", text: "x"})

	_, err := svc.Extract(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoText)
}

func TestDefaultBackendOrder(t *testing.T) {
	svc := NewService(slog.Default())
	backends := svc.Backends()

	require.Len(t, backends, 3)
	assert.Equal(t, "fitz", backends[0].Name())
	assert.Equal(t, "ledongthuc", backends[1].Name())
	assert.Equal(t, "pdfcpu", backends[2].Name())
}

func TestBackendErrorUnwrap(t *testing.T) {
	inner := errors.New("bad stream")
	err := &BackendError{Backend: "pdfcpu", Op: "read", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "pdfcpu")
	assert.Contains(t, err.Error(), "read")
}

func TestTextFromContentStream(t *testing.T) {
	stream := []byte("BT\n/F1 12 Tf\n(Purchase Order) Tj\n0 -14 Td\n[(PO: ) (PDF-123)] TJ\nT*\n(Total \\(inc GST\\)) Tj\nET\n")

	got := textFromContentStream(stream)

	assert.Contains(t, got, "Purchase Order")
	assert.Contains(t, got, "PO: PDF-123")
	assert.Contains(t, got, "Total (inc GST)")
}

func TestDecodePDFStringOctal(t *testing.T) {
	assert.Equal(t, "A B", decodePDFString([]byte(`A\040B`)))
	assert.Equal(t, "tab\there", decodePDFString([]byte(`tab\there`)))
}
