package textextract

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// LedongthucBackend extracts text with the pure-Go ledongthuc/pdf reader.
type LedongthucBackend struct{}

// Name returns the backend identifier.
func (b *LedongthucBackend) Name() string { return "ledongthuc" }

// Extract returns the concatenated plain text of all pages.
func (b *LedongthucBackend) Extract(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &BackendError{Backend: b.Name(), Op: "open", Err: err}
	}
	defer f.Close()

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails
			continue
		}

		builder.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			builder.WriteByte('\n')
		}
	}

	return builder.String(), nil
}
