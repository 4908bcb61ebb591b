package textextract

import (
	"strings"

	"github.com/gen2brain/go-fitz"
)

// FitzBackend extracts text with MuPDF via go-fitz. It handles scanned-ish
// and heavily styled purchase orders better than the pure-Go readers, so it
// runs first.
type FitzBackend struct{}

// Name returns the backend identifier.
func (b *FitzBackend) Name() string { return "fitz" }

// Extract returns the concatenated text of all pages.
func (b *FitzBackend) Extract(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", &BackendError{Backend: b.Name(), Op: "open", Err: err}
	}
	defer doc.Close()

	var builder strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			// Continue with other pages even if one fails
			continue
		}
		builder.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			builder.WriteByte('\n')
		}
	}

	return builder.String(), nil
}
