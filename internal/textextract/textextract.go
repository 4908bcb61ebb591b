package textextract

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ErrNoText indicates that every configured backend failed to produce text.
var ErrNoText = errors.New("no text could be extracted from PDF")

// Backend extracts the full plain text of a PDF document.
type Backend interface {
	Name() string
	Extract(path string) (string, error)
}

// BackendError wraps a failure from a specific extraction backend.
type BackendError struct {
	Backend string
	Op      string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("pdf %s backend error in %s: %v", e.Backend, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a successful extraction attempt.
type Result struct {
	Text    string
	Backend string
}

// Service tries a fixed, ordered list of extraction backends and returns
// the first non-empty text. Backend order matters: fitz produces the most
// faithful layout, ledongthuc is a lightweight pure-Go fallback, and the
// pdfcpu content-stream scrape is the last resort.
type Service struct {
	backends []Backend
	logger   *slog.Logger
}

// NewService creates a Service with the default backend order.
func NewService(logger *slog.Logger) *Service {
	return NewServiceWithBackends(logger,
		&FitzBackend{},
		&LedongthucBackend{},
		&PDFCPUBackend{},
	)
}

// NewServiceWithBackends creates a Service with an explicit backend list.
func NewServiceWithBackends(logger *slog.Logger, backends ...Backend) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{backends: backends, logger: logger}
}

// Backends returns the ordered backend list.
func (s *Service) Backends() []Backend {
	return s.backends
}

// Extract returns the first non-empty text any backend produces for path.
// A backend that errors or yields only whitespace is skipped; ErrNoText is
// returned only when every backend has been exhausted.
func (s *Service) Extract(path string) (Result, error) {
	if _, err := os.Stat(path); err != nil {
		return Result{}, fmt.Errorf("cannot access file %s: %w", path, err)
	}

	for _, backend := range s.backends {
		text, err := backend.Extract(path)
		if err != nil {
			s.logger.Debug("extraction backend failed",
				"backend", backend.Name(), "path", path, "error", err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			s.logger.Debug("extraction backend produced no text",
				"backend", backend.Name(), "path", path)
			continue
		}
		s.logger.Debug("extracted text",
			"backend", backend.Name(), "path", path, "chars", len(text))
		return Result{Text: text, Backend: backend.Name()}, nil
	}

	return Result{}, fmt.Errorf("%w: %s", ErrNoText, path)
}
