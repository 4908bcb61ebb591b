package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atozflooring/po-extract/internal/config"
	"github.com/atozflooring/po-extract/internal/template"
	"github.com/atozflooring/po-extract/internal/textextract"
)

// Service turns a purchase order PDF into a Record. Text backends are
// tried in order until the essential fields come out; each new text is
// parsed on its own and only fills fields still empty on the record, so
// a retry never overwrites a resolved value.
type Service struct {
	cfg     *config.Config
	text    *textextract.Service
	cleaner *Cleaner
	logger  *slog.Logger
}

func NewService(cfg *config.Config, text *textextract.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:     cfg,
		text:    text,
		cleaner: NewCleaner(cfg),
		logger:  logger,
	}
}

// ExtractFile parses the PDF at path. vendorHint is the builder the
// operator selected, which wins over content detection when it names a
// known builder.
func (s *Service) ExtractFile(path, vendorHint string) (*Record, error) {
	rec := NewRecord()

	var lastErr error
	for _, backend := range s.text.Backends() {
		text, err := backend.Extract(path)
		if err != nil {
			s.logger.Debug("text extraction failed",
				"backend", backend.Name(), "path", path, "error", err)
			lastErr = err
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if text == rec.RawText {
			continue
		}

		if rec.RawText == "" {
			if warning := template.DetectMismatch(text, vendorHint); warning != "" {
				s.logger.Warn("builder mismatch", "warning", warning)
				rec.MismatchWarning = warning
			}
		}

		rec.RawText = text
		rec.Backend = backend.Name()

		detection := template.Detect(text, vendorHint)
		rec.TemplateKey = detection.Template.Key
		s.logger.Debug("template detected",
			"template", detection.Template.Key,
			"method", detection.Method,
			"audit_id", detection.AuditID,
			"backend", backend.Name())

		scratch := NewRecord()
		s.parseText(text, scratch, detection.Template)
		rec.FillFrom(scratch)

		if rec.EssentialFieldsPresent() {
			break
		}
	}

	if rec.RawText == "" {
		if lastErr != nil {
			return nil, fmt.Errorf("extract %s: %w", path, lastErr)
		}
		return nil, fmt.Errorf("extract %s: %w", path, textextract.ErrNoText)
	}

	s.cleaner.Clean(rec)
	return rec, nil
}

// parseText runs one pass of field extraction over a single backend's
// text into a fresh record. Template patterns are tried first; generic
// fallbacks only run for fields the template lists missed.
func (s *Service) parseText(text string, rec *Record, tpl *template.Template) {
	if text == "" {
		return
	}

	if v := extractField(text, tpl.PO); v != "" {
		rec.PONumber = v
	}
	if rec.PONumber == "" {
		rec.PONumber = extractField(text, genericPOPatterns)
	}

	if m := subcontractorSectionRe.FindStringSubmatch(text); m != nil {
		if tm := tradingNameRe.FindStringSubmatch(m[1]); tm != nil {
			rec.BusinessName = strings.TrimSpace(tm[1])
		}
	}
	if rec.BusinessName == "" {
		rec.BusinessName = extractField(text, businessPatterns)
	}

	if v := extractField(text, tpl.Customer); v != "" {
		rec.CustomerName = v
	}
	if rec.CustomerName == "" && tpl.Key == template.KeyAmbrose {
		ambroseCustomerFallback(text, rec)
	}
	if rec.CustomerName == "" {
		rec.CustomerName = extractField(text, genericCustomerPatterns)
	}

	s.extractContactDetails(text, rec)
	extractJobAndSupervisor(text, rec, tpl)

	if rec.Address == "" && !vendorOwnsAddress(tpl.Key) {
		for _, re := range genericAddressPatterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			candidate := strings.TrimSpace(m[1])
			if strings.Contains(strings.ToLower(candidate), "tax invoice") {
				continue
			}
			rec.Address = candidate
			parseAddress(candidate, rec)
			break
		}
	}

	for _, re := range tpl.Description {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		rec.DescriptionOfWorks = strings.TrimSpace(m[1])
		if tpl.Key == template.KeyAmbrose {
			rec.DescriptionOfWorks = cleanAmbroseDescription(rec.DescriptionOfWorks)
		}
		rec.ScopeOfWork = rec.DescriptionOfWorks
		break
	}
	if rec.DescriptionOfWorks == "" {
		if v := extractField(text, genericDescriptionPatterns); v != "" {
			rec.DescriptionOfWorks = v
			rec.ScopeOfWork = v
		}
	}

	if v := extractDollar(text, tpl.Dollar); !v.IsZero() {
		rec.DollarValue = v
	}
	if rec.DollarValue.IsZero() {
		rec.DollarValue = extractDollar(text, genericDollarPatterns)
	}

	if len(tpl.CommencementDate) > 0 && rec.CommencementDate == "" {
		rec.CommencementDate = extractField(text, tpl.CommencementDate)
	}
	if len(tpl.CompletionDate) > 0 && rec.InstallationDate == "" {
		rec.InstallationDate = extractField(text, tpl.CompletionDate)
	}

	if tpl.Key != template.KeyAmbrose {
		extractContactSections(text, rec)
	}
	extractStandaloneContacts(text, rec)

	if ext := vendorExtensions[tpl.Key]; ext != nil {
		ext(s, text, rec, tpl)
	}

	if v := extractField(text, siteContactPatterns); v != "" {
		rec.ShipToName = v
	}

	if !vendorOwnsAddress(tpl.Key) {
		for _, re := range shipToAddressPatterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			addr := strings.TrimSpace(m[1])
			if strings.Contains(strings.ToLower(addr), "tax invoice") {
				continue
			}
			if rec.Address == "" {
				rec.Address = addr
				parseAddress(addr, rec)
			}
			rec.ShipToAddress = addr
			break
		}
	}
}

// vendorOwnsAddress reports whether the builder's extension extracts
// the site address itself.
func vendorOwnsAddress(key template.Key) bool {
	switch key {
	case template.KeyAmbrose, template.KeyProfileBuild, template.KeyOneSolutions:
		return true
	}
	return false
}
