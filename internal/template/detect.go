package template

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/google/uuid"
)

// similarityFloor is the minimum levenshtein similarity for a vendor
// hint to be trusted over content detection.
const similarityFloor = 0.6

// Detection records which template was chosen and why. The audit ID ties
// log lines for one detection together; callers log it, they never
// branch on it.
type Detection struct {
	Template *Template
	Method   string // "vendor-hint", "signature" or "fallback"
	AuditID  string
}

// Detect chooses the template for a document. A non-empty vendorHint
// (the builder name the operator selected) takes priority; otherwise the
// content signatures are tried in fixed precedence order, and the
// generic template is the final fallback.
func Detect(text, vendorHint string) Detection {
	d := Detection{AuditID: uuid.NewString()}

	if vendorHint != "" {
		if key := MatchVendor(vendorHint); key != "" {
			d.Template = registry[key]
			d.Method = "vendor-hint"
			slog.Debug("template detected from vendor hint",
				"audit_id", d.AuditID, "template", key, "hint", vendorHint)
			return d
		}
	}

	for _, key := range detectionOrder {
		tpl := registry[key]
		for _, sig := range tpl.Signatures {
			if sig.MatchString(text) {
				d.Template = tpl
				d.Method = "signature"
				slog.Debug("template detected from content signature",
					"audit_id", d.AuditID, "template", key, "signature", sig.String())
				return d
			}
		}
	}

	d.Template = registry[KeyGeneric]
	d.Method = "fallback"
	slog.Debug("no template matched, using generic", "audit_id", d.AuditID)
	return d
}

// MatchVendor maps a free-form builder name to a template key. Exact
// alias substring matches win; otherwise the closest alias by
// levenshtein similarity above the floor. Empty when nothing matches.
func MatchVendor(name string) Key {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return ""
	}

	for _, key := range detectionOrder {
		for _, alias := range registry[key].Aliases {
			if strings.Contains(normalized, alias) {
				return key
			}
		}
	}

	var bestKey Key
	bestScore := similarityFloor
	for _, key := range detectionOrder {
		tpl := registry[key]
		for _, alias := range tpl.Aliases {
			score := levenshtein.Similarity(normalized, alias, nil)
			if score > bestScore {
				bestScore = score
				bestKey = key
			}
		}
	}
	return bestKey
}

var headContactRe = regexp.MustCompile(`(?i)(?:to|attention|attn):\s*([a-z\s&]+?)(?:\n|$)`)

// DetectMismatch inspects the document header (first 5 lines, capped at
// 500 characters) for a builder identity that disagrees with the
// operator's vendor hint. The result is a warning for the operator, not
// an error: the hint still drives template selection.
func DetectMismatch(text, vendorHint string) string {
	if vendorHint == "" {
		return ""
	}

	detected := detectVendorInHead(text)
	if detected == "" {
		return ""
	}

	detectedNorm := strings.ReplaceAll(strings.ToLower(detected), " ", "")
	hintNorm := strings.ReplaceAll(strings.ToLower(vendorHint), " ", "")
	if strings.Contains(hintNorm, detectedNorm) || strings.Contains(detectedNorm, hintNorm) {
		return ""
	}

	return fmt.Sprintf("PDF appears to be from %q but selected builder is %q. Please verify the correct builder is selected.",
		detected, vendorHint)
}

// detectVendorInHead looks for a known builder name in the document
// header, including "To:" / "Attention:" address lines.
func detectVendorInHead(text string) string {
	lines := strings.SplitN(text, "\n", 6)
	if len(lines) == 6 {
		lines = lines[:5]
	}
	head := strings.Join(lines, "\n")
	if len(head) > 500 {
		head = head[:500]
	}
	head = strings.ToLower(head)

	for _, key := range detectionOrder {
		tpl := registry[key]
		for _, alias := range tpl.Aliases {
			if strings.Contains(head, alias) {
				return tpl.Name
			}
		}
	}

	if m := headContactRe.FindStringSubmatch(head); m != nil {
		addressee := strings.ToLower(strings.TrimSpace(m[1]))
		for _, key := range detectionOrder {
			tpl := registry[key]
			for _, alias := range tpl.Aliases {
				if strings.Contains(addressee, alias) {
					return tpl.Name
				}
			}
		}
	}

	return ""
}
