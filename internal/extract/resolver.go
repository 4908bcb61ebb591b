package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// extractField returns the first capture of the first matching pattern,
// trimmed. Empty string when nothing matches.
func extractField(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil && len(m) > 1 {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractDollar returns the first parseable monetary capture. A pattern
// whose capture does not parse is skipped, not fatal.
func extractDollar(text string, patterns []*regexp.Regexp) decimal.Decimal {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil || len(m) < 2 {
			continue
		}
		v, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		return v
	}
	return decimal.Zero
}

// digitsOnly strips everything but digits, for phone comparison.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func ci(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile("(?i)"+p))
	}
	return out
}

// Generic fallbacks, tried only when the template's own lists miss.
var (
	genericPOPatterns = ci(
		`P\.O\.\s*No:?\s*([A-Za-z0-9-]+)`,
		`PO[:\s#]+([A-Za-z0-9-]+)`,
		`Purchase\s+Order[:\s#]+([A-Za-z0-9-]+)`,
		`Order\s+Number[:\s#]+([A-Za-z0-9-]+)`,
		`CONTRACT\s+NO[.:]?\s*([A-Za-z0-9-]+)`,
		`Contract\s+Number[.:]?\s*([A-Za-z0-9-]+)`,
	)

	genericCustomerPatterns = ci(
		`Customer\s+Name:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Customer:?\s+([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Client\s+Name:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Client:?\s+([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Insured:?\s+([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Owner:?\s+([A-Za-z\s\-'\.]+?)(?:\n|$)`,
	)

	genericDollarPatterns = ci(
		`Total\s+Purchase\s+Order\s+Value[^\$]*\$\s*([\d,]+\.?\d*)`,
		`TOTAL\s+\(ex\s+GST\)[:\s]*\$?\s*([\d,]+\.?\d*)`,
		`Total\s+\(ex\s+GST\)[:\s]*\$?\s*([\d,]+\.?\d*)`,
		`TOTAL[:\s]+\$?\s*([\d,]+\.?\d*)`,
		`Total[:\s]+\$?\s*([\d,]+\.?\d*)`,
		`Amount[:\s]+\$?\s*([\d,]+\.?\d*)`,
	)

	subcontractorSectionRe = regexp.MustCompile(`(?i)SUBCONTRACTOR\s+DETAILS([\s\S]+?)(?:JOB\s+DETAILS|SUPERVISOR\s+DETAILS|$)`)
	tradingNameRe          = regexp.MustCompile(`(?i)Trading\s+Name:?\s*([A-Za-z0-9\s\.,&-]+?)\n`)

	businessPatterns = ci(
		`Trading\s+Name:?\s*([A-Za-z0-9\s\.,&-]+?)\n`,
		`Business[:\s]+([A-Za-z0-9\s\.,&-]+?)\n`,
		`Company[:\s]+([A-Za-z0-9\s\.,&-]+?)\n`,
		`Builder[:\s]+([A-Za-z0-9\s\.,&-]+?)\n`,
	)

	genericDescriptionPatterns = ci(
		`Description\s+of\s+Works[:\s]*\n([\s\S]+?)(?:Total\s+Purchase\s+Order\s+Value|TOTAL\s+PURCHASE\s+ORDER|Total\s+Purchase|TOTAL|$)`,
		`Description\s+of\s+Works([\s\S]+?)(?:TOTAL|Total\s+Purchase\s+Order)`,
		`Scope\s+of\s+Work[:\s]+([\s\S]+?)(?:TOTAL|Total|Amount|Price|\$|\n\n)`,
		`Description[:\s]+([\s\S]+?)(?:TOTAL|Total|Amount|Price|\$|\n\n)`,
		`Services[:\s]+([\s\S]+?)(?:TOTAL|Total|Amount|Price|\$|\n\n)`,
	)

	genericAddressPatterns = ci(
		`Site\s+Address[:\s]*\n?([A-Za-z0-9\s\.,#-]+?)\n`,
		`Site\s+Address[:\s]*([^,\n]+,\s*[^,\n]+,?\s*[A-Z]{2,3}\s*\d{4})`,
		`SITE\s+LOCATION[:\s]*([A-Za-z0-9\s\.,#-]+?)\n`,
		`Property\s+Address[:\s]*\n?([A-Za-z0-9\s\.,#-]+?)\n`,
		`Location[:\s]*([A-Za-z0-9\s\.,#-]+?)\n`,
		`Address[:\s]+([A-Za-z0-9\s\.,#-]+?)\n`,
	)

	shipToAddressPatterns = ci(
		`Site\s+Address:?\s*([A-Za-z0-9\s\.,#-]+?)(?:\n|$)`,
		`Site\s+Location:?\s*([A-Za-z0-9\s\.,#-]+?)(?:\n|$)`,
		`Property\s+Address:?\s*([A-Za-z0-9\s\.,#-]+?)(?:\n|$)`,
		`Location:?\s*([A-Za-z0-9\s\.,#-]+?)(?:\n|$)`,
	)

	siteContactPatterns = ci(
		`Site\s+Contact:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Site\s+Contact\s+Name:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Contact\s+Name:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
	)

	supervisorNamePatterns = ci(
		`Supervisor:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Project\s+Manager:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Site\s+Supervisor:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Job\s+Supervisor:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Supervisor\s+Name:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
	)

	jobNumberPatterns = ci(
		`Job\s+Number:?\s*([A-Za-z0-9-]+)`,
		`Job\s+#:?\s*([A-Za-z0-9-]+)`,
		`Job\s+ID:?\s*([A-Za-z0-9-]+)`,
		`WORK\s+ORDER[:\s]+([A-Za-z0-9-]+)`,
		`JOB\s+NUMBER[:\s]+([A-Za-z0-9-]+)`,
	)
)
