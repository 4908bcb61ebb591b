package extract

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtractField(t *testing.T) {
	patterns := ci(
		`Order[:\s]+([A-Z0-9-]+)`,
		`Ref[:\s]+([A-Z0-9-]+)`,
	)

	assert.Equal(t, "AB-12", extractField("Order: AB-12\nRef: CD-34", patterns))
	assert.Equal(t, "CD-34", extractField("Ref: CD-34", patterns))
	assert.Equal(t, "", extractField("nothing here", patterns))
}

func TestExtractDollar(t *testing.T) {
	patterns := ci(
		`Total[:\s]+\$?([\d,]+\.?\d*)`,
	)

	v := extractDollar("Total: $12,345.60", patterns)
	assert.True(t, v.Equal(decimal.RequireFromString("12345.60")))

	assert.True(t, extractDollar("Total: n/a", patterns).IsZero())
	assert.True(t, extractDollar("no totals", patterns).IsZero())
}

func TestExtractDollarSkipsUnparseable(t *testing.T) {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`Amount:\s*(\S+)`),
		regexp.MustCompile(`Value:\s*([\d\.]+)`),
	}

	v := extractDollar("Amount: TBD\nValue: 99.50", patterns)
	assert.True(t, v.Equal(decimal.RequireFromString("99.50")))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "0412345678", digitsOnly("(0412) 345-678"))
	assert.Equal(t, "", digitsOnly("no digits"))
}
