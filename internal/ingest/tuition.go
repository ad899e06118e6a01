package ingest

import (
	"regexp"
	"strings"

	"github.com/mroshb/edu_admissions/pkg/utils"
)

// CurrencyMarker is the canonical currency appended to every normalized tuition.
const CurrencyMarker = "دولار"

// amountRegex matches the first run of digits and grouping/decimal
// punctuation. The run is kept as typed, stray dots included.
var amountRegex = regexp.MustCompile(`[\d,.]+`)

// ParseTuition turns a free-text tuition into "<amount> دولار".
// The amount keeps its original separators. Input without any digits
// comes back trimmed but otherwise unchanged.
func ParseTuition(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	amount := amountRegex.FindString(utils.NormalizeDigits(trimmed))
	if amount == "" {
		return trimmed
	}
	return amount + " " + CurrencyMarker
}
