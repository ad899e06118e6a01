package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mroshb/edu_admissions/pkg/utils"
)

// YearUnit is the canonical unit appended to every normalized duration.
const YearUnit = "سنة"

var (
	halfMarkerRegex = regexp.MustCompile(`(?i)half|نصف`)
	numeralRegex    = regexp.MustCompile(`\d+(\.\d+)?`)
)

var (
	oneYearWords  = map[string]bool{"سنة": true, "عام": true}
	twoYearsWords = map[string]bool{"سنتين": true, "سنتان": true, "عامين": true}
)

// ParseDuration turns a free-text duration into "<years> سنة".
// Blank input yields "". When no year count can be resolved the
// normalized text is returned as is.
//
// A half marker always adds 0.5, even when the numeral already carries
// a fraction, so "1.5 نصف" becomes "2 سنة".
func ParseDuration(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	text := utils.NormalizeDigits(raw)
	text = strings.TrimSpace(strings.ReplaceAll(text, ",", "."))

	years, ok := baseYears(text)
	if halfMarkerRegex.MatchString(text) {
		if ok {
			years += 0.5
		} else {
			years, ok = 0.5, true
		}
	}

	if !ok {
		return text
	}
	return FormatYears(years)
}

func baseYears(text string) (float64, bool) {
	switch {
	case oneYearWords[text]:
		return 1, true
	case twoYearsWords[text]:
		return 2, true
	}

	match := numeralRegex.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// FormatYears renders a year count with the shortest decimal form ("1.5", "2").
func FormatYears(years float64) string {
	return strconv.FormatFloat(years, 'f', -1, 64) + " " + YearUnit
}
