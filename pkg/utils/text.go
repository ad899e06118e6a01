package utils

import (
	"strings"
	"unicode"
)

var arabicIndicDigits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4", "٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// NormalizeDigits converts Arabic-Indic numerals (U+0660..U+0669) to ASCII digits.
// Every other rune, Persian numerals included, is left as is.
func NormalizeDigits(input string) string {
	return arabicIndicDigits.Replace(input)
}

// ContainsArabic reports whether input has any rune from the Arabic block (U+0600..U+06FF).
func ContainsArabic(input string) bool {
	for _, r := range input {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

// CollapseSpaces trims input and squeezes inner whitespace runs into a single space.
func CollapseSpaces(input string) string {
	return strings.Join(strings.FieldsFunc(input, unicode.IsSpace), " ")
}
