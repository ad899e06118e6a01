package ingest

import (
	"strings"

	"github.com/mroshb/edu_admissions/pkg/utils"
)

// Names is a bilingual name pair.
type Names struct {
	EN string `json:"name_en"`
	AR string `json:"name_ar"`
}

// SplitName decides which side of a "/" separated pair is Arabic.
//
// When both or neither side contain Arabic script the left side is taken
// as Arabic. Single-language names are copied into both fields so the
// record still carries a value for each locale.
func SplitName(namePart string) Names {
	trimmed := strings.TrimSpace(namePart)

	left, right, found := strings.Cut(trimmed, "/")
	if !found {
		return Names{EN: trimmed, AR: trimmed}
	}

	left, right = strings.TrimSpace(left), strings.TrimSpace(right)
	switch {
	case left == "" && right == "":
		return Names{EN: trimmed, AR: trimmed}
	case left == "":
		return Names{EN: right, AR: right}
	case right == "":
		return Names{EN: left, AR: left}
	}

	leftArabic, rightArabic := utils.ContainsArabic(left), utils.ContainsArabic(right)
	if !leftArabic && rightArabic {
		return Names{EN: left, AR: right}
	}
	return Names{EN: right, AR: left}
}
