package ingest

import (
	"regexp"
	"strings"

	"github.com/mroshb/edu_admissions/pkg/utils"
)

// ParsedFields is one pasted line split into its raw columns.
type ParsedFields struct {
	NamePart    string `json:"name_part"`
	DurationRaw string `json:"duration_raw"`
	TuitionRaw  string `json:"tuition_raw"`
}

const number = `\d(?:[\d,.]*\d)?`

var (
	tabRegex = regexp.MustCompile(`\t+`)

	// Scholarship and discount percentages, with the word that usually follows them.
	percentRegex = regexp.MustCompile(
		`(?i)\d+\.?\d*\s*[%٪](?:\s*(?:discount|off|scholarship|خصم|منحة|تخفيض))?`,
	)

	tuitionRegex = regexp.MustCompile(
		`(?i)(?:(?:\$|usd)\s*` + number + `|` + number + `\s*(?:\$|usd|دولار))` +
			`(?:\s*/\s*(?:year|yr|سنة|عام))?`,
	)

	durationRegex = regexp.MustCompile(
		`(?i)\d+(?:[.,]\d+)?\s*(?:سنوات|سنة|أعوام|عام|أشهر|شهور|شهر|years?|months?)` +
			`(?:\s*(?:and\s+a\s+half|و\s*نصف|half))?`,
	)

	standaloneUnitRegex = regexp.MustCompile(
		`(?i)(?:^|\s)((?:نصف\s+)?(?:سنتين|سنتان|عامين|سنوات|سنة|عام|أشهر|شهر|half\s+(?:a\s+)?year|years?|months?))(?:\s|$)`,
	)
)

// SegmentLine splits one pasted line into name, duration and tuition.
//
// Tab-separated rows with at least three non-empty cells are taken
// positionally. Anything else goes through the free-text fallback, which
// finds the tuition first, then the duration, and keeps the rest as the name.
func SegmentLine(line string) ParsedFields {
	if fields, ok := segmentTabs(line); ok {
		return fields
	}
	return segmentFreeText(line)
}

func segmentTabs(line string) (ParsedFields, bool) {
	var cells []string
	for _, cell := range tabRegex.Split(line, -1) {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	if len(cells) < 3 {
		return ParsedFields{}, false
	}
	return ParsedFields{
		NamePart:    cells[0],
		DurationRaw: cells[1],
		TuitionRaw:  cells[2],
	}, true
}

func segmentFreeText(line string) ParsedFields {
	var fields ParsedFields

	rest := utils.NormalizeDigits(line)
	rest = percentRegex.ReplaceAllString(rest, " ")

	if loc := tuitionRegex.FindStringIndex(rest); loc != nil {
		fields.TuitionRaw = strings.TrimSpace(rest[loc[0]:loc[1]])
		rest = cut(rest, loc[0], loc[1])
	}

	if loc := durationRegex.FindStringIndex(rest); loc != nil {
		fields.DurationRaw = strings.TrimSpace(rest[loc[0]:loc[1]])
		rest = cut(rest, loc[0], loc[1])
	} else if loc := standaloneUnitRegex.FindStringSubmatchIndex(rest); loc != nil {
		fields.DurationRaw = strings.TrimSpace(rest[loc[2]:loc[3]])
		rest = cut(rest, loc[2], loc[3])
	}

	fields.NamePart = strings.Trim(utils.CollapseSpaces(rest), "-–|,;: ")
	return fields
}

func cut(s string, start, end int) string {
	return s[:start] + " " + s[end:]
}
