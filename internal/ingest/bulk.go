// Package ingest parses pasted spreadsheet rows into specialization drafts.
//
// A line goes through SegmentLine, then SplitName, ParseDuration and
// ParseTuition. None of these fail: unrecognised input falls back to the
// original text, and incomplete drafts are left for the caller to drop
// with FilterEligible. The package keeps no mutable state and is safe for
// concurrent use.
package ingest

import (
	"strings"
)

// Draft is a parsed specialization ready to be persisted.
type Draft struct {
	NameEN   string `json:"name_en"`
	NameAR   string `json:"name_ar"`
	Duration string `json:"duration"`
	Tuition  string `json:"tuition"`
}

// Eligible reports whether the draft has every field persistence requires.
func (d Draft) Eligible() bool {
	return len(d.MissingFields()) == 0
}

// MissingFields lists the required JSON fields that are empty.
func (d Draft) MissingFields() []string {
	var missing []string
	if d.NameAR == "" {
		missing = append(missing, "name_ar")
	}
	if d.Duration == "" {
		missing = append(missing, "duration")
	}
	if d.Tuition == "" {
		missing = append(missing, "tuition")
	}
	return missing
}

// ParseLine builds a draft from a single pasted line.
func ParseLine(line string) Draft {
	fields := SegmentLine(strings.TrimSpace(line))
	names := SplitName(fields.NamePart)

	return Draft{
		NameEN:   names.EN,
		NameAR:   names.AR,
		Duration: ParseDuration(fields.DurationRaw),
		Tuition:  ParseTuition(fields.TuitionRaw),
	}
}

// ParseBulk parses every non-blank line of text, keeping input order.
// Drafts are returned whether or not they are eligible.
func ParseBulk(text string) []Draft {
	var drafts []Draft
	for _, line := range Lines(text) {
		drafts = append(drafts, ParseLine(line.Text))
	}
	return drafts
}

// FilterEligible keeps the drafts that can be persisted, in order.
func FilterEligible(drafts []Draft) []Draft {
	eligible := make([]Draft, 0, len(drafts))
	for _, d := range drafts {
		if d.Eligible() {
			eligible = append(eligible, d)
		}
	}
	return eligible
}

// Line is a trimmed, non-blank input line with its 1-based position.
type Line struct {
	Number int
	Text   string
}

// Lines splits text on newlines and drops blank lines.
func Lines(text string) []Line {
	var lines []Line
	for i, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: trimmed})
	}
	return lines
}

// LineResult is a parsed line as shown in the admin preview.
type LineResult struct {
	Line     int      `json:"line"`
	Source   string   `json:"source"`
	Draft    Draft    `json:"draft"`
	Eligible bool     `json:"eligible"`
	Missing  []string `json:"missing,omitempty"`
}

// Report carries per-line results so staff can see which rows would be dropped.
type Report struct {
	Lines    []LineResult `json:"lines"`
	Eligible int          `json:"eligible"`
	Dropped  int          `json:"dropped"`
}

// Drafts returns every draft in the report in input order.
func (r Report) Drafts() []Draft {
	drafts := make([]Draft, 0, len(r.Lines))
	for _, l := range r.Lines {
		drafts = append(drafts, l.Draft)
	}
	return drafts
}

// ParseBulkReport parses text like ParseBulk and records line diagnostics.
func ParseBulkReport(text string) Report {
	report := Report{Lines: []LineResult{}}
	for _, line := range Lines(text) {
		draft := ParseLine(line.Text)
		missing := draft.MissingFields()

		report.Lines = append(report.Lines, LineResult{
			Line:     line.Number,
			Source:   line.Text,
			Draft:    draft,
			Eligible: len(missing) == 0,
			Missing:  missing,
		})
		if len(missing) == 0 {
			report.Eligible++
		} else {
			report.Dropped++
		}
	}
	return report
}
