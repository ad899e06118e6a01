package ingest

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty", input: "", expected: ""},
		{name: "Blank", input: "   ", expected: ""},
		{name: "Canonical form round-trips", input: "1.5 سنة", expected: "1.5 سنة"},
		{name: "Plural Arabic unit", input: "6 سنوات", expected: "6 سنة"},
		{name: "English unit", input: "5 years", expected: "5 سنة"},
		{name: "Arabic-Indic digits", input: "٤ سنوات", expected: "4 سنة"},
		{name: "Comma decimal", input: "3,5 سنوات", expected: "3.5 سنة"},
		{name: "Arabic-Indic comma decimal", input: "٢,٥", expected: "2.5 سنة"},
		{name: "Bare one year", input: "سنة", expected: "1 سنة"},
		{name: "Bare one year alt word", input: "عام", expected: "1 سنة"},
		{name: "Two years dual", input: "سنتين", expected: "2 سنة"},
		{name: "Two years nominative", input: "سنتان", expected: "2 سنة"},
		{name: "Two years alt word", input: "عامين", expected: "2 سنة"},
		{name: "Half alone", input: "نصف سنة", expected: "0.5 سنة"},
		{name: "English half alone", input: "Half a year", expected: "0.5 سنة"},
		{name: "Number plus half", input: "2 سنوات نصف", expected: "2.5 سنة"},
		{name: "Number and a half", input: "3 years and a half", expected: "3.5 سنة"},
		{name: "Fraction plus half double counts", input: "1.5 نصف", expected: "2 سنة"},
		{name: "Bare number", input: "4", expected: "4 سنة"},
		{name: "No numeral falls back to text", input: "حسب البرنامج", expected: "حسب البرنامج"},
		{name: "Fallback is trimmed", input: "  variable  ", expected: "variable"},
		{name: "Months keep their numeral", input: "18 months", expected: "18 سنة"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseDuration(tt.input)
			if result != tt.expected {
				t.Errorf("ParseDuration(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatYears(t *testing.T) {
	tests := []struct {
		years    float64
		expected string
	}{
		{1, "1 سنة"},
		{1.5, "1.5 سنة"},
		{0.5, "0.5 سنة"},
		{10, "10 سنة"},
	}

	for _, tt := range tests {
		if got := FormatYears(tt.years); got != tt.expected {
			t.Errorf("FormatYears(%v) = %q, want %q", tt.years, got, tt.expected)
		}
	}
}
