package security

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	htmlPolicy     = bluemonday.StrictPolicy()
	richTextPolicy = bluemonday.UGCPolicy()
	phoneRegex     = regexp.MustCompile(`^[\d\s+()-]{8,20}$`)
)

const maxStringLength = 1000

// SanitizeString removes potentially dangerous characters
func SanitizeString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")

	if runes := []rune(input); len(runes) > maxStringLength {
		input = string(runes[:maxStringLength])
	}

	return input
}

// SanitizeHTML removes all HTML tags
func SanitizeHTML(input string) string {
	return htmlPolicy.Sanitize(SanitizeString(input))
}

// SanitizeRichText keeps basic formatting for admin-authored content
// and strips scripts, handlers and unsafe URLs.
func SanitizeRichText(input string) string {
	return richTextPolicy.Sanitize(strings.TrimSpace(input))
}

// ValidatePhoneNumber checks if phone number is valid
func ValidatePhoneNumber(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// ValidateFileType checks if file extension is allowed
func ValidateFileType(filename string, allowedTypes []string) bool {
	filename = strings.ToLower(filename)
	for _, ext := range allowedTypes {
		if strings.HasSuffix(filename, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// ValidateFileSize checks if file size is within limit
func ValidateFileSize(size int64, maxSize int64) bool {
	return size > 0 && size <= maxSize
}
