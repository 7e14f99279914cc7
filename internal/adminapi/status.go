package adminapi

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize converts a status to the backend's canonical storage form:
// first letter upper, rest lower. The backend's casing convention is not
// assumed stable anywhere else; casing is always normalized at this
// boundary.
func Capitalize(status string) string {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(status)
	return string(unicode.ToUpper(r)) + status[size:]
}

// Normalize lower-cases a backend-supplied status for internal comparison
// and display.
func Normalize(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}
