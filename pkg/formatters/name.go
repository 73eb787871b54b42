package formatters

import (
	"strings"
	"unicode/utf8"
)

const (
	// NotAvailable is the display sentinel for absent scalar fields.
	NotAvailable = "N/A"
	// Unknown is the display sentinel for an unresolvable name.
	Unknown = "Unknown"
)

// FullName resolves the display name: name first, then "first last",
// then Unknown.
func FullName(name, first, last string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return OrUnknown(strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last)))
}

// Initials concatenates the first character of every whitespace separated
// token. An empty name yields "".
func Initials(fullName string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(fullName) {
		r, _ := utf8.DecodeRuneInString(tok)
		b.WriteRune(r)
	}
	return b.String()
}

// OrNA returns s, or NotAvailable when s is blank.
func OrNA(s string) string {
	return Or(s, NotAvailable)
}

// Or returns s, or fallback when s is blank.
func Or(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// OrUnknown returns s, or Unknown when s is blank.
func OrUnknown(s string) string {
	return Or(s, Unknown)
}
