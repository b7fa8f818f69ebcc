// Package enricher derives the profile URL and category columns for a users table.
package enricher

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zcashme/zkenrich/internal/table"
)

const (
	// ProfileBaseURL prefixes every generated profile URL.
	ProfileBaseURL = "https://zcash.me/"

	// MissingIDPlaceholder stands in for an absent id in a fallback URL.
	MissingIDPlaceholder = "unknown"
)

// Column names read and written by Enrich.
const (
	ColumnID         = "id"
	ColumnName       = "name"
	ColumnProfileURL = "profileurl"
	ColumnCategories = "categories"
)

// RequiredColumns must be present in the input table.
var RequiredColumns = []string{ColumnID, ColumnName}

// IsAlphabetic reports whether s is non-empty and every rune is a letter.
func IsAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ProfileURL builds the profile URL for a row.
// Alphabetic names are used lowercased; anything else falls back to the id.
func ProfileURL(row table.Row) string {
	if name, ok := alphabeticName(row); ok {
		return ProfileBaseURL + cases.Lower(language.Und).String(name)
	}
	return ProfileBaseURL + idText(row)
}

func idText(row table.Row) string {
	id, ok := row.Get(ColumnID)
	if !ok || id.IsAbsent() {
		return MissingIDPlaceholder
	}
	return id.String()
}

// alphabeticName returns the row's name when it is a purely alphabetic string.
// Numbers and missing names never qualify.
func alphabeticName(row table.Row) (string, bool) {
	name, _ := row.Get(ColumnName)
	s, ok := name.Text()
	if !ok || !IsAlphabetic(s) {
		return "", false
	}
	return s, true
}

// fromName reports whether ProfileURL would use the row's name.
func fromName(row table.Row) bool {
	_, ok := alphabeticName(row)
	return ok
}
