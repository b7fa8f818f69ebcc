package enricher

import "math/rand/v2"

// Categories is the closed set of labels assigned to users.
var Categories = []string{"Business", "Personal", "Organization"}

// CategoryFunc returns the category for the next row.
type CategoryFunc func() string

// RandomCategory draws a category uniformly from the process-wide random source.
func RandomCategory() string {
	return Categories[rand.IntN(len(Categories))]
}

// IsCategory reports whether s is one of Categories.
func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}
