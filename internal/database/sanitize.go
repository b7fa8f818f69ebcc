package database

import (
	"fmt"
	"strings"
)

// SanitizeColumnName sanitizes a column name for SQL compatibility.
// - Replaces invalid characters with underscores
// - Prefixes with "col_" if the name starts with a digit
// - Returns "unnamed" for empty names
func SanitizeColumnName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "unnamed"
	}

	var b strings.Builder
	for _, r := range name {
		if isIdentRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	sanitized := b.String()
	if sanitized[0] >= '0' && sanitized[0] <= '9' {
		sanitized = "col_" + sanitized
	}
	return sanitized
}

// SanitizeColumns sanitizes every name and suffixes collisions with _2, _3, ...
// so that "first name" and "first_name" map to distinct columns.
func SanitizeColumns(names []string) []string {
	out := make([]string, len(names))
	used := make(map[string]bool, len(names))
	for i, name := range names {
		base := SanitizeColumnName(name)
		candidate := base
		for n := 2; used[strings.ToLower(candidate)]; n++ {
			candidate = fmt.Sprintf("%s_%d", base, n)
		}
		used[strings.ToLower(candidate)] = true
		out[i] = candidate
	}
	return out
}

// ResolveColumns maps requested column names to the names SanitizeColumns
// gives them when source is stored. A name matching a source column exactly
// wins over a case-insensitive match; names matching neither are returned
// unchanged, so already sanitized names still work.
func ResolveColumns(source, requested []string) []string {
	stored := SanitizeColumns(source)
	exact := make(map[string]string, len(source))
	folded := make(map[string]string, len(source))
	for i, name := range source {
		exact[name] = stored[i]
		key := strings.ToLower(name)
		if _, ok := folded[key]; !ok {
			folded[key] = stored[i]
		}
	}

	out := make([]string, len(requested))
	for i, name := range requested {
		switch {
		case exact[name] != "":
			out[i] = exact[name]
		case folded[strings.ToLower(name)] != "":
			out[i] = folded[strings.ToLower(name)]
		default:
			out[i] = name
		}
	}
	return out
}

// ValidateTableName checks that name can be used unquoted as a table name.
func ValidateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name must not be empty")
	}
	if SanitizeColumnName(name) != name {
		return fmt.Errorf("invalid table name %q: use letters, digits and underscores, not starting with a digit", name)
	}
	if strings.HasPrefix(strings.ToLower(name), "sqlite_") {
		return fmt.Errorf("invalid table name %q: names starting with sqlite_ are reserved", name)
	}
	return nil
}

// quoteIdent quotes an identifier for use in SQL text.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func isIdentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}
