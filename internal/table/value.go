// Package table provides the in-memory table used by zkenrich.
package table

import (
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindAbsent marks a missing cell.
	KindAbsent Kind = iota
	// KindString marks free text.
	KindString
	// KindNumber marks a cell that parses as a floating-point number.
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// missingTokens are cell contents treated as a missing value on load.
var missingTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// Value is a single cell: absent, a string, or a number.
// Values parsed from a file keep their raw text so they are written back
// exactly as they were read.
type Value struct {
	kind Kind
	raw  string
	num  float64
}

// Absent returns a missing value.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, raw: s}
}

// Number returns a numeric value rendered with the shortest representation.
func Number(f float64) Value {
	return Value{kind: KindNumber, raw: strconv.FormatFloat(f, 'f', -1, 64), num: f}
}

// Parse classifies raw cell text.
func Parse(cell string) Value {
	if IsMissingToken(cell) {
		return Value{kind: KindAbsent, raw: cell}
	}
	if s := strings.TrimSpace(cell); looksNumeric(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Value{kind: KindNumber, raw: cell, num: f}
		}
	}
	return Value{kind: KindString, raw: cell}
}

// looksNumeric rejects the spelled-out forms ParseFloat accepts, such as
// "Inf" or "nan", so that names like "Nan" stay strings.
func looksNumeric(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '.'
}

// IsMissingToken reports whether cell is read as a missing value.
func IsMissingToken(cell string) bool {
	_, ok := missingTokens[cell]
	return ok
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is missing.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Text returns the string payload and true if v is a string value.
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.raw, true
}

// Float returns the numeric payload and true if v is a number.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// String returns the cell text as it is written to a file.
func (v Value) String() string {
	return v.raw
}
