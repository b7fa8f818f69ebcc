package enricher

import (
	"github.com/zcashme/zkenrich/internal/table"
)

// Result contains the outcome of an enrich pass.
type Result struct {
	RowCount      int
	NameURLs      int // profile URLs built from the name
	IDURLs        int // profile URLs built from the id
	CategoryTally map[string]int
}

// Enrich sets the profileurl column for every row, then the categories column.
// A nil pick uses RandomCategory.
func Enrich(t *table.Table, pick CategoryFunc) *Result {
	if pick == nil {
		pick = RandomCategory
	}

	result := &Result{
		RowCount:      t.Len(),
		CategoryTally: make(map[string]int, len(Categories)),
	}

	t.SetColumn(ColumnProfileURL, func(row table.Row) table.Value {
		if fromName(row) {
			result.NameURLs++
		} else {
			result.IDURLs++
		}
		return table.String(ProfileURL(row))
	})

	t.SetColumn(ColumnCategories, func(table.Row) table.Value {
		c := pick()
		result.CategoryTally[c]++
		return table.String(c)
	})

	return result
}
