package exporter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/zcashme/zkenrich/internal/table"
)

const (
	// DefaultMaxRows is the largest table printed in full.
	DefaultMaxRows = 60
	// DefaultEdgeRows is how many rows are shown at each end of a truncated table.
	DefaultEdgeRows = 5
)

// DisplayOptions controls console rendering.
type DisplayOptions struct {
	// MaxRows is the largest table printed in full. Zero or less prints every row.
	MaxRows int
	// EdgeRows is the number of leading and trailing rows kept when truncating.
	EdgeRows int
}

// DefaultDisplayOptions returns the options used by the CLI.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{MaxRows: DefaultMaxRows, EdgeRows: DefaultEdgeRows}
}

// Display prints the table as right-aligned columns with a leading row index.
// Tables longer than opts.MaxRows show only their first and last rows,
// followed by a shape line.
func Display(w io.Writer, t *table.Table, opts DisplayOptions) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	columns := t.Columns()
	writeLine(tw, "", columns)

	n := t.Len()
	truncated := opts.MaxRows > 0 && n > opts.MaxRows && opts.EdgeRows*2 < n
	for i := 0; i < n; i++ {
		if truncated && i == opts.EdgeRows {
			ellipsis := make([]string, len(columns))
			for j := range ellipsis {
				ellipsis[j] = "..."
			}
			writeLine(tw, "..", ellipsis)
			i = n - opts.EdgeRows - 1
			continue
		}
		writeLine(tw, strconv.Itoa(i), t.Record(i))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	if truncated || n == 0 {
		if _, err := fmt.Fprintf(w, "\n[%d rows x %d columns]\n", n, len(columns)); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}
	return nil
}

func writeLine(w io.Writer, index string, cells []string) {
	var b strings.Builder
	b.WriteString(index)
	b.WriteByte('\t')
	for _, c := range cells {
		b.WriteString(sanitizeCell(c))
		b.WriteByte('\t')
	}
	b.WriteByte('\n')
	io.WriteString(w, b.String())
}

// sanitizeCell keeps embedded tabs and newlines from breaking column alignment.
func sanitizeCell(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
