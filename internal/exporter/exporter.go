package exporter

import (
	"encoding/csv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zcashme/zkenrich/internal/table"
)

// Result contains the result of an export operation.
type Result struct {
	RowCount int
}

// Save writes the table with its header to filePath, replacing any existing file.
// A zero delimiter is picked from the file extension.
func Save(t *table.Table, filePath string, delimiter rune) (res *Result, err error) {
	start := time.Now()
	if delimiter == 0 {
		delimiter = DetectOutputDelimiter(filePath)
	}

	output, err := OpenOutputFile(filePath)
	if err != nil {
		return nil, &WriteError{Path: filePath, Err: err}
	}
	defer func() {
		if cerr := output.Close(); cerr != nil && err == nil {
			res, err = nil, &WriteError{Path: filePath, Err: cerr}
		}
	}()

	writer := csv.NewWriter(output)
	writer.Comma = delimiter

	if err := writer.Write(t.Columns()); err != nil {
		return nil, &WriteError{Path: filePath, Err: err}
	}
	for i := 0; i < t.Len(); i++ {
		if err := writer.Write(t.Record(i)); err != nil {
			return nil, &WriteError{Path: filePath, Err: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, &WriteError{Path: filePath, Err: err}
	}

	log.Debug().
		Str("file", filePath).
		Int("rows", t.Len()).
		Dur("took", time.Since(start)).
		Msg("saved table")

	return &Result{RowCount: t.Len()}, nil
}
