package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zcashme/zkenrich/internal/table"
)

// Options controls how a file is loaded.
type Options struct {
	// Delimiter separates fields. Zero selects it from the file extension.
	Delimiter rune
	// Required lists columns that must appear in the header.
	Required []string
}

// Load reads a delimited file with a header row into a table.
// The whole file is read into memory.
func Load(filePath string, opts Options) (*table.Table, error) {
	start := time.Now()

	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = DetectDelimiter(filePath)
	}

	file, err := OpenFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: filePath, Err: err}
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	// Names such as `Jane "JJ" Doe` carry bare quotes.
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	headerRow, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: filePath, Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, parseError(filePath, err)
	}
	headers := make([]string, len(headerRow))
	copy(headers, headerRow)

	t, err := table.New(headers)
	if err != nil {
		return nil, &ParseError{Path: filePath, Line: 1, Err: err}
	}
	for _, col := range opts.Required {
		if !t.HasColumn(col) {
			return nil, &ParseError{Path: filePath, Err: fmt.Errorf("missing required column %q", col)}
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(filePath, err)
		}

		values := make([]table.Value, len(record))
		for i, cell := range record {
			values[i] = table.Parse(cell)
		}
		if err := t.AppendRow(values); err != nil {
			line, _ := reader.FieldPos(0)
			return nil, &ParseError{Path: filePath, Line: line, Err: err}
		}
	}

	log.Debug().
		Str("file", filePath).
		Int("rows", t.Len()).
		Int("columns", len(headers)).
		Dur("took", time.Since(start)).
		Msg("loaded table")

	return t, nil
}

func parseError(filePath string, err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Path: filePath, Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Path: filePath, Err: err}
}
