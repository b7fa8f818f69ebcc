package exporter

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/zcashme/zkenrich/internal/database"
	"github.com/zcashme/zkenrich/internal/table"
)

// ToDatabase replaces tableName in db with a copy of t.
// Absent values are stored as NULL.
func ToDatabase(db *sql.DB, tableName string, t *table.Table) (*Result, error) {
	if err := database.ValidateTableName(tableName); err != nil {
		return nil, err
	}

	columns := database.SanitizeColumns(t.Columns())
	if err := database.CreateTable(db, tableName, columns); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	rows := make([][]any, t.Len())
	for i := range rows {
		values := t.Row(i).Values()
		row := make([]any, len(values))
		for j, v := range values {
			if !v.IsAbsent() {
				row[j] = v.String()
			}
		}
		rows[i] = row
	}

	n, err := database.InsertRows(db, tableName, columns, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to insert rows: %w", err)
	}

	log.Debug().Str("table", tableName).Int("rows", n).Msg("stored snapshot")
	return &Result{RowCount: n}, nil
}
