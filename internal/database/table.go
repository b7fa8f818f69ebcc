package database

import (
	"database/sql"
	"fmt"
	"strings"
)

const (
	// BatchSize is the number of rows to insert in a single transaction.
	BatchSize = 10000
)

// CreateTable replaces tableName with an empty table of TEXT columns.
// Column names are used as given; pass them through SanitizeColumns first.
func CreateTable(db *sql.DB, tableName string, columns []string) error {
	if _, err := db.Exec("DROP TABLE IF EXISTS " + quoteIdent(tableName)); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}

	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = quoteIdent(col) + " TEXT"
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(tableName), strings.Join(defs, ", "))
	if _, err := db.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// InsertRows inserts rows in transactions of BatchSize rows.
// A nil value is stored as NULL. Returns the number of rows inserted.
func InsertRows(db *sql.DB, tableName string, columns []string, rows [][]any) (int, error) {
	inserted := 0
	for start := 0; start < len(rows); start += BatchSize {
		end := min(start+BatchSize, len(rows))
		if err := insertBatch(db, tableName, columns, rows[start:end]); err != nil {
			return inserted, err
		}
		inserted += end - start
	}
	return inserted, nil
}

func insertBatch(db *sql.DB, tableName string, columns []string, batch [][]any) error {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(tableName),
		strings.Join(quoted, ", "),
		placeholders)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range batch {
		if len(row) != len(columns) {
			return fmt.Errorf("row has %d values, table has %d columns", len(row), len(columns))
		}
		if _, err := stmt.Exec(row...); err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// TableColumns returns the column names for a table.
func TableColumns(db *sql.DB, tableName string) ([]string, error) {
	rows, err := db.Query("SELECT name FROM pragma_table_info(?)", tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get table info: %w", err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table '%s' does not exist", tableName)
	}
	return columns, nil
}

// CreateIndexes creates one index per column. Column names are matched
// case-insensitively against the stored table; map source names through
// ResolveColumns first. Every column is checked before any index is created.
func CreateIndexes(db *sql.DB, tableName string, columns []string) error {
	if len(columns) == 0 {
		return nil
	}

	existing, err := TableColumns(db, tableName)
	if err != nil {
		return err
	}
	known := make(map[string]string, len(existing))
	for _, col := range existing {
		known[strings.ToLower(col)] = col
	}

	stored := make([]string, len(columns))
	var missing []string
	for i, col := range columns {
		name, ok := known[strings.ToLower(col)]
		if !ok {
			missing = append(missing, col)
			continue
		}
		stored[i] = name
	}
	if len(missing) > 0 {
		return fmt.Errorf("columns not found in table '%s': %s", tableName, strings.Join(missing, ", "))
	}

	for i, col := range stored {
		indexName := fmt.Sprintf("idx_%s_%s", tableName, col)
		createSQL := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
			quoteIdent(indexName), quoteIdent(tableName), quoteIdent(col))
		if _, err := db.Exec(createSQL); err != nil {
			return fmt.Errorf("failed to create index on %s.%s: %w", tableName, columns[i], err)
		}
	}
	return nil
}
