// Package database stores enriched tables in SQLite.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps a SQLite database connection with additional metadata.
type DB struct {
	*sql.DB
	Path   string
	IsTemp bool
}

// Open opens or creates a SQLite database at dbPath.
// An empty dbPath creates a temporary database that is removed on Close.
func Open(dbPath string) (*DB, error) {
	path := dbPath
	isTemp := dbPath == ""

	if isTemp {
		tmpFile, err := os.CreateTemp("", "zkenrich-*.db")
		if err != nil {
			return nil, fmt.Errorf("failed to create temporary database: %w", err)
		}
		tmpFile.Close()
		path = tmpFile.Name()
	} else if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err == nil {
		err = db.Ping()
	}
	if err != nil {
		if isTemp {
			os.Remove(path)
		}
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{DB: db, Path: path, IsTemp: isTemp}, nil
}

// Close closes the connection and removes the file of a temporary database.
func (d *DB) Close() error {
	if err := d.DB.Close(); err != nil {
		return err
	}
	if d.IsTemp {
		if err := os.Remove(d.Path); err != nil {
			return fmt.Errorf("failed to remove temporary database %s: %w", d.Path, err)
		}
	}
	return nil
}
