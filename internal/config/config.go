// Package config provides configuration types and parsing for zkenrich.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zcashme/zkenrich/internal/database"
)

const (
	// DefaultDataFile is read and rewritten when no input is given.
	DefaultDataFile = "zks_users_with_cities.csv"
	// DefaultTableName names the SQLite snapshot table.
	DefaultTableName = "users"
)

// Config holds all configuration options for zkenrich.
type Config struct {
	InputFile    string
	OutputFile   string // defaults to InputFile, without a .bz2 suffix
	Delimiter    rune   // 0 picks it from the file extension
	DBPath       string // SQLite snapshot; empty disables it
	TableName    string
	IndexColumns []string // Columns to index in the snapshot
	Quiet        bool     // skip printing the table
	Debug        bool
}

// ParseDelimiter converts a delimiter string to a rune.
// Valid values: "comma", "csv", "tab", "tsv", "auto".
// Returns 0 for auto-detection.
func ParseDelimiter(delimiterStr string) (rune, error) {
	switch strings.ToLower(delimiterStr) {
	case "comma", "csv":
		return ',', nil
	case "tab", "tsv":
		return '\t', nil
	case "auto":
		return 0, nil
	default:
		return 0, fmt.Errorf("invalid delimiter: %s (use 'comma', 'tab', or 'auto')", delimiterStr)
	}
}

// Validate checks if the configuration is valid and fills in defaults.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("input file must not be empty")
	}
	if c.OutputFile == "" {
		c.OutputFile = c.InputFile
		if isBzip2(c.InputFile) {
			c.OutputFile = strings.TrimSuffix(c.InputFile, filepath.Ext(c.InputFile))
		}
	}
	if isBzip2(c.OutputFile) {
		return fmt.Errorf("cannot write %s: bzip2 output compression not supported, use .gz instead", c.OutputFile)
	}
	if c.TableName == "" {
		c.TableName = DefaultTableName
	}
	if len(c.IndexColumns) > 0 && c.DBPath == "" {
		return fmt.Errorf("--index requires --db")
	}
	if c.DBPath != "" {
		if err := database.ValidateTableName(c.TableName); err != nil {
			return err
		}
	}
	return nil
}

// isBzip2 reports whether path names a bzip2 file. Those can be read but not written.
func isBzip2(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".bz2")
}
