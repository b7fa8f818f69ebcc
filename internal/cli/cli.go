// Package cli provides the command-line interface for zkenrich.
package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zcashme/zkenrich/internal/config"
	"github.com/zcashme/zkenrich/internal/database"
	"github.com/zcashme/zkenrich/internal/enricher"
	"github.com/zcashme/zkenrich/internal/exporter"
	"github.com/zcashme/zkenrich/internal/importer"
	"github.com/zcashme/zkenrich/internal/table"
)

var (
	// Colors for output
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
)

var rootCmd = &cobra.Command{
	Use:   "zkenrich",
	Short: "Add profile URLs and categories to a ZcashMe users table",
	Long: `zkenrich - enrich a ZcashMe users table

Reads a CSV/TSV users file, adds two columns and writes it back:
  • profileurl: https://zcash.me/<name> for purely alphabetic names,
    https://zcash.me/<id> otherwise
  • categories: one of Business, Personal or Organization, picked at random

The file needs at least the columns 'id' and 'name'. Other columns are kept
as they are. The resulting table is printed when done.`,
	Example: `  # Enrich zks_users_with_cities.csv in place
  zkenrich

  # Read one file, write another
  zkenrich -i users.csv -o users_enriched.csv

  # Also keep a SQLite copy, indexed by category
  zkenrich -i users.csv -d users.db --index categories -q`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCommand,
}

func init() {
	rootCmd.Flags().StringP("input", "i", config.DefaultDataFile, "Input CSV/TSV file")
	rootCmd.Flags().StringP("output", "o", "", "Output CSV/TSV file path (default: overwrite the input)")
	rootCmd.Flags().String("delimiter", "auto", "Field delimiter: 'comma', 'tab', or 'auto' (default: auto)")
	rootCmd.Flags().StringP("db", "d", "", "Also store the enriched table in this SQLite database")
	rootCmd.Flags().StringP("table", "t", config.DefaultTableName, "Table name for the SQLite copy")
	rootCmd.Flags().StringSlice("index", []string{}, "Column(s) to index in the SQLite copy, comma-separated")
	rootCmd.Flags().BoolP("quiet", "q", false, "Do not print the resulting table")
	rootCmd.Flags().Bool("debug", false, "Enable debug logging")
}

// SetVersion sets the text printed by --version.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runCommand(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}

	// Get flags
	inputFile, _ := cmd.Flags().GetString("input")
	outputFile, _ := cmd.Flags().GetString("output")
	delimiterStr, _ := cmd.Flags().GetString("delimiter")
	dbPath, _ := cmd.Flags().GetString("db")
	tableName, _ := cmd.Flags().GetString("table")
	indexColumns, _ := cmd.Flags().GetStringSlice("index")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg.InputFile = inputFile
	cfg.OutputFile = outputFile
	cfg.DBPath = dbPath
	cfg.TableName = tableName
	cfg.IndexColumns = indexColumns
	cfg.Quiet = quiet
	cfg.Debug = debug

	// Parse delimiter
	delimiter, err := config.ParseDelimiter(delimiterStr)
	if err != nil {
		return err
	}
	cfg.Delimiter = delimiter

	// Validate inputs
	if err := cfg.Validate(); err != nil {
		return err
	}

	setupLogging(cfg.Debug)
	return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// setupLogging routes zerolog to stderr; only warnings and errors show
// unless debug is set.
func setupLogging(debug bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// run loads the table, enriches it, writes it back and prints it.
// The table goes to stdout; progress messages go to stderr.
func run(cfg *config.Config, stdout, stderr io.Writer) error {
	delimiter := cfg.Delimiter
	if delimiter == 0 {
		delimiter = importer.DetectDelimiter(cfg.InputFile)
	}

	infoColor.Fprintf(stderr, "Loading %s\n", cfg.InputFile)
	t, err := importer.Load(cfg.InputFile, importer.Options{
		Delimiter: delimiter,
		Required:  enricher.RequiredColumns,
	})
	if err != nil {
		return err
	}
	infoColor.Fprintf(stderr, "  Loaded %d rows\n", t.Len())

	result := enricher.Enrich(t, nil)
	log.Debug().
		Int("rows", result.RowCount).
		Int("name_urls", result.NameURLs).
		Int("id_urls", result.IDURLs).
		Str("categories", formatTally(result.CategoryTally)).
		Msg("enriched table")

	saved, err := exporter.Save(t, cfg.OutputFile, delimiter)
	if err != nil {
		return err
	}
	successColor.Fprintf(stderr, "✓ Wrote %d rows to %s\n", saved.RowCount, cfg.OutputFile)

	if cfg.DBPath != "" {
		if err := snapshot(cfg, t, stderr); err != nil {
			return err
		}
	}

	if cfg.Quiet {
		return nil
	}
	return exporter.Display(stdout, t, exporter.DefaultDisplayOptions())
}

// snapshot stores the enriched table in SQLite and builds the requested indexes.
func snapshot(cfg *config.Config, t *table.Table, stderr io.Writer) error {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			warnColor.Fprintf(stderr, "Warning: %v\n", err)
		}
	}()

	infoColor.Fprintf(stderr, "Storing table '%s' in %s\n", cfg.TableName, db.Path)
	result, err := exporter.ToDatabase(db.DB, cfg.TableName, t)
	if err != nil {
		return fmt.Errorf("failed to store table in %s: %w", db.Path, err)
	}

	if len(cfg.IndexColumns) > 0 {
		columns := database.ResolveColumns(t.Columns(), cfg.IndexColumns)
		if err := database.CreateIndexes(db.DB, cfg.TableName, columns); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
		infoColor.Fprintf(stderr, "  Created %d index(es)\n", len(cfg.IndexColumns))
	}

	successColor.Fprintf(stderr, "✓ Stored %d rows in table '%s'\n", result.RowCount, cfg.TableName)
	return nil
}

func formatTally(tally map[string]int) string {
	keys := make([]string, 0, len(tally))
	for k := range tally {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, tally[k])
	}
	return strings.Join(parts, " ")
}
