package exporter

import (
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zcashme/zkenrich/internal/database"
	"github.com/zcashme/zkenrich/internal/table"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func TestDetectOutputDelimiter(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		want     rune
	}{
		{"empty", "", ','},
		{"csv file", "output.csv", ','},
		{"tsv file", "output.tsv", '\t'},
		{"csv.gz file", "output.csv.gz", ','},
		{"tsv.gz file", "output.tsv.gz", '\t'},
		{"no extension", "output", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectOutputDelimiter(tt.filePath)
			if got != tt.want {
				t.Errorf("DetectOutputDelimiter(%q) = %q, want %q", tt.filePath, got, tt.want)
			}
		})
	}
}

func sampleTable(t *testing.T, n int) *table.Table {
	t.Helper()
	tbl, err := table.New([]string{"id", "name", "profileurl", "categories"})
	require.NoError(t, err)
	for i := 1; i <= n; i++ {
		id := strconv.Itoa(i)
		require.NoError(t, tbl.AppendRow([]table.Value{
			table.Parse(id),
			table.Parse("user" + id),
			table.String("https://zcash.me/" + id),
			table.String("Personal"),
		}))
	}
	return tbl
}

func TestSave(t *testing.T) {
	tbl, err := table.New([]string{"id", "name", "note"})
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow([]table.Value{table.Parse("1"), table.Parse("Jane, Doe"), table.Parse(`said "hi"`)}))
	require.NoError(t, tbl.AppendRow([]table.Value{table.Parse("2.0"), table.Parse(""), table.Parse("NULL")}))

	outputPath := filepath.Join(t.TempDir(), "users.csv")
	require.NoError(t, os.WriteFile(outputPath, []byte("stale contents that are longer than the output\n"), 0o644))

	result, err := Save(tbl, outputPath, ',')
	require.NoError(t, err)
	assert.Equal(t, 2, result.RowCount)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "id,name,note\n1,\"Jane, Doe\",\"said \"\"hi\"\"\"\n2.0,,NULL\n", string(content))
}

func TestSaveTSV(t *testing.T) {
	tbl := sampleTable(t, 2)
	outputPath := filepath.Join(t.TempDir(), "users.tsv")

	_, err := Save(tbl, outputPath, 0)
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id\tname\tprofileurl\tcategories", lines[0])
}

func TestSaveGzip(t *testing.T) {
	tbl := sampleTable(t, 3)
	outputPath := filepath.Join(t.TempDir(), "users.csv.gz")

	_, err := Save(tbl, outputPath, ',')
	require.NoError(t, err)

	f, err := os.Open(outputPath)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)

	records, err := csv.NewReader(zr).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, tbl.Records(), records)
}

func TestSaveWriteError(t *testing.T) {
	tbl := sampleTable(t, 1)

	tests := []struct {
		name string
		path string
	}{
		{"missing directory", filepath.Join(t.TempDir(), "no", "such", "dir", "users.csv")},
		{"bzip2 output", filepath.Join(t.TempDir(), "users.csv.bz2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Save(tbl, tt.path, ',')
			var we *WriteError
			require.True(t, errors.As(err, &we), "error = %v, want *WriteError", err)
			assert.Equal(t, tt.path, we.Path)
		})
	}
}

func TestDisplay(t *testing.T) {
	tbl := sampleTable(t, 2)

	var buf bytes.Buffer
	require.NoError(t, Display(&buf, tbl, DefaultDisplayOptions()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, col := range tbl.Columns() {
		assert.Contains(t, lines[0], col)
	}
	assert.Contains(t, lines[1], "https://zcash.me/1")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[2]), "1 "), "row index leads the line: %q", lines[2])
	assert.NotContains(t, buf.String(), "rows x")
}

func TestDisplayTruncates(t *testing.T) {
	tbl := sampleTable(t, 100)

	var buf bytes.Buffer
	require.NoError(t, Display(&buf, tbl, DisplayOptions{MaxRows: 60, EdgeRows: 5}))

	out := buf.String()
	assert.Contains(t, out, "user5")
	assert.NotContains(t, out, " user6 ")
	assert.NotContains(t, out, " user50 ")
	assert.Contains(t, out, "user96")
	assert.Contains(t, out, "user100")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "[100 rows x 4 columns]")

	// header + 5 + ellipsis + 5, blank line, shape line
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 14)
}

func TestDisplayAllRows(t *testing.T) {
	tbl := sampleTable(t, 100)

	var buf bytes.Buffer
	require.NoError(t, Display(&buf, tbl, DisplayOptions{}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 101)
}

func TestDisplayFlattensMultilineCells(t *testing.T) {
	tbl, err := table.New([]string{"id", "bio"})
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow([]table.Value{table.Parse("1"), table.Parse("line one\nline two")}))

	var buf bytes.Buffer
	require.NoError(t, Display(&buf, tbl, DefaultDisplayOptions()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], "line one line two")
}

func TestToDatabase(t *testing.T) {
	db, err := database.Open("")
	require.NoError(t, err)
	defer db.Close()

	tbl, err := table.New([]string{"id", "first name", "profileurl"})
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow([]table.Value{table.Parse("1"), table.Parse("Alice"), table.String("https://zcash.me/alice")}))
	require.NoError(t, tbl.AppendRow([]table.Value{table.Parse("2"), table.Parse(""), table.String("https://zcash.me/2")}))

	result, err := ToDatabase(db.DB, "users", tbl)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RowCount)

	columns, err := database.TableColumns(db.DB, "users")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "first_name", "profileurl"}, columns)

	var nulls int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users WHERE first_name IS NULL").Scan(&nulls))
	assert.Equal(t, 1, nulls)

	var url string
	require.NoError(t, db.QueryRow("SELECT profileurl FROM users WHERE id = '1'").Scan(&url))
	assert.Equal(t, "https://zcash.me/alice", url)
}

func TestToDatabaseInvalidTableName(t *testing.T) {
	db, err := database.Open("")
	require.NoError(t, err)
	defer db.Close()

	_, err = ToDatabase(db.DB, "bad name", sampleTable(t, 1))
	assert.Error(t, err)
}
