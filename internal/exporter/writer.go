// Package exporter writes enriched tables to files, the console and SQLite.
package exporter

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteError is returned when the destination cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// OpenOutputFile opens an output file, handling compression automatically based on extension.
// An existing file is truncated.
func OpenOutputFile(filePath string) (io.WriteCloser, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == ".bz2" {
		return nil, fmt.Errorf("bzip2 output compression not supported, use .gz instead")
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}

	if ext == ".gz" {
		return &gzipWriter{file: file, writer: gzip.NewWriter(file)}, nil
	}
	return file, nil
}

// gzipWriter wraps gzip writer and file to close both properly.
type gzipWriter struct {
	file   *os.File
	writer *gzip.Writer
}

func (g *gzipWriter) Write(p []byte) (int, error) {
	return g.writer.Write(p)
}

func (g *gzipWriter) Close() error {
	if err := g.writer.Close(); err != nil {
		g.file.Close()
		return err
	}
	return g.file.Close()
}

// DetectOutputDelimiter detects the output delimiter based on file extension.
// Returns ',' for CSV files and '\t' for TSV files.
func DetectOutputDelimiter(filePath string) rune {
	if filePath == "" {
		return ','
	}

	// Strip compression extensions first
	path := filePath
	for {
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".gz" || ext == ".bz2" {
			path = strings.TrimSuffix(path, filepath.Ext(path))
			continue
		}
		break
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".tsv" {
		return '\t'
	}
	return ','
}
