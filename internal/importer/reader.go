// Package importer loads CSV/TSV user files into an in-memory table.
package importer

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// OpenFile opens a file, handling compression automatically based on extension.
// Supports .gz (gzip) and .bz2 (bzip2) compressed files.
// A leading UTF-8 byte-order mark is stripped from the decompressed stream.
func OpenFile(filePath string) (io.ReadCloser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	var r io.Reader = file
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".gz":
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return &sourceFile{
			file:   file,
			closer: gzReader,
			reader: stripBOM(gzReader),
		}, nil
	case ".bz2":
		r = bzip2.NewReader(file)
	}

	return &sourceFile{file: file, reader: stripBOM(r)}, nil
}

// stripBOM drops a UTF-8 byte-order mark. Input without one passes through unchanged.
func stripBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}

// sourceFile wraps the decoding reader chain and the underlying file to close both.
type sourceFile struct {
	file   *os.File
	closer io.Closer
	reader io.Reader
}

func (s *sourceFile) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

func (s *sourceFile) Close() error {
	if s.closer != nil {
		s.closer.Close()
	}
	return s.file.Close()
}

// DetectDelimiter detects the delimiter based on file extension.
// Returns ',' for CSV files and '\t' for TSV files.
func DetectDelimiter(filePath string) rune {
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
