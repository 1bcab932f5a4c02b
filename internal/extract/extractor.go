// Package extract reads uploaded files into tables of candidate code cells.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

const DefaultMaxUploadBytes int64 = 32 << 20

// Table holds the cells of one file. Rows may have different lengths.
type Table [][]string

type Options struct {
	// HasHeader drops the first row of CSV files and workbooks of either
	// kind.
	HasHeader bool
	// EnableOCR allows raster images, read through Recognizer.
	EnableOCR      bool
	MaxUploadBytes int64
	Recognizer     Recognizer
}

type Extractor struct {
	opts Options
}

func New(opts Options) *Extractor {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.EnableOCR && opts.Recognizer == nil {
		opts.Recognizer = NewTesseract()
	}
	return &Extractor{opts: opts}
}

// Extract detects the format of name and parses r into a Table. The reader
// is consumed fully before parsing.
func (e *Extractor) Extract(ctx context.Context, name string, r io.Reader) (Table, Format, error) {
	format, err := Detect(name, e.opts.EnableOCR)
	if err != nil {
		return nil, "", err
	}

	data, err := e.readAll(r)
	if err != nil {
		return nil, format, err
	}
	if len(data) == 0 {
		slog.Debug("Empty upload", "file", name, "format", format)
		return nil, format, nil
	}

	var table Table
	switch format {
	case CSV:
		table, err = readDelimited(bytes.NewReader(data), ',', e.opts.HasHeader)
	case TSV:
		table, err = readTabbed(bytes.NewReader(data))
	case XLSX:
		table, err = readWorkbook(bytes.NewReader(data), e.opts.HasHeader)
	case XLS:
		table, err = readLegacyWorkbook(bytes.NewReader(data), e.opts.HasHeader)
	case PDF:
		table, err = readPDF(data)
	case Image:
		table, err = e.readImage(ctx, data, strings.ToLower(filepath.Ext(name)))
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, format, fmt.Errorf("parse %s: %w", format, err)
	}

	slog.Debug("Extracted table", "file", name, "format", format, "rows", len(table))
	return table, format, nil
}

func (e *Extractor) readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, e.opts.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > e.opts.MaxUploadBytes {
		return nil, fmt.Errorf("file exceeds maximum allowed size of %d bytes", e.opts.MaxUploadBytes)
	}
	return data, nil
}

func (e *Extractor) readImage(ctx context.Context, data []byte, ext string) (Table, error) {
	text, err := e.opts.Recognizer.Recognize(ctx, data, ext)
	if err != nil {
		return nil, fmt.Errorf("text recognition: %w", err)
	}
	return linesTable(text), nil
}

// linesTable re-flows free text into one cell per non-empty line.
func linesTable(text string) Table {
	var table Table
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		table = append(table, []string{line})
	}
	return table
}
