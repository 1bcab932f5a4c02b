package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

type Format string

const (
	CSV   Format = "csv"
	TSV   Format = "tsv"
	XLSX  Format = "xlsx"
	XLS   Format = "xls"
	PDF   Format = "pdf"
	Image Format = "image"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

var extensions = map[string]Format{
	".csv":  CSV,
	".txt":  TSV,
	".tsv":  TSV,
	".xlsx": XLSX,
	".xlsm": XLSX,
	".xltx": XLSX,
	".xltm": XLSX,
	".xls":  XLS,
	".pdf":  PDF,
	".png":  Image,
	".jpg":  Image,
	".jpeg": Image,
	".tif":  Image,
	".tiff": Image,
	".bmp":  Image,
	".gif":  Image,
	".webp": Image,
}

// Detect maps a file name to its Format by extension. Images are only
// recognized when ocr is true. Anything else is rejected with
// ErrUnsupportedFormat rather than guessed.
func Detect(name string, ocr bool) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	f, ok := extensions[ext]
	if !ok {
		if ext == "" {
			return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, name)
		}
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if f == Image && !ocr {
		return "", fmt.Errorf("%w: %q requires text recognition, which is disabled", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// Extensions lists the recognized extensions in ascending order.
func Extensions(ocr bool) []string {
	out := make([]string, 0, len(extensions))
	for ext, f := range extensions {
		if f == Image && !ocr {
			continue
		}
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
