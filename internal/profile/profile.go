// Package profile describes configuration variants of the comparator: side
// labels plus the case, OCR, export and header switches.
package profile

import (
	"fmt"

	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
	"github.com/DjordjeVuckovic/code-comparator/internal/extract"
	"github.com/DjordjeVuckovic/code-comparator/internal/report"
	"github.com/DjordjeVuckovic/code-comparator/internal/token"
)

const (
	Kind    = "ComparatorProfile"
	Version = "v1"
)

type Profile struct {
	Kind          string        `json:"kind" yaml:"kind"`
	Version       string        `json:"version" yaml:"version"`
	Metadata      Metadata      `json:"metadata" yaml:"metadata"`
	Labels        report.Labels `json:"labels" yaml:"labels"`
	CaseSensitive bool          `json:"caseSensitive" yaml:"case_sensitive"`
	EnableOCR     bool          `json:"enableOcr" yaml:"enable_ocr"`
	EnableExport  bool          `json:"enableExport" yaml:"enable_export"`
	HasHeader     bool          `json:"hasHeader" yaml:"has_header"`
	OCR           OCR           `json:"ocr" yaml:"ocr"`
	MaxUploadMB   int64         `json:"maxUploadMb" yaml:"max_upload_mb"`
}

type Metadata struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

type OCR struct {
	Binary   string `json:"binary" yaml:"binary"`
	Language string `json:"language" yaml:"language"`
}

// Default keeps case (most variants do), disables OCR, allows export and
// treats the first CSV or workbook row as data.
func Default() *Profile {
	return &Profile{
		Kind:          Kind,
		Version:       Version,
		Metadata:      Metadata{Name: "default"},
		Labels:        report.DefaultLabels(),
		CaseSensitive: true,
		EnableOCR:     false,
		EnableExport:  true,
		HasHeader:     false,
		OCR:           OCR{Binary: "tesseract", Language: "eng"},
		MaxUploadMB:   extract.DefaultMaxUploadBytes >> 20,
	}
}

func (p *Profile) Validate() error {
	if p.Kind != Kind {
		return fmt.Errorf("kind must be %q, got %q", Kind, p.Kind)
	}
	if p.Version != Version {
		return fmt.Errorf("unsupported version %q", p.Version)
	}
	if p.Metadata.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}
	if p.Labels.First == "" || p.Labels.Second == "" {
		return fmt.Errorf("labels.first and labels.second are required")
	}
	if p.Labels.First == p.Labels.Second {
		return fmt.Errorf("labels must differ, both are %q", p.Labels.First)
	}
	if p.MaxUploadMB <= 0 {
		return fmt.Errorf("max_upload_mb must be positive, got %d", p.MaxUploadMB)
	}
	if p.EnableOCR && p.OCR.Binary == "" {
		return fmt.Errorf("ocr.binary is required when enable_ocr is set")
	}
	return nil
}

// Options builds the comparison options described by the profile.
func (p *Profile) Options() compare.Options {
	opts := compare.Options{
		Policy: token.Policy{CaseSensitive: p.CaseSensitive},
		Extract: extract.Options{
			HasHeader:      p.HasHeader,
			EnableOCR:      p.EnableOCR,
			MaxUploadBytes: p.MaxUploadMB << 20,
		},
		EnableExport: p.EnableExport,
	}
	if p.EnableOCR {
		opts.Extract.Recognizer = extract.NewTesseract(
			extract.WithBinary(p.OCR.Binary),
			extract.WithLanguage(p.OCR.Language),
		)
	}
	return opts
}
