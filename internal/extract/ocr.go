package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var commandContext = exec.CommandContext

// Recognizer recovers text from a raster image.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, ext string) (string, error)
}

// TesseractOption configures the tesseract client.
type TesseractOption func(*Tesseract)

// WithBinary overrides the default binary name.
func WithBinary(binary string) TesseractOption {
	return func(t *Tesseract) {
		if binary != "" {
			t.binary = binary
		}
	}
}

// WithLanguage sets the recognition language passed with -l.
func WithLanguage(lang string) TesseractOption {
	return func(t *Tesseract) {
		if lang != "" {
			t.language = lang
		}
	}
}

// Tesseract wraps the tesseract command-line recognizer.
type Tesseract struct {
	binary   string
	language string
}

func NewTesseract(opts ...TesseractOption) *Tesseract {
	t := &Tesseract{binary: "tesseract", language: "eng"}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Recognize writes the image to a temporary file and returns the text
// tesseract prints on stdout. The file is removed before returning.
func (t *Tesseract) Recognize(ctx context.Context, image []byte, ext string) (string, error) {
	if len(image) == 0 {
		return "", errors.New("image is empty")
	}

	tmp, err := os.CreateTemp("", "codecmp-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp image: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(image); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp image: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := commandContext(ctx, t.binary, tmp.Name(), "stdout", "-l", t.language) //nolint:gosec
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %w: %s", t.binary, err, msg)
		}
		return "", fmt.Errorf("%s: %w", t.binary, err)
	}

	return stdout.String(), nil
}
