package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/DjordjeVuckovic/code-comparator/internal/apperr"
	"github.com/DjordjeVuckovic/code-comparator/internal/extract"
	"github.com/DjordjeVuckovic/code-comparator/internal/token"
)

// ErrMissingUpload is returned when either side has not been provided. Callers
// treat it as "nothing to compare yet", not as a failure.
var ErrMissingUpload = errors.New("both files are required")

type Options struct {
	Policy       token.Policy
	Extract      extract.Options
	EnableExport bool
}

func DefaultOptions() Options {
	return Options{
		Policy:       token.DefaultPolicy(),
		Extract:      extract.Options{MaxUploadBytes: extract.DefaultMaxUploadBytes},
		EnableExport: true,
	}
}

type Upload struct {
	Name string
	Body io.Reader
}

func (u Upload) present() bool {
	return u.Name != "" && u.Body != nil
}

type Service struct {
	opts      Options
	extractor *extract.Extractor
}

func NewService(opts Options) *Service {
	return &Service{
		opts:      opts,
		extractor: extract.New(opts.Extract),
	}
}

func (s *Service) Options() Options {
	return s.opts
}

// Compare extracts both uploads and compares their token sets. Unsupported
// formats come back as *apperr.ValidationError, unreadable content as
// *apperr.ExtractionError.
func (s *Service) Compare(ctx context.Context, first, second Upload) (*Result, error) {
	if !first.present() || !second.present() {
		return nil, ErrMissingUpload
	}

	a, err := s.Tokens(ctx, first)
	if err != nil {
		return nil, err
	}
	b, err := s.Tokens(ctx, second)
	if err != nil {
		return nil, err
	}

	res := Compare(a, b)
	slog.Info("Comparison finished",
		"first", first.Name,
		"second", second.Name,
		"matches", len(res.Matches),
		"onlyInFirst", len(res.OnlyInFirst),
		"onlyInSecond", len(res.OnlyInSecond),
	)
	return &res, nil
}

// Tokens extracts and normalizes a single upload.
func (s *Service) Tokens(ctx context.Context, u Upload) (token.Set, error) {
	table, format, err := s.extractor.Extract(ctx, u.Name, u.Body)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return nil, apperr.NewValidationWrap(fmt.Sprintf("cannot read %s", u.Name), err)
		}
		return nil, apperr.NewExtraction(u.Name, err)
	}

	set := token.Normalize(s.opts.Policy, table)
	slog.Info("Extracted tokens", "file", u.Name, "format", format, "tokens", set.Len())
	return set, nil
}
