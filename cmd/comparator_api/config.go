package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/code-comparator/internal/profile"
	"github.com/DjordjeVuckovic/code-comparator/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/code-comparator/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ComparatorConfig struct {
	Profile         *profile.Profile
	ResultStoreSize int
}

func (as *AppConfig) Load() (*ComparatorConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/comparator_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	p := profile.Default()
	if path := os.Getenv("PROFILE_PATH"); path != "" {
		p, err = profile.LoadFromFile(path)
		if err != nil {
			slog.Error("Failed to load profile", "path", path, "error", err)
			return nil, err
		}
		slog.Info("Loaded comparator profile", "name", p.Metadata.Name, "path", path)
	}

	if err := applyEnv(p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comparator configuration: %w", err)
	}

	storeSize, err := env.Int("RESULT_STORE_SIZE", in_mem.DefaultCapacity)
	if err != nil {
		return nil, err
	}

	return &ComparatorConfig{
		Profile:         p,
		ResultStoreSize: storeSize,
	}, nil
}

// applyEnv lets individual variables override the profile.
func applyEnv(p *profile.Profile) error {
	var err error
	if p.CaseSensitive, err = env.Bool("CASE_SENSITIVE", p.CaseSensitive); err != nil {
		return err
	}
	if p.EnableOCR, err = env.Bool("ENABLE_OCR", p.EnableOCR); err != nil {
		return err
	}
	if p.EnableExport, err = env.Bool("ENABLE_EXPORT", p.EnableExport); err != nil {
		return err
	}
	if p.HasHeader, err = env.Bool("CSV_HEADER", p.HasHeader); err != nil {
		return err
	}
	maxMB, err := env.Int("MAX_UPLOAD_MB", int(p.MaxUploadMB))
	if err != nil {
		return err
	}
	p.MaxUploadMB = int64(maxMB)

	p.OCR.Binary = env.String("OCR_BINARY", p.OCR.Binary)
	p.OCR.Language = env.String("OCR_LANGUAGE", p.OCR.Language)
	p.Labels.First = env.String("FIRST_LABEL", p.Labels.First)
	p.Labels.Second = env.String("SECOND_LABEL", p.Labels.Second)
	return nil
}
