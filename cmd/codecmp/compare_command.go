package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
	"github.com/DjordjeVuckovic/code-comparator/internal/profile"
	"github.com/DjordjeVuckovic/code-comparator/internal/report"
	"github.com/spf13/cobra"
)

type compareFlags struct {
	profilePath string
	ignoreCase  bool
	ocr         bool
	header      bool
	ocrBinary   string
	ocrLanguage string
	firstLabel  string
	secondLabel string
	exportPath  string
	section     string
	json        bool
	plain       bool
}

func newCompareCommand() *cobra.Command {
	var flags compareFlags

	cmd := &cobra.Command{
		Use:   "compare <first> <second>",
		Short: "Report codes shared by both files and codes unique to one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.profile(cmd)
			if err != nil {
				return err
			}
			return runCompare(cmd, p, flags, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&flags.profilePath, "profile", "p", "", "Comparator profile YAML")
	cmd.Flags().BoolVarP(&flags.ignoreCase, "ignore-case", "i", false, "Upper-case codes before comparing")
	cmd.Flags().BoolVar(&flags.ocr, "ocr", false, "Accept images and read them with text recognition")
	cmd.Flags().BoolVar(&flags.header, "header", false, "Treat the first CSV or workbook row as a header")
	cmd.Flags().StringVar(&flags.ocrBinary, "ocr-binary", "", "Text recognition binary (default tesseract)")
	cmd.Flags().StringVar(&flags.ocrLanguage, "ocr-lang", "", "Text recognition language (default eng)")
	cmd.Flags().StringVar(&flags.firstLabel, "first-label", "", "Name shown for the first file")
	cmd.Flags().StringVar(&flags.secondLabel, "second-label", "", "Name shown for the second file")
	cmd.Flags().StringVarP(&flags.exportPath, "export", "o", "", "Write the result to this file")
	cmd.Flags().StringVar(&flags.section, "section", string(report.All), "Section to export: all, matches, first or second")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "Print counts and differences as aligned columns")
	cmd.MarkFlagsMutuallyExclusive("json", "plain")

	return cmd
}

// profile loads the configured profile and applies explicitly set flags on
// top of it.
func (f compareFlags) profile(cmd *cobra.Command) (*profile.Profile, error) {
	p := profile.Default()
	if f.profilePath != "" {
		loaded, err := profile.LoadFromFile(f.profilePath)
		if err != nil {
			return nil, err
		}
		p = loaded
	}

	changed := cmd.Flags().Changed
	if changed("ignore-case") {
		p.CaseSensitive = !f.ignoreCase
	}
	if changed("ocr") {
		p.EnableOCR = f.ocr
	}
	if changed("header") {
		p.HasHeader = f.header
	}
	if f.ocrBinary != "" {
		p.OCR.Binary = f.ocrBinary
	}
	if f.ocrLanguage != "" {
		p.OCR.Language = f.ocrLanguage
	}
	if f.firstLabel != "" {
		p.Labels.First = f.firstLabel
	}
	if f.secondLabel != "" {
		p.Labels.Second = f.secondLabel
	}
	if f.exportPath != "" {
		p.EnableExport = true
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func runCompare(cmd *cobra.Command, p *profile.Profile, flags compareFlags, firstPath, secondPath string) error {
	section, err := report.ParseSection(flags.section)
	if err != nil {
		return err
	}

	first, err := os.Open(firstPath)
	if err != nil {
		return fmt.Errorf("open first file: %w", err)
	}
	defer first.Close()

	second, err := os.Open(secondPath)
	if err != nil {
		return fmt.Errorf("open second file: %w", err)
	}
	defer second.Close()

	service := compare.NewService(p.Options())
	res, err := service.Compare(cmd.Context(),
		compare.Upload{Name: filepath.Base(firstPath), Body: first},
		compare.Upload{Name: filepath.Base(secondPath), Body: second},
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case flags.json:
		err = report.WriteJSON(out, *res, p.Labels)
	case flags.plain:
		err = report.WriteSummary(out, *res, p.Labels)
	default:
		err = writeResult(out, *res, p.Labels)
	}
	if err != nil {
		return err
	}

	if flags.exportPath != "" {
		if err := writeExport(flags.exportPath, *res, p.Labels, section); err != nil {
			return err
		}
		slog.Info("Exported comparison", "path", flags.exportPath, "section", section)
	}
	return nil
}

func writeExport(path string, res compare.Result, labels report.Labels, section report.Section) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", cerr)
		}
	}()

	return report.WriteExport(f, res, labels, section)
}
