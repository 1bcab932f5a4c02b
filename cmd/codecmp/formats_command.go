package main

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/code-comparator/internal/extract"
	"github.com/spf13/cobra"
)

func newFormatsCommand() *cobra.Command {
	var ocr bool

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the file extensions compare accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(extract.Extensions(ocr), " "))
			return err
		},
	}
	cmd.Flags().BoolVar(&ocr, "ocr", false, "Include image formats read with text recognition")

	return cmd
}
