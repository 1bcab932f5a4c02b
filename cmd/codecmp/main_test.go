package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
	"github.com/DjordjeVuckovic/code-comparator/internal/report"
	"github.com/DjordjeVuckovic/code-comparator/internal/token"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fixtures(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	first := writeFile(t, dir, "seamaster.csv", "ABC1234\nxyz9999\n  DEF0001 \n")
	second := writeFile(t, dir, "trucker.txt", "ABC1234\nXYZ9999\nGHI0002\n")
	return first, second
}

func TestCompare_DefaultOutput(t *testing.T) {
	first, second := fixtures(t)

	out, err := runCLI(t, "compare", first, second)
	require.NoError(t, err)

	assert.Contains(t, out, "Total matches")
	assert.Contains(t, out, "Matching codes (1)")
	assert.Contains(t, out, "Only in First file (2)")
	assert.Contains(t, out, "Only in Second file (2)")
	assert.Contains(t, out, "DEF0001")
	assert.NotContains(t, out, "\x1b[", "piped output must not carry color codes")
}

func TestCompare_IgnoreCase(t *testing.T) {
	first, second := fixtures(t)

	out, err := runCLI(t, "compare", "--ignore-case", "--json", first, second)
	require.NoError(t, err)

	var doc struct {
		Matches      []string `json:"matches"`
		OnlyInFirst  []string `json:"onlyInFirst"`
		OnlyInSecond []string `json:"onlyInSecond"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"ABC1234", "XYZ9999"}, doc.Matches)
	assert.Equal(t, []string{"DEF0001"}, doc.OnlyInFirst)
	assert.Equal(t, []string{"GHI0002"}, doc.OnlyInSecond)
}

func TestCompare_Labels(t *testing.T) {
	first, second := fixtures(t)

	out, err := runCLI(t, "compare", "--first-label", "Seamaster", "--second-label", "Trucker", first, second)
	require.NoError(t, err)

	assert.Contains(t, out, "Only in Seamaster (2)")
	assert.Contains(t, out, "Only in Trucker (2)")
}

func TestCompare_Plain(t *testing.T) {
	first, second := fixtures(t)

	out, err := runCLI(t, "compare", "--plain", first, second)
	require.NoError(t, err)

	assert.Contains(t, out, "=== Summary ===")
	assert.Contains(t, out, "GHI0002")
}

func TestCompare_Export(t *testing.T) {
	first, second := fixtures(t)
	exportPath := filepath.Join(t.TempDir(), "only_in_second.txt")

	_, err := runCLI(t, "compare", "--export", exportPath, "--section", "second", first, second)
	require.NoError(t, err)

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Equal(t, "GHI0002\nXYZ9999\n", string(data))
}

func TestCompare_Profile(t *testing.T) {
	first, second := fixtures(t)
	profilePath := writeFile(t, t.TempDir(), "profile.yaml", strings.Join([]string{
		"kind: ComparatorProfile",
		"version: v1",
		"metadata:",
		"  name: seamaster",
		"labels:",
		"  first: Seamaster Report",
		"  second: Trucker Report",
		"case_sensitive: false",
		"",
	}, "\n"))

	out, err := runCLI(t, "compare", "--profile", profilePath, first, second)
	require.NoError(t, err)

	assert.Contains(t, out, "Matching codes (2)")
	assert.Contains(t, out, "Only in Seamaster Report (1)")
}

func TestCompare_Errors(t *testing.T) {
	first, second := fixtures(t)
	dir := t.TempDir()
	legacy := writeFile(t, dir, "codes.xls", "not a workbook")

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing argument", args: []string{"compare", first}},
		{name: "missing file", args: []string{"compare", first, filepath.Join(dir, "nope.csv")}},
		{name: "unreadable workbook", args: []string{"compare", first, legacy}},
		{name: "bad section", args: []string{"compare", "--section", "both", first, second}},
		{name: "json and plain", args: []string{"compare", "--json", "--plain", first, second}},
		{name: "equal labels", args: []string{"compare", "--first-label", "A", "--second-label", "A", first, second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestFormats(t *testing.T) {
	out, err := runCLI(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, ".csv")
	assert.Contains(t, out, ".xlsx")
	assert.NotContains(t, out, ".png")

	out, err = runCLI(t, "formats", "--ocr")
	require.NoError(t, err)
	assert.Contains(t, out, ".png")
}

func TestRenderSummary(t *testing.T) {
	res := compare.Compare(token.NewSet("A", "B"), token.NewSet("B", "C"))

	plain := renderSummary(res, report.DefaultLabels(), false)
	assert.Contains(t, plain, "Only in First file")
	assert.NotContains(t, plain, "\x1b[")

	text.EnableColors()
	colored := renderSummary(res, report.DefaultLabels(), true)
	assert.Contains(t, colored, "\x1b[")
}
