package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
)

type Document struct {
	Labels Labels         `json:"labels"`
	Counts compare.Counts `json:"counts"`
	compare.Result
}

func NewDocument(r compare.Result, labels Labels) Document {
	return Document{Labels: labels, Counts: r.Counts(), Result: r}
}

func WriteJSON(w io.Writer, r compare.Result, labels Labels) error {
	data, err := json.MarshalIndent(NewDocument(r, labels), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
