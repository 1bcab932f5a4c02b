package dto

import (
	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
	"github.com/DjordjeVuckovic/code-comparator/internal/report"
	"github.com/google/uuid"
)

type Labels struct {
	First  string `json:"first" example:"Seamaster Report"`
	Second string `json:"second" example:"Trucker Report"`
}

type Counts struct {
	Matches      int `json:"matches" example:"120"`
	OnlyInFirst  int `json:"onlyInFirst" example:"3"`
	OnlyInSecond int `json:"onlyInSecond" example:"0"`
}

// CompareResponse is returned for every comparison request. Completed is
// false while either upload is missing; counts are then omitted and the
// lists are empty. The three lists are always present.
type CompareResponse struct {
	Completed    bool       `json:"completed"`
	Missing      []string   `json:"missing,omitempty"`
	ID           *uuid.UUID `json:"id,omitempty" swaggertype:"string" format:"uuid"`
	Labels       Labels     `json:"labels"`
	Counts       *Counts    `json:"counts,omitempty"`
	Matches      []string   `json:"matches"`
	OnlyInFirst  []string   `json:"onlyInFirst"`
	OnlyInSecond []string   `json:"onlyInSecond"`
}

type FormatsResponse struct {
	Extensions []string `json:"extensions"`
	OCR        bool     `json:"ocr"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}

func NewLabels(l report.Labels) Labels {
	return Labels{First: l.First, Second: l.Second}
}

func NewPendingResponse(labels report.Labels, missing []string) CompareResponse {
	return CompareResponse{
		Completed:    false,
		Missing:      missing,
		Labels:       NewLabels(labels),
		Matches:      []string{},
		OnlyInFirst:  []string{},
		OnlyInSecond: []string{},
	}
}

func NewCompareResponse(r compare.Result, labels report.Labels, id uuid.UUID) CompareResponse {
	c := r.Counts()
	resp := CompareResponse{
		Completed: true,
		Labels:    NewLabels(labels),
		Counts: &Counts{
			Matches:      c.Matches,
			OnlyInFirst:  c.OnlyInFirst,
			OnlyInSecond: c.OnlyInSecond,
		},
		Matches:      orEmpty(r.Matches),
		OnlyInFirst:  orEmpty(r.OnlyInFirst),
		OnlyInSecond: orEmpty(r.OnlyInSecond),
	}
	if id != uuid.Nil {
		resp.ID = &id
	}
	return resp
}

func orEmpty(tokens []string) []string {
	if tokens == nil {
		return []string{}
	}
	return tokens
}
