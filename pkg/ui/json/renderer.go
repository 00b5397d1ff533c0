// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/sortdl/pkg/errors"
	"github.com/arthur-debert/sortdl/pkg/types"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// reportDoc adds totals to the report so consumers need not recount
type reportDoc struct {
	*types.SortReport
	Summary map[types.Outcome]int `json:"summary"`
	Bytes   int64                 `json:"bytes"`
}

// RenderReport renders the report as a single JSON document
func (r *Renderer) RenderReport(report *types.SortReport) error {
	rep := *report
	if rep.Entries == nil {
		rep.Entries = []types.EntryResult{}
	}
	if rep.FoldersCreated == nil {
		rep.FoldersCreated = []string{}
	}

	doc := reportDoc{
		SortReport: &rep,
		Summary: map[types.Outcome]int{
			types.OutcomeMoved:   report.Count(types.OutcomeMoved),
			types.OutcomePlanned: report.Count(types.OutcomePlanned),
			types.OutcomeSkipped: report.Count(types.OutcomeSkipped),
			types.OutcomeFailed:  report.Count(types.OutcomeFailed),
		},
		Bytes: report.BytesRelocated(),
	}
	return r.encoder.Encode(doc)
}

// RenderCategories renders the category list as a JSON array
func (r *Renderer) RenderCategories(categories []types.CategoryInfo) error {
	return r.encoder.Encode(categories)
}

// RenderError renders an error as JSON, with its code when it has one
func (r *Renderer) RenderError(err error) error {
	obj := map[string]interface{}{
		"error": err.Error(),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		obj["code"] = code
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		obj["details"] = details
	}
	return r.encoder.Encode(obj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
