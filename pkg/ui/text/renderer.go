// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/sortdl/pkg/types"
)

// Renderer writes one line per entry and a summary line
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderReport renders a sweep report
func (r *Renderer) RenderReport(report *types.SortReport) error {
	var b strings.Builder

	header := "Sorted " + report.Root
	if report.DryRun {
		header += " (dry run)"
	}
	b.WriteString(header + "\n")

	for _, folder := range report.FoldersCreated {
		fmt.Fprintf(&b, "created  %s\n", folder)
	}
	for _, e := range report.Entries {
		switch e.Outcome {
		case types.OutcomeMoved, types.OutcomePlanned:
			fmt.Fprintf(&b, "%-8s %s -> %s\n", e.Outcome, e.Name, e.DisplayDestination(report.Root))
		default:
			fmt.Fprintf(&b, "%-8s %s: %s\n", e.Outcome, e.Name, e.ErrorText)
		}
	}
	b.WriteString(Summary(report) + "\n")

	_, err := io.WriteString(r.output, b.String())
	return err
}

// Summary returns the one-line totals of a report
func Summary(report *types.SortReport) string {
	if len(report.Entries) == 0 {
		return fmt.Sprintf("Nothing to sort (%d directories left in place)", report.DirectoriesSkipped)
	}
	verb := "moved"
	count := report.Count(types.OutcomeMoved)
	if report.DryRun {
		verb = "planned"
		count = report.Count(types.OutcomePlanned)
	}
	return fmt.Sprintf("%d %s, %d skipped, %d failed, %d directories left in place",
		count, verb,
		report.Count(types.OutcomeSkipped),
		report.Count(types.OutcomeFailed),
		report.DirectoriesSkipped)
}

// RenderCategories renders one line per category
func (r *Renderer) RenderCategories(categories []types.CategoryInfo) error {
	var b strings.Builder
	for _, c := range categories {
		exts := strings.Join(c.Extensions, ", ")
		if exts == "" {
			exts = "(everything else)"
		}
		fmt.Fprintf(&b, "%-9s %s\n", c.Category, exts)
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
