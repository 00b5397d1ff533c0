// Package terminal renders rich output for color-capable terminals
package terminal

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sortdl/pkg/style"
	"github.com/arthur-debert/sortdl/pkg/types"
	"github.com/arthur-debert/sortdl/pkg/ui/text"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	pretty "github.com/jedib0t/go-pretty/v6/text"
)

// Renderer draws reports as styled tables
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderReport renders a sweep report as a table followed by totals
func (r *Renderer) RenderReport(report *types.SortReport) error {
	var b strings.Builder

	title := "Sorted " + report.Root
	if report.DryRun {
		title = "Dry run of " + report.Root
	}
	b.WriteString(style.Render("Title", title) + "\n")

	if len(report.Entries) > 0 {
		rows := make([][]string, 0, len(report.Entries))
		for _, e := range report.Entries {
			detail := style.Render("Path", e.DisplayDestination(report.Root))
			if e.Outcome == types.OutcomeFailed || e.Outcome == types.OutcomeSkipped {
				detail = style.Render("Error", e.ErrorText)
			}
			rows = append(rows, []string{
				style.Render(string(e.Outcome), string(e.Outcome)),
				e.Name,
				detail,
				humanize.Bytes(uint64(e.Size)),
			})
		}
		b.WriteString(renderTable(
			[]string{"Status", "File", "Destination", "Size"},
			rows,
			[]pretty.Align{pretty.AlignLeft, pretty.AlignLeft, pretty.AlignLeft, pretty.AlignRight},
		))
		b.WriteString("\n")
	}

	if len(report.FoldersCreated) > 0 {
		names := make([]string, len(report.FoldersCreated))
		for i, f := range report.FoldersCreated {
			names[i] = filepath.Base(f)
		}
		b.WriteString(style.Render("Muted", "Created folders: "+strings.Join(names, ", ")) + "\n")
	}

	summary := text.Summary(report)
	if bytes := report.BytesRelocated(); bytes > 0 {
		summary += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(bytes)))
	}
	b.WriteString(summary + "\n")

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderCategories renders the extension table
func (r *Renderer) RenderCategories(categories []types.CategoryInfo) error {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		exts := strings.Join(c.Extensions, " ")
		if exts == "" {
			exts = style.Render("Muted", "everything else")
		}
		rows = append(rows, []string{style.Render("Category", c.Category.String()), exts})
	}
	out := renderTable([]string{"Folder", "Extensions"}, rows, nil)
	_, err := io.WriteString(r.output, out+"\n")
	return err
}

// RenderError renders an error with the error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %v\n", style.Render("Error", "Error:"), err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func renderTable(headers []string, rows [][]string, aligns []pretty.Align) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(headers))
	for i := range headers {
		align := pretty.AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: pretty.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
