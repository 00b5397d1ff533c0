// Package ui renders sweep reports and category listings.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/sortdl/pkg/errors"
	"github.com/arthur-debert/sortdl/pkg/types"
	"github.com/arthur-debert/sortdl/pkg/ui/json"
	"github.com/arthur-debert/sortdl/pkg/ui/terminal"
	"github.com/arthur-debert/sortdl/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderReport renders the outcome of one sweep
	RenderReport(report *types.SortReport) error

	// RenderCategories renders the extension table
	RenderCategories(categories []types.CategoryInfo) error

	// RenderError renders an error that stopped the command
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output
// when it is a file and falls back to text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
