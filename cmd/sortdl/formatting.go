package sortdl

import (
	"os"
	"text/template"

	"github.com/arthur-debert/sortdl/pkg/style"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// formatHeading styles help section headings when stdout is a terminal
func formatHeading(s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return style.Render("Category", s)
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"heading": formatHeading,
	})
}
