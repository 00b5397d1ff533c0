// Package style holds the terminal theme of sortdl's output.
//
// Styles have semantic names and adaptive colors that follow the terminal's
// light or dark background. The theme ships embedded as styles.yaml and can
// be replaced at runtime with Load.
package style

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultTheme []byte

// ColorDef is an adaptive color in the theme file
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style in the theme file. Colors refer to names under colors.
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
}

// Theme is the decoded theme file
type Theme struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

var (
	mu       sync.RWMutex
	registry map[string]lipgloss.Style
)

func init() {
	if err := Load(defaultTheme); err != nil {
		panic(fmt.Sprintf("embedded styles.yaml: %v", err))
	}
}

// Load replaces the active theme with the YAML document in data
func Load(data []byte) error {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return fmt.Errorf("failed to parse theme: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(theme.Colors))
	for name, def := range theme.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(map[string]lipgloss.Style, len(theme.Styles))
	for name, def := range theme.Styles {
		styles[name] = buildStyle(def, colors)
	}

	mu.Lock()
	registry = styles
	mu.Unlock()
	return nil
}

// Reset restores the embedded theme
func Reset() {
	_ = Load(defaultTheme)
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	s := lipgloss.NewStyle()

	if def.Bold {
		s = s.Bold(true)
	}
	if def.Italic {
		s = s.Italic(true)
	}
	if def.Underline {
		s = s.Underline(true)
	}
	if c, ok := colors[def.Foreground]; ok {
		s = s.Foreground(c)
	}
	if c, ok := colors[def.Background]; ok {
		s = s.Background(c)
	}
	if def.MarginBottom > 0 {
		s = s.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 {
		s = s.PaddingLeft(def.PaddingLeft)
	}
	return s
}

// Get returns the named style, or an empty style when the theme lacks it
func Get(name string) lipgloss.Style {
	mu.RLock()
	defer mu.RUnlock()
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Has reports whether the active theme defines name
func Has(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[name]
	return ok
}

// Render applies the named style to text
func Render(name, text string) string {
	return Get(name).Render(text)
}
