package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTheme(t *testing.T) {
	for _, name := range []string{"Title", "Muted", "Path", "Category", "moved", "planned", "skipped", "failed", "Error"} {
		assert.True(t, Has(name), name)
	}
	assert.True(t, Get("failed").GetBold())
	assert.True(t, Get("Path").GetItalic())
}

func TestLoadReplacesTheme(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, Load([]byte(`
colors:
  red: {light: "#ff0000", dark: "#ff5555"}
styles:
  Only:
    underline: true
    foreground: red
`)))

	assert.True(t, Has("Only"))
	assert.False(t, Has("Title"))
	assert.True(t, Get("Only").GetUnderline())
}

func TestLoadInvalidKeepsTheme(t *testing.T) {
	t.Cleanup(Reset)

	err := Load([]byte("styles: [not, a, map"))
	require.Error(t, err)
	assert.True(t, Has("Title"))
}

func TestGetUnknown(t *testing.T) {
	assert.False(t, Has("nope"))
	assert.Equal(t, "plain", Render("nope", "plain"))
}
