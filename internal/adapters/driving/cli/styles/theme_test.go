package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, theme.Primary)
	assert.NotEmpty(t, theme.Error)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.True(t, s.Title.GetBold())
	assert.Equal(t, DefaultTheme().Primary, s.Title.GetForeground())
}

func TestPlain_RendersUnchanged(t *testing.T) {
	s := Plain()

	assert.Equal(t, "Changelog.md", s.Success.Render("Changelog.md"))
	assert.Equal(t, "warning", s.Warning.Render("warning"))
}
