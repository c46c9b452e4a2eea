package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("Font size", "12", true, 2)
	ti.Focus()

	for _, r := range "x1y6" {
		ti, _ = ti.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, "16", ti.Value())

	n, err := ti.NumericValue()
	require.NoError(t, err)
	assert.Equal(t, 16, n)
}

func TestTextInput_ErrorShownUntilCleared(t *testing.T) {
	ti := NewTextInput("Title", "", false, 0)

	ti.SetError("required")
	assert.Contains(t, ti.View(), "✗ required")

	ti.SetError("")
	assert.NotContains(t, ti.View(), "required")
}
