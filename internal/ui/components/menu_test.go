package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestMenu_SkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Gone", Disabled: true},
		{Label: "Algebra"},
		{Label: "Locked", Disabled: true},
		{Label: "Biology"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 1, m.Selected)
}

func TestMenu_EnterRunsAction(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{{Label: "Open", Action: func() tea.Cmd {
		called = true
		return nil
	}}})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, called)
}

func TestMenu_Remove(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b"}})
	m.Selected = 1

	m.Remove(1)
	assert.Equal(t, 0, m.Selected)
	m.Remove(0)
	assert.Empty(t, m.Items)
	assert.Equal(t, 0, m.Selected)
	_, ok := m.Current()
	assert.False(t, ok)

	m.Remove(5) // out of range is a no-op
}

func TestMenu_ViewMarksSelection(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Algebra", Detail: "Jan 2"}, {Label: "Biology"}})
	view := m.View()
	assert.Contains(t, view, "▸ Algebra")
	assert.Contains(t, view, "Jan 2")
	assert.NotContains(t, view, "▸ Biology")
}
