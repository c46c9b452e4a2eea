package components

import "github.com/abhisek/papersmith/internal/ui/theme"

// Button is a focusable label. The owning form decides what Enter does.
type Button struct {
	Label    string
	Active   bool
	Disabled bool
}

// View renders the button.
func (b Button) View() string {
	label := "  ▸ " + b.Label + " "
	if b.Disabled {
		return theme.Hint.Render(label)
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
