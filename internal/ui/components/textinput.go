package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/papersmith/internal/ui/theme"
)

// TextInput is a labelled bubbles/textinput with papersmith styling.
type TextInput struct {
	Label       string
	Model       textinput.Model
	NumericOnly bool
	invalid     string
}

// NewTextInput creates a blurred input. charLimit <= 0 means no limit.
func NewTextInput(label, placeholder string, numericOnly bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Label: label, Model: ti, NumericOnly: numericOnly}
}

// Update forwards key presses to the input. Numeric inputs drop any
// printable key that is not a digit.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, the input and any validation message.
func (t TextInput) View() string {
	label := theme.Blurred.Render(t.Label)
	if t.Focused() {
		label = theme.Focused.Render(t.Label)
	}
	view := label + "\n" + t.Model.View()
	if t.invalid != "" {
		view += "\n" + theme.BadgeError.Render("✗ "+t.invalid)
	}
	return view
}

func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }
func (t *TextInput) Blur()          { t.Model.Blur() }
func (t TextInput) Focused() bool   { return t.Model.Focused() }

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// NumericValue returns the input value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// SetError shows msg under the input; an empty msg clears it.
func (t *TextInput) SetError(msg string) {
	t.invalid = msg
}
