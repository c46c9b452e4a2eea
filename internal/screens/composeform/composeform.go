// Package composeform is the interactive paper form behind `compose -i`.
package composeform

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/papersmith/internal/paper"
	"github.com/abhisek/papersmith/internal/ui/components"
	"github.com/abhisek/papersmith/internal/ui/theme"
)

const (
	fieldTitle = iota
	fieldInstructions
	fieldMCQ
	fieldShort
	fieldLong
	fieldFont
	fieldSubmit
	fieldCount
)

// Model collects a paper.Request from the keyboard.
type Model struct {
	inputs    [fieldSubmit]components.TextInput
	questions [3][]string // mcq, short, long
	submit    components.Button
	focus     int
	err       string

	submitted bool
	canceled  bool
}

// New creates the form prefilled from initial. Sections other than the three
// standard ones are ignored.
func New(initial paper.Request) *Model {
	m := &Model{submit: components.Button{Label: "Generate PDF"}}
	m.inputs[fieldTitle] = components.NewTextInput("Test title", "e.g. Algebra Quiz", false, 0)
	m.inputs[fieldInstructions] = components.NewTextInput("Instructions", "printed under the title", false, 0)
	m.inputs[fieldMCQ] = components.NewTextInput(paper.SectionMCQ, "type a question, enter to add", false, 0)
	m.inputs[fieldShort] = components.NewTextInput(paper.SectionShort, "type a question, enter to add", false, 0)
	m.inputs[fieldLong] = components.NewTextInput(paper.SectionLong, "type a question, enter to add", false, 0)
	m.inputs[fieldFont] = components.NewTextInput("Font size (px)", "12", true, 2)

	m.inputs[fieldTitle].SetValue(initial.Title)
	m.inputs[fieldInstructions].SetValue(initial.Instructions)
	font := initial.FontSize
	if font == 0 {
		font = paper.DefaultFont
	}
	m.inputs[fieldFont].SetValue(strconv.Itoa(font))
	for _, sec := range initial.Sections {
		switch sec.Title {
		case paper.SectionMCQ:
			m.questions[0] = append(m.questions[0], sec.Questions...)
		case paper.SectionShort:
			m.questions[1] = append(m.questions[1], sec.Questions...)
		case paper.SectionLong:
			m.questions[2] = append(m.questions[2], sec.Questions...)
		}
	}
	m.setFocus(fieldTitle)
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		return m, tea.Quit
	case "ctrl+s":
		return m, m.trySubmit()
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case "ctrl+x":
		if q := m.questionIndex(); q >= 0 && len(m.questions[q]) > 0 {
			m.questions[q] = m.questions[q][:len(m.questions[q])-1]
		}
		return m, nil
	case "enter":
		if m.focus == fieldSubmit {
			return m, m.trySubmit()
		}
		if q := m.questionIndex(); q >= 0 {
			text := strings.TrimSpace(m.inputs[m.focus].Value())
			if text != "" {
				m.questions[q] = append(m.questions[q], text)
				m.inputs[m.focus].SetValue("")
				return m, nil
			}
		}
		return m, m.setFocus(m.focus + 1)
	}

	if m.focus == fieldSubmit {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// Submitted reports whether the form was completed with a valid request.
func (m *Model) Submitted() bool { return m.submitted }

// Canceled reports whether the user left the form without submitting.
func (m *Model) Canceled() bool { return m.canceled }

// Request builds the request from the current form state. Blank question
// lists are dropped.
func (m *Model) Request() (paper.Request, error) {
	req := paper.NewStandardRequest(
		strings.TrimSpace(m.inputs[fieldTitle].Value()),
		strings.TrimSpace(m.inputs[fieldInstructions].Value()),
		m.questions[0], m.questions[1], m.questions[2],
	)
	font, err := m.inputs[fieldFont].NumericValue()
	if err != nil {
		return paper.Request{}, &paper.ValidationError{Field: "fontSize", Message: "must be a number"}
	}
	req.FontSize = font
	req.DropEmptySections()
	return req, nil
}

func (m *Model) trySubmit() tea.Cmd {
	req, err := m.Request()
	if err == nil {
		if verr := req.Validate(); verr != nil {
			err = verr
		}
	}
	if err != nil {
		m.err = err.Error()
		return nil
	}
	m.err = ""
	m.submitted = true
	return tea.Quit
}

func (m *Model) setFocus(i int) tea.Cmd {
	if i >= fieldCount {
		i = fieldSubmit
	}
	m.focus = i
	m.submit.Active = i == fieldSubmit

	var cmd tea.Cmd
	for f := range m.inputs {
		if f == i {
			cmd = m.inputs[f].Focus()
		} else {
			m.inputs[f].Blur()
		}
	}
	return cmd
}

// questionIndex maps the focused field to its question list, or -1.
func (m *Model) questionIndex() int {
	switch m.focus {
	case fieldMCQ:
		return 0
	case fieldShort:
		return 1
	case fieldLong:
		return 2
	}
	return -1
}

func (m *Model) render() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("New Test Paper"))
	b.WriteString("\n\n")

	for f := range m.inputs {
		b.WriteString(m.inputs[f].View())
		b.WriteString("\n")
		if f >= fieldMCQ && f <= fieldLong {
			for i, q := range m.questions[f-fieldMCQ] {
				b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d. %s", i+1, q)))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(m.submit.View())
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString("\n" + theme.BadgeError.Render("✗ "+m.err) + "\n")
	}
	b.WriteString("\n" + theme.Hint.Render("tab/↑↓ move • enter add/next • ctrl+x drop last • ctrl+s generate • esc cancel"))
	return b.String()
}

// Run shows the form until it is submitted or canceled. ok is false when
// the user canceled.
func Run(initial paper.Request) (req paper.Request, ok bool, err error) {
	final, err := tea.NewProgram(New(initial)).Run()
	if err != nil {
		return paper.Request{}, false, fmt.Errorf("run compose form: %w", err)
	}
	m := final.(*Model)
	if !m.Submitted() {
		return paper.Request{}, false, nil
	}
	req, err = m.Request()
	return req, err == nil, err
}
