// Package savedtests is the interactive saved-test list behind
// `tests browse`.
package savedtests

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/papersmith/internal/store"
	"github.com/abhisek/papersmith/internal/ui/components"
	"github.com/abhisek/papersmith/internal/ui/theme"
)

// deletedMsg reports the outcome of a delete command.
type deletedMsg struct {
	id  string
	ok  bool
	err error
}

// Model lists saved tests and deletes them one at a time.
type Model struct {
	ctx   context.Context
	repo  store.SavedTestRepo
	tests []store.SavedTest
	menu  components.Menu

	confirming bool
	status     string
	failed     bool
}

// New creates the browser over tests, which must be in list order.
func New(ctx context.Context, repo store.SavedTestRepo, tests []store.SavedTest) *Model {
	items := make([]components.MenuItem, len(tests))
	for i, t := range tests {
		items[i] = components.MenuItem{Label: t.Title, Detail: t.Date + "  " + t.FileName}
	}
	return &Model{
		ctx:   ctx,
		repo:  repo,
		tests: append([]store.SavedTest(nil), tests...),
		menu:  components.NewMenu(items),
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case deletedMsg:
		m.applyDelete(msg)
		return m, nil

	case tea.KeyPressMsg:
		key := msg.String()
		if m.confirming {
			m.confirming = false
			if key == "y" {
				return m, m.deleteSelected()
			}
			m.status = ""
			return m, nil
		}

		switch key {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "d", "delete":
			if t, ok := m.selected(); ok {
				m.confirming = true
				m.failed = false
				m.status = fmt.Sprintf("Delete %q? y/n", t.Title)
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// Tests returns the entries still listed.
func (m *Model) Tests() []store.SavedTest { return m.tests }

func (m *Model) selected() (store.SavedTest, bool) {
	if m.menu.Selected < 0 || m.menu.Selected >= len(m.tests) {
		return store.SavedTest{}, false
	}
	return m.tests[m.menu.Selected], true
}

func (m *Model) deleteSelected() tea.Cmd {
	t, ok := m.selected()
	if !ok {
		return nil
	}
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		ok, err := repo.Delete(ctx, t.ID)
		return deletedMsg{id: t.ID, ok: ok, err: err}
	}
}

func (m *Model) applyDelete(msg deletedMsg) {
	if msg.err != nil {
		m.status = "Delete failed: " + msg.err.Error()
		m.failed = true
		return
	}
	for i, t := range m.tests {
		if t.ID != msg.id {
			continue
		}
		m.tests = append(m.tests[:i:i], m.tests[i+1:]...)
		m.menu.Remove(i)
		if msg.ok {
			m.status = fmt.Sprintf("Deleted %q", t.Title)
		} else {
			m.status = fmt.Sprintf("%q was already gone", t.Title)
		}
		m.failed = false
		return
	}
}

func (m *Model) render() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Saved Tests"))
	b.WriteString("\n\n")

	if len(m.tests) == 0 {
		b.WriteString(theme.Hint.Render("No saved tests yet."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.menu.View())
	}

	if m.status != "" {
		style := theme.BadgeSuccess
		if m.failed {
			style = theme.BadgeError
		} else if m.confirming {
			style = theme.BadgeWarning
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}
	b.WriteString("\n" + theme.Hint.Render("↑↓ move • d delete • q quit"))
	return b.String()
}

// Run shows the browser until the user quits.
func Run(ctx context.Context, repo store.SavedTestRepo, tests []store.SavedTest) error {
	if _, err := tea.NewProgram(New(ctx, repo, tests)).Run(); err != nil {
		return fmt.Errorf("run saved tests browser: %w", err)
	}
	return nil
}
