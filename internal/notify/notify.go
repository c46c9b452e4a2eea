// Package notify delivers short user-visible messages about a submission.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/abhisek/papersmith/internal/ui/theme"
)

// Level is the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a titled message, e.g. "Test Generation Error".
type Notification struct {
	Level   Level
	Title   string
	Message string
}

// Notifier delivers notifications. Implementations must not block for long.
type Notifier interface {
	Notify(n Notification)
}

// Console writes styled notifications to a terminal stream.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	badge := badgeFor(n.Level)
	if n.Message == "" {
		fmt.Fprintf(c.w, "%s %s\n", badge, theme.Title.Render(n.Title))
		return
	}
	fmt.Fprintf(c.w, "%s %s\n  %s\n", badge, theme.Title.Render(n.Title), n.Message)
}

func badgeFor(l Level) string {
	switch l {
	case LevelSuccess:
		return theme.BadgeSuccess.Render("✓")
	case LevelWarning:
		return theme.BadgeWarning.Render("!")
	case LevelError:
		return theme.BadgeError.Render("✗")
	default:
		return theme.BadgeInfo.Render("•")
	}
}

// Recorder keeps notifications in memory.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

// Sent returns a copy of everything delivered so far.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(Notification) {}
