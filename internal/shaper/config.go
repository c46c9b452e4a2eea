package shaper

import (
	"fmt"
	"strings"
)

// Mode selects the response contract of the shaping call.
type Mode string

const (
	// ModeStructured asks for {testTitle, sections}.
	ModeStructured Mode = "structured"
	// ModeLayout asks for {optimizedLayout}; the result is free text.
	ModeLayout Mode = "layout"
)

// ParseMode accepts structured or layout. An empty string means structured.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeStructured, nil
	case ModeStructured, ModeLayout:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q: want structured or layout", s)
	}
}

// Config controls the Shaper's LLM calls.
type Config struct {
	Mode Mode

	MaxTokens        int
	Temperature      float64
	GuessMaxTokens   int
	GuessTemperature float64
}

// DefaultConfig returns the recommended settings.
func DefaultConfig() Config {
	return Config{
		Mode:             ModeStructured,
		MaxTokens:        4096,
		Temperature:      0.2,
		GuessMaxTokens:   4096,
		GuessTemperature: 0.7,
	}
}
