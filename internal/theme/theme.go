package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors holds the two row backgrounds used by the list.
type Colors struct {
	Normal    lipgloss.TerminalColor
	Highlight lipgloss.TerminalColor
}

// Light/dark pairs approximating gray70/gray24 and gray60/gray35.
var (
	NormalColor    = lipgloss.AdaptiveColor{Light: "249", Dark: "236"}
	HighlightColor = lipgloss.AdaptiveColor{Light: "246", Dark: "239"}
)

// DefaultColors returns the standard normal/highlight pair.
func DefaultColors() Colors {
	return Colors{Normal: NormalColor, Highlight: HighlightColor}
}

// WithDefaults fills unset colours from DefaultColors.
func (c Colors) WithDefaults() Colors {
	defaults := DefaultColors()
	if c.Normal == nil {
		c.Normal = defaults.Normal
	}
	if c.Highlight == nil {
		c.Highlight = defaults.Highlight
	}
	return c
}

// ParseColor accepts either a single colour ("238", "#3a3a3a") or a
// "light,dark" pair that adapts to the terminal background.
func ParseColor(value string) (lipgloss.TerminalColor, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, fmt.Errorf("empty colour")
	}
	parts := strings.Split(trimmed, ",")
	switch len(parts) {
	case 1:
		return lipgloss.Color(trimmed), nil
	case 2:
		light := strings.TrimSpace(parts[0])
		dark := strings.TrimSpace(parts[1])
		if light == "" || dark == "" {
			return nil, fmt.Errorf("colour pair %q needs both light and dark values", value)
		}
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}, nil
	default:
		return nil, fmt.Errorf("colour %q has too many components", value)
	}
}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title  *lipgloss.Style
	Label  *lipgloss.Style
	Info   *lipgloss.Style
	Empty  *lipgloss.Style
	Status *lipgloss.Style
	Footer *lipgloss.Style
	Error  *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"}).Bold(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"}),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
