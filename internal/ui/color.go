package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes understood by SetColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var colorEnabled = ansiEnabled()

// SetColorMode switches styled output on or off for lipgloss and
// fatih/color alike. Unknown modes behave like auto.
func SetColorMode(mode string) {
	switch mode {
	case ColorAlways:
		colorEnabled = true
	case ColorNever:
		colorEnabled = false
	default:
		colorEnabled = ansiEnabled()
	}
	applyColor()
}

// ColorEnabled reports whether output should carry ANSI styling.
func ColorEnabled() bool {
	return colorEnabled
}

func applyColor() {
	color.NoColor = !colorEnabled
	if colorEnabled {
		lipgloss.SetColorProfile(termenv.ANSI256)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width of stdout, or fallback when stdout is not
// a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

func render(style lipgloss.Style, text string) string {
	if !colorEnabled || text == "" {
		return text
	}
	return style.Render(text)
}
