package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/wahlandcase/attuned.commitcheck/internal/models"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan       = lipgloss.Color("#00FFFF")
	ColorGreen      = lipgloss.Color("#00FF00")
	ColorYellow     = lipgloss.Color("#FFFF00")
	ColorRed        = lipgloss.Color("#FF0000")
	ColorMagenta    = lipgloss.Color("#FF00FF")
	ColorBlue       = lipgloss.Color("#5555FF")
	ColorPurple     = lipgloss.Color("#AA55FF")
	ColorOrange     = lipgloss.Color("#FFA500")
	ColorLightGreen = lipgloss.Color("#90EE90")
	ColorWhite      = lipgloss.Color("#FFFFFF")
	ColorDarkGray   = lipgloss.Color("8") // ANSI 8
)

// asciiOnly is set when the terminal cannot render color; diagnostic marks
// degrade alongside lipgloss's own style degradation
var asciiOnly = termenv.ColorProfile() == termenv.Ascii

// MarkError returns the error diagnostic mark
func MarkError() string {
	if asciiOnly {
		return "x"
	}
	return "✗"
}

// MarkWarn returns the warning diagnostic mark
func MarkWarn() string {
	if asciiOnly {
		return "!"
	}
	return "⚠"
}

// MarkOK returns the success diagnostic mark
func MarkOK() string {
	if asciiOnly {
		return "+"
	}
	return "✓"
}

// SeverityColor maps a violation severity to its display color
func SeverityColor(s models.Severity) lipgloss.Color {
	switch s {
	case models.SeverityError:
		return ColorRed
	case models.SeverityWarning:
		return ColorYellow
	default:
		return ColorWhite
	}
}

// TypeColor maps a commit type to a display color, grouping types that
// carry similar release weight
func TypeColor(t string) lipgloss.Color {
	switch t {
	case "feat":
		return ColorGreen
	case "fix":
		return ColorOrange
	case "perf":
		return ColorMagenta
	case "revert":
		return ColorRed
	case "docs", "style":
		return ColorBlue
	case "refactor", "test":
		return ColorCyan
	default:
		return ColorWhite
	}
}
