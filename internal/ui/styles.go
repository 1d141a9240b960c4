// Package ui provides terminal styling, status-line printing, and operator
// confirmation prompts for the release CLI.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic status colors, adaptive for light/dark terminals.
	ColorOK = lipgloss.AdaptiveColor{
		Light: "#2da44e",
		Dark:  "#3fb950",
	}
	ColorWarn = lipgloss.AdaptiveColor{
		Light: "#bf8700",
		Dark:  "#d29922",
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#cf222e",
		Dark:  "#f85149",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#0969da",
		Dark:  "#58a6ff",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#6e7781",
		Dark:  "#8b949e",
	}
)

var (
	OKStyle    = lipgloss.NewStyle().Foreground(ColorOK)
	WarnStyle  = lipgloss.NewStyle().Foreground(ColorWarn)
	FailStyle  = lipgloss.NewStyle().Foreground(ColorFail)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)
)

// Status icons used as line prefixes on every progress line.
const (
	IconOK   = "✓"
	IconWarn = "⚠"
	IconFail = "✗"
	IconInfo = "ℹ"
	IconSkip = "-"
)
