package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Base palette. Card colors are faded toward ColorBackground by opacity.
var (
	ColorBackground = lipgloss.Color("#1E1B18")
	ColorText       = lipgloss.Color("#EDE6DA")
	ColorMuted      = lipgloss.Color("#A39A8C")
	ColorAmber      = lipgloss.Color("#F2A93B")
	ColorBorder     = lipgloss.Color("#7A5C36")
	ColorLink       = lipgloss.Color("#6CB6FF")
	ColorError      = lipgloss.Color("#FF6666")
	ColorGray       = lipgloss.Color("#808080")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	statusLoadingStyle = statusStyle.
				Foreground(ColorGray).
				Italic(true)

	statusErrorStyle = statusStyle.
				Foreground(ColorError)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	chartTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// fade blends c toward the background; opacity 0 is invisible, 1 is c itself.
func fade(c lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return c
	}
	if opacity <= 0 {
		return ColorBackground
	}
	bg, err := colorful.Hex(string(ColorBackground))
	if err != nil {
		return c
	}
	fg, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	return lipgloss.Color(bg.BlendLab(fg, opacity).Clamped().Hex())
}

// gradient returns n colors stepping from a to b.
func gradient(a, b lipgloss.Color, n int) []lipgloss.Color {
	from, err1 := colorful.Hex(string(a))
	to, err2 := colorful.Hex(string(b))
	out := make([]lipgloss.Color, n)
	for i := range out {
		if err1 != nil || err2 != nil || n == 1 {
			out[i] = a
			continue
		}
		out[i] = lipgloss.Color(from.BlendHcl(to, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return out
}
