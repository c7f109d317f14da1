package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/tinytelemetry/brewdeck/internal/card"
	"github.com/tinytelemetry/brewdeck/internal/spring"
)

// pxPerRow converts animation offset units to terminal rows.
const pxPerRow = 8.0

const maxCardWidth = 80

// CardView is one rendered card and its animation state. It is only touched
// from the Bubble Tea update loop.
type CardView struct {
	Card   card.Card
	State  card.ViewState
	index  int
	motion *spring.Motion
}

// Index is the card's position in the results.
func (v *CardView) Index() int { return v.index }

// Animating reports whether a spring is currently driving the card.
func (v *CardView) Animating() bool { return v.motion != nil && !v.motion.Done() }

// offsetRows converts the vertical offset into whole terminal rows.
func offsetRows(offset float64) int {
	return int(math.Round(offset / pxPerRow))
}

// renderCard draws the card inside a fixed-height slot. Offset slides the
// content down (or up, on overshoot) within the slot and opacity fades colors
// toward the background.
func renderCard(v *CardView, width int) string {
	if width > maxCardWidth {
		width = maxCardWidth
	}
	if width < 20 {
		width = 20
	}

	op := v.State.Opacity
	c := v.Card

	name := lipgloss.NewStyle().Bold(true).Foreground(fade(ColorAmber, op)).Render(c.Name)
	text := lipgloss.NewStyle().Foreground(fade(ColorText, op))
	muted := lipgloss.NewStyle().Foreground(fade(ColorMuted, op))

	var website string
	if c.Website != nil {
		label := lipgloss.NewStyle().Foreground(fade(ColorLink, op)).Underline(true).Render(c.Website.Label)
		website = termenv.Hyperlink(c.Website.Href, label)
	} else {
		website = muted.Render(c.WebsiteText)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		name,
		muted.Render(c.Type),
		text.Render(c.Address),
		website,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fade(ColorBorder, op)).
		Padding(0, 1).
		Width(width - 2).
		Render(body)

	if op <= 0 {
		return blankBlock(box)
	}
	return shiftRows(box, offsetRows(v.State.Offset))
}

// shiftRows moves a block down by rows (up when negative) without changing
// its height; lines pushed past the edge are dropped.
func shiftRows(block string, rows int) string {
	if rows == 0 {
		return block
	}
	lines := strings.Split(block, "\n")
	h := len(lines)
	blank := strings.Repeat(" ", lipgloss.Width(block))

	if rows > h {
		rows = h
	}
	if rows < -h {
		rows = -h
	}

	out := make([]string, 0, h)
	if rows > 0 {
		for i := 0; i < rows; i++ {
			out = append(out, blank)
		}
		out = append(out, lines[:h-rows]...)
	} else {
		out = append(out, lines[-rows:]...)
		for i := 0; i < -rows; i++ {
			out = append(out, blank)
		}
	}
	return strings.Join(out, "\n")
}

// blankBlock returns whitespace with the same footprint as block.
func blankBlock(block string) string {
	h := lipgloss.Height(block)
	blank := strings.Repeat(" ", lipgloss.Width(block))
	lines := make([]string, h)
	for i := range lines {
		lines[i] = blank
	}
	return strings.Join(lines, "\n")
}
