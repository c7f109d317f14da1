package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinytelemetry/brewdeck/internal/card"
)

// ResultsPanel is the results container: an ordered, scrollable list of cards.
// Cards are only appended by the page controller; animations mutate the
// CardView they were handed and nothing else.
type ResultsPanel struct {
	cards    []*CardView
	viewport viewport.Model
}

// NewResultsPanel returns an empty panel.
func NewResultsPanel() *ResultsPanel {
	return &ResultsPanel{viewport: viewport.New(80, 20)}
}

// Clear removes every card.
func (r *ResultsPanel) Clear() {
	r.cards = nil
	r.viewport.SetContent("")
	r.viewport.GotoTop()
}

// Append adds a card in its pre-animation state and returns its view.
func (r *ResultsPanel) Append(c card.Card) *CardView {
	v := &CardView{
		Card:  c,
		State: card.InitialState(),
		index: len(r.cards),
	}
	r.cards = append(r.cards, v)
	return v
}

// Cards returns the cards in display order.
func (r *ResultsPanel) Cards() []*CardView { return r.cards }

// Len is the number of cards.
func (r *ResultsPanel) Len() int { return len(r.cards) }

// Update forwards scroll input to the viewport.
func (r *ResultsPanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return cmd
}

func (r *ResultsPanel) ScrollUp(n int)   { r.viewport.ScrollUp(n) }
func (r *ResultsPanel) ScrollDown(n int) { r.viewport.ScrollDown(n) }
func (r *ResultsPanel) HalfPageUp()      { r.viewport.HalfPageUp() }
func (r *ResultsPanel) HalfPageDown()    { r.viewport.HalfPageDown() }
func (r *ResultsPanel) GotoTop()         { r.viewport.GotoTop() }
func (r *ResultsPanel) GotoBottom()      { r.viewport.GotoBottom() }

// View renders all cards into a scrolling region of the given size.
func (r *ResultsPanel) View(width, height int) string {
	if height < 1 {
		return ""
	}
	r.viewport.Width = width
	r.viewport.Height = height

	rendered := make([]string, len(r.cards))
	for i, v := range r.cards {
		rendered[i] = renderCard(v, width)
	}
	r.viewport.SetContent(strings.Join(rendered, "\n"))
	return r.viewport.View()
}
