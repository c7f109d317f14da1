package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpPage lists every key binding.
type HelpPage struct {
	keys KeyMap
	help help.Model
}

func NewHelpPage() *HelpPage {
	h := help.New()
	h.ShowAll = true
	return &HelpPage{keys: DefaultKeyMap(), help: h}
}

func (h *HelpPage) ID() string    { return PageHelp }
func (h *HelpPage) Init() tea.Cmd { return nil }

func (h *HelpPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, h.keys.Quit):
			return tea.Quit, nil
		case key.Matches(msg, h.keys.Escape), key.Matches(msg, h.keys.Help):
			return nil, navTo(PageBreweries)
		}
	}
	return nil, nil
}

func (h *HelpPage) View(width, height int) string {
	h.help.Width = width
	heading := chartTitleStyle.Render("Keyboard shortcuts")
	body := h.help.View(h.keys)
	hint := helpStyle.Render("esc: back")
	block := lipgloss.JoinVertical(lipgloss.Left, heading, "", body, "", hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, sectionStyle.Render(block))
}
