package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tinytelemetry/brewdeck/internal/anim"
	"github.com/tinytelemetry/brewdeck/internal/card"
	"github.com/tinytelemetry/brewdeck/internal/logger"
	"github.com/tinytelemetry/brewdeck/internal/model"
)

// breweriesLoadedMsg carries the single fetch result.
type breweriesLoadedMsg struct {
	records []model.Brewery
	err     error
}

// BreweryPageDeps are the collaborators handed to the page controller. Status
// and Results are the render targets it writes into.
type BreweryPageDeps struct {
	Fetcher  model.BreweryFetcher
	Status   *StatusLine
	Results  *ResultsPanel
	Animator *Animator
	Logger   *logger.Logger
	Place    string
}

// BreweryPage runs one fetch, shows the resulting cards and animates them in.
// It moves Idle -> Loading -> {Populated, Empty, Failed} exactly once.
type BreweryPage struct {
	fetcher  model.BreweryFetcher
	status   *StatusLine
	results  *ResultsPanel
	animator *Animator
	log      *logger.Logger
	place    string

	state     model.PageState
	keys      KeyMap
	help      help.Model
	typeChart TypeChart
	showTypes bool
}

// NewBreweryPage creates the page in the Idle state.
func NewBreweryPage(d BreweryPageDeps) *BreweryPage {
	if d.Status == nil {
		d.Status = NewStatusLine()
	}
	if d.Results == nil {
		d.Results = NewResultsPanel()
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	if d.Animator == nil {
		d.Animator = NewAnimator(anim.NewEntrance(nil), d.Logger)
	}
	if d.Place == "" {
		d.Place = model.DefaultPlace
	}
	return &BreweryPage{
		fetcher:  d.Fetcher,
		status:   d.Status,
		results:  d.Results,
		animator: d.Animator,
		log:      d.Logger,
		place:    d.Place,
		state:    model.StateIdle,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

func (p *BreweryPage) ID() string { return PageBreweries }

// State returns the current lifecycle state.
func (p *BreweryPage) State() model.PageState { return p.state }

// Init starts the fetch the first time it is called; returning from the help
// page calls it again and must not refetch.
func (p *BreweryPage) Init() tea.Cmd {
	if p.state != model.StateIdle {
		return nil
	}
	p.state = model.StateLoading
	p.status.Set(model.LoadingStatus(p.place))
	p.results.Clear()
	return tea.Batch(p.fetchCmd(), spinnerTick())
}

func (p *BreweryPage) fetchCmd() tea.Cmd {
	fetcher := p.fetcher
	return func() tea.Msg {
		records, err := fetcher.FetchBreweries(context.Background())
		return breweriesLoadedMsg{records: records, err: err}
	}
}

func (p *BreweryPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	if cmd, ok := p.animator.Update(msg); ok {
		return cmd, nil
	}

	switch msg := msg.(type) {
	case breweriesLoadedMsg:
		return p.handleLoaded(msg), nil

	case SpinnerTickMsg:
		if p.state == model.StateLoading {
			return spinnerTick(), nil
		}
		return nil, nil

	case tea.KeyMsg:
		return p.handleKey(msg)

	case tea.MouseMsg:
		return p.results.Update(msg), nil
	}
	return nil, nil
}

func (p *BreweryPage) handleLoaded(msg breweriesLoadedMsg) tea.Cmd {
	if p.state != model.StateLoading {
		return nil
	}

	if msg.err != nil {
		p.log.Errorw("failed to load breweries", "error", msg.err)
		p.state = model.StateFailed
		p.status.Set(model.FailedStatus())
		return nil
	}

	st := model.ResultStatus(p.place, len(msg.records))
	p.state = st.State
	p.status.Set(st)
	p.log.Infow("loaded breweries", "count", len(msg.records))
	if st.State == model.StateEmpty {
		return nil
	}

	p.typeChart.SetData(model.CountByType(msg.records))

	views := make([]*CardView, len(msg.records))
	for i, r := range msg.records {
		views[i] = p.results.Append(card.Render(r))
	}
	cmds := make([]tea.Cmd, 0, len(views))
	for i, v := range views {
		cmds = append(cmds, p.animator.AnimateIn(v, i))
	}
	return tea.Batch(cmds...)
}

func (p *BreweryPage) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	switch {
	case key.Matches(msg, p.keys.Quit):
		return tea.Quit, nil
	case key.Matches(msg, p.keys.Help):
		return nil, navTo(PageHelp)
	case key.Matches(msg, p.keys.ToggleTypes):
		p.showTypes = !p.showTypes
	case key.Matches(msg, p.keys.Up):
		p.results.ScrollUp(1)
	case key.Matches(msg, p.keys.Down):
		p.results.ScrollDown(1)
	case key.Matches(msg, p.keys.PageUp):
		p.results.HalfPageUp()
	case key.Matches(msg, p.keys.PageDown):
		p.results.HalfPageDown()
	case key.Matches(msg, p.keys.Home):
		p.results.GotoTop()
	case key.Matches(msg, p.keys.End):
		p.results.GotoBottom()
	}
	return nil, nil
}

func (p *BreweryPage) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Initializing..."
	}

	header := renderBranding()
	status := p.status.View(width)
	footer := helpStyle.Padding(0, 1).Render(p.help.ShortHelpView(p.keys.ShortHelp()))

	sections := []string{header, status}
	used := lipgloss.Height(header) + lipgloss.Height(status) + lipgloss.Height(footer)

	var chart string
	if p.showTypes && p.state == model.StatePopulated {
		chart = p.typeChart.Render(width)
		used += lipgloss.Height(chart)
	}

	sections = append(sections, p.results.View(width, height-used))
	if chart != "" {
		sections = append(sections, chart)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBranding renders the app name with an amber to blue gradient.
func renderBranding() string {
	name := []rune("brewdeck")
	colors := gradient(ColorAmber, ColorLink, len(name))

	var out string
	for i, r := range name {
		out += lipgloss.NewStyle().Foreground(colors[i]).Bold(true).Render(string(r))
	}
	return titleStyle.Render(out)
}
