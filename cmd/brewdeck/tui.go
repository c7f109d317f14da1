package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinytelemetry/brewdeck/internal/anim"
	"github.com/tinytelemetry/brewdeck/internal/brewery"
	"github.com/tinytelemetry/brewdeck/internal/logger"
	"github.com/tinytelemetry/brewdeck/internal/spring"
	"github.com/tinytelemetry/brewdeck/internal/tui"
)

// springFor returns the spring capability, or nil when animation is off.
func springFor(cfg appConfig) spring.Func {
	if !cfg.Animate {
		return nil
	}
	return spring.New
}

func runTUI(cfg appConfig) error {
	// The alt screen owns stdout, so the TUI always logs to a file.
	log, closeLog, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer closeLog()

	page := tui.NewBreweryPage(tui.BreweryPageDeps{
		Fetcher:  brewery.NewClient(cfg.clientOptions()),
		Status:   tui.NewStatusLine(),
		Results:  tui.NewResultsPanel(),
		Animator: tui.NewAnimator(anim.NewEntrance(springFor(cfg)), log),
		Logger:   log,
		Place:    cfg.Place,
	})
	app := tui.NewApp(page, tui.NewHelpPage())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal; try 'brewdeck serve'")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
