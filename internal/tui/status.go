package tui

import (
	"time"

	"github.com/tinytelemetry/brewdeck/internal/model"
)

// StatusLine is the message area. The page controller overwrites it once per
// state transition.
type StatusLine struct {
	status model.Status
	now    func() time.Time
}

// NewStatusLine returns an empty, idle status line.
func NewStatusLine() *StatusLine {
	return &StatusLine{now: time.Now}
}

// Set replaces the current status.
func (s *StatusLine) Set(st model.Status) { s.status = st }

// Text returns the message shown to the user.
func (s *StatusLine) Text() string { return s.status.Text }

// View renders the status text, with a spinner while loading.
func (s *StatusLine) View(width int) string {
	switch s.status.State {
	case model.StateLoading:
		return statusLoadingStyle.Width(width).Render(spinnerFrame(s.now()) + " " + s.status.Text)
	case model.StateFailed:
		return statusErrorStyle.Width(width).Render(s.status.Text)
	default:
		return statusStyle.Width(width).Render(s.status.Text)
	}
}
