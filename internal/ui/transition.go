package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Transitioner performs the visual part of a page change. The returned
// command must eventually produce the request's TransitionDoneMsg; if it
// never does, the deck keeps waiting and its state is not updated.
type Transitioner interface {
	Transition(req TransitionRequest) tea.Cmd
}

// SlideTransition settles after a fixed duration
type SlideTransition struct {
	Duration time.Duration
}

// Transition implements Transitioner
func (s SlideTransition) Transition(req TransitionRequest) tea.Cmd {
	if s.Duration <= 0 {
		return func() tea.Msg { return req.Done(true) }
	}
	return tea.Tick(s.Duration, func(time.Time) tea.Msg {
		return req.Done(true)
	})
}
