// Package autoadvance provides a repeating Bubble Tea timer that asks its
// owner to move one page forward on a fixed schedule.
//
// A Timer is either idle or running. Start moves it to running, Invalidate
// moves it back to idle. There is no pause: restarting means calling Start
// again, which re-reads the interval from the delegate.
package autoadvance

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// Start errors
var (
	ErrAlreadyRunning = errors.New("auto-advance timer already running")
	ErrNoDelegate     = errors.New("auto-advance timer has no delegate")
	ErrNoInterval     = errors.New("auto-advance interval must be positive")
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Delegate is the owner of a Timer
type Delegate interface {
	// AutoAdvanceInterval is read once per Start
	AutoAdvanceInterval() time.Duration
	// AutoAdvanceFired asks the owner to advance forward one page
	AutoAdvanceFired() tea.Cmd
	// AutoAdvanceInvalidated reports that a running timer was cancelled
	AutoAdvanceInvalidated()
}

// FireMsg is delivered when a scheduled fire is due
type FireMsg struct {
	ID   int
	Fire int
	tag  int
}

// Timer is a per-deck auto-advance timer
type Timer struct {
	id       int
	tag      int
	delegate Delegate

	interval  time.Duration
	startedAt time.Time
	fires     int
	running   bool

	now func() time.Time
}

// New creates an idle timer
func New(delegate Delegate) *Timer {
	return &Timer{
		id:       nextID(),
		delegate: delegate,
		now:      time.Now,
	}
}

// ID identifies the timer in FireMsg
func (t *Timer) ID() int { return t.id }

// Running reports whether fires are scheduled
func (t *Timer) Running() bool { return t.running }

// Interval returns the interval read at the last Start
func (t *Timer) Interval() time.Duration { return t.interval }

// Fires returns the number of fires since the last Start
func (t *Timer) Fires() int { return t.fires }

// Start reads the interval from the delegate and schedules the first fire.
// Fire k is due at start + k*interval regardless of how long fires take.
func (t *Timer) Start() (tea.Cmd, error) {
	if t.running {
		return nil, ErrAlreadyRunning
	}
	if t.delegate == nil {
		return nil, ErrNoDelegate
	}
	interval := t.delegate.AutoAdvanceInterval()
	if interval <= 0 {
		return nil, errors.Wrapf(ErrNoInterval, "got %s", interval)
	}

	t.tag++
	t.interval = interval
	t.startedAt = t.now()
	t.fires = 0
	t.running = true

	return t.schedule(), nil
}

// Update handles FireMsg. Messages for other timers or from a previous run
// are ignored.
func (t *Timer) Update(msg tea.Msg) tea.Cmd {
	fm, ok := msg.(FireMsg)
	if !ok || fm.ID != t.id || fm.tag != t.tag || !t.running {
		return nil
	}

	t.fires = fm.Fire
	advance := t.delegate.AutoAdvanceFired()
	if !t.running {
		return advance
	}
	return tea.Batch(advance, t.schedule())
}

// Invalidate cancels any scheduled fire. Calling it on an idle timer does nothing.
func (t *Timer) Invalidate() {
	if !t.running {
		return
	}
	t.running = false
	t.tag++
	t.delegate.AutoAdvanceInvalidated()
}

func (t *Timer) schedule() tea.Cmd {
	id, tag, fire := t.id, t.tag, t.fires+1
	wait := t.dueAt(fire).Sub(t.now())
	if wait < 0 {
		wait = 0
	}
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return FireMsg{ID: id, Fire: fire, tag: tag}
	})
}

func (t *Timer) dueAt(fire int) time.Time {
	return t.startedAt.Add(time.Duration(fire) * t.interval)
}
