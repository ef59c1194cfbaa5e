package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"swipedeck/internal/domain"
	"swipedeck/internal/eventbus"
	"swipedeck/internal/ui/autoadvance"
	"swipedeck/internal/ui/logic"
	"swipedeck/internal/ui/views"
)

// Construction errors
var (
	ErrNoPages    = errors.New("deck needs at least one page")
	ErrNoInterval = errors.New("auto-advance enabled without a positive interval")
)

// DefaultSwipeThreshold is the horizontal drag, in cells, that turns a click into a swipe
const DefaultSwipeThreshold = 4

// Options configures a deck
type Options struct {
	Title              string
	AutoAdvance        bool
	Interval           time.Duration
	TransitionDuration time.Duration
	SwipeThreshold     int
	// Transitioner overrides the default SlideTransition
	Transitioner Transitioner
}

// Model is the page container. It owns the pages and routes taps, swipes,
// keys and timer fires into one transition path.
type Model struct {
	bus   eventbus.EventBus
	pages []domain.Page
	opts  Options

	width  int
	height int

	navigator    *logic.Navigator
	resolver     *logic.TapResolver
	timer        *autoadvance.Timer
	transitioner Transitioner
	renderer     *views.Renderer
	pagerOps     *PagerOps

	indicators []bool
	paginator  paginator.Model
	help       help.Model
	keys       keyMap

	visible     int                // page on screen, may lead CurrentIndex during a transition
	inFlight    *TransitionRequest // nil when no transition is running
	seq         int
	interrupted bool

	pressed bool
	pressX  int

	invalidateReason string
	status           string
	stopped          bool

	// commands queued by listener callbacks during one Update
	queued []tea.Cmd
}

// NewModel creates a deck over pages
func NewModel(pages []domain.Page, opts Options, bus eventbus.EventBus) (*Model, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	if opts.AutoAdvance && opts.Interval <= 0 {
		return nil, errors.Wrapf(ErrNoInterval, "got %s", opts.Interval)
	}
	if opts.SwipeThreshold <= 0 {
		opts.SwipeThreshold = DefaultSwipeThreshold
	}

	m := &Model{
		bus:        bus,
		pages:      append([]domain.Page(nil), pages...),
		opts:       opts,
		navigator:  logic.NewNavigator(),
		renderer:   views.NewRenderer(),
		pagerOps:   NewPagerOps(nil),
		indicators: make([]bool, len(pages)),
		help:       help.New(),
		keys:       defaultKeyMap(),
	}
	m.resolver = logic.NewTapResolver(m)
	m.timer = autoadvance.New(m)

	m.transitioner = opts.Transitioner
	if m.transitioner == nil {
		m.transitioner = SlideTransition{Duration: opts.TransitionDuration}
	}

	m.paginator = paginator.New()
	m.paginator.Type = paginator.Arabic
	m.paginator.PerPage = 1
	m.paginator.SetTotalPages(len(pages))

	m.syncIndicator()

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pagerOps.SetProgram(p)
}

// CurrentIndex returns the index of the last completed transition
func (m *Model) CurrentIndex() int {
	return m.navigator.CurrentIndex()
}

// VisibleIndex returns the page currently on screen
func (m *Model) VisibleIndex() int {
	return m.visible
}

// Indicators returns a copy of the progress indicator flags
func (m *Model) Indicators() []bool {
	return append([]bool(nil), m.indicators...)
}

// InFlight reports whether a transition is waiting for completion
func (m *Model) InFlight() bool {
	return m.inFlight != nil
}

// AutoAdvancing reports whether the auto-advance timer is running
func (m *Model) AutoAdvancing() bool {
	return m.timer.Running()
}

// Init starts auto-advance when enabled
func (m *Model) Init() tea.Cmd {
	if !m.opts.AutoAdvance {
		return nil
	}
	return m.startAutoAdvance()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.inFlight != nil {
			// The layout changed under the transition; it cannot settle on the requested page
			m.interrupted = true
		}

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case autoadvance.FireMsg:
		cmd = m.timer.Update(msg)

	case TransitionDoneMsg:
		m.completeTransition(msg)

	case pagerClosedMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).WithField("page", msg.pageID).Error("pager failed")
			m.status = "pager: " + msg.err.Error()
		}
	}

	return m, tea.Batch(append(m.drainQueued(), cmd)...)
}

// View renders the deck
func (m *Model) View() string {
	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         m.opts.Title,
		Page:          m.pages[m.visible],
		Indicators:    m.indicators,
		PageCounter:   m.paginator.View(),
		AutoAdvance:   m.timer.Running(),
		AutoInterval:  m.timer.Interval().String(),
		InFlight:      m.inFlight != nil,
		StatusMessage: m.status,
		HelpView:      m.help.View(m.keys),
	})
}

// Next moves one page forward
func (m *Model) Next() tea.Cmd {
	return m.navigate(domain.Forward, "next")
}

// Prev moves one page back
func (m *Model) Prev() tea.Cmd {
	return m.navigate(domain.Back, "previous")
}

// GoTo shows the page at index. Out of range indices are ignored.
func (m *Model) GoTo(index int) tea.Cmd {
	if index < 0 || index >= len(m.pages) {
		return nil
	}
	m.invalidateTimer("go to page")

	current := m.navigator.CurrentIndex()
	if index == current {
		return nil
	}
	direction := domain.Forward
	if index < current {
		direction = domain.Back
	}
	return m.requestTransition(index, direction)
}

// Stop tears the deck down. The auto-advance timer is cancelled and never
// fires into a stopped deck.
func (m *Model) Stop() {
	if m.stopped {
		return
	}
	m.invalidateTimer("teardown")
	m.stopped = true
	m.publish(eventbus.DeckStoppedEvent{Index: m.navigator.CurrentIndex()})
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Stop()
		return tea.Quit
	case key.Matches(msg, m.keys.Forward):
		return m.Next()
	case key.Matches(msg, m.keys.Back):
		return m.Prev()
	case key.Matches(msg, m.keys.First):
		return m.GoTo(0)
	case key.Matches(msg, m.keys.Last):
		return m.GoTo(len(m.pages) - 1)
	case key.Matches(msg, m.keys.StopAuto):
		m.invalidateTimer("stopped by user")
	case key.Matches(msg, m.keys.StartAuto):
		return m.startAutoAdvance()
	case key.Matches(msg, m.keys.Open):
		m.invalidateTimer("pager opened")
		return m.pagerOps.showPageCmd(m.pages[m.visible])
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelRight:
		m.queue(m.navigate(domain.Forward, "wheel"))
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelLeft:
		m.queue(m.navigate(domain.Back, "wheel"))
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.pressed = true
		m.pressX = msg.X
	case msg.Action == tea.MouseActionRelease:
		startX := msg.X
		if m.pressed {
			startX = m.pressX
		}
		m.pressed = false

		dx := msg.X - startX
		switch {
		case dx <= -m.opts.SwipeThreshold:
			// Dragging left pulls the next page in from the right
			m.queue(m.navigate(domain.Forward, "swipe"))
		case dx >= m.opts.SwipeThreshold:
			m.queue(m.navigate(domain.Back, "swipe"))
		default:
			m.tap(msg.X)
		}
	}
}

// tap routes a click through the tap zone resolver
func (m *Model) tap(x int) {
	m.invalidateTimer("tap")
	m.resolver.HandleTap(logic.TapInput{
		X:              float64(x),
		ContainerWidth: float64(m.width),
		CurrentIndex:   m.navigator.CurrentIndex(),
		Count:          len(m.pages),
	})
}

// DidTap implements logic.TapListener
func (m *Model) DidTap(x float64) {
	m.navigator.SetLastTapX(x)
}

// DidTapForward implements logic.TapListener
func (m *Model) DidTapForward(nextIndex int) {
	m.queue(m.requestTransition(nextIndex, domain.Forward))
}

// DidTapBack implements logic.TapListener
func (m *Model) DidTapBack(nextIndex int) {
	m.queue(m.requestTransition(nextIndex, domain.Back))
}

// AutoAdvanceInterval implements autoadvance.Delegate
func (m *Model) AutoAdvanceInterval() time.Duration {
	return m.opts.Interval
}

// AutoAdvanceFired implements autoadvance.Delegate
func (m *Model) AutoAdvanceFired() tea.Cmd {
	if m.stopped {
		return nil
	}
	m.publish(eventbus.TimerFiredEvent{Fire: m.timer.Fires()})
	next := logic.AdvanceForward(m.navigator.CurrentIndex(), len(m.pages))
	return m.requestTransition(next, domain.Forward)
}

// AutoAdvanceInvalidated implements autoadvance.Delegate
func (m *Model) AutoAdvanceInvalidated() {
	logrus.WithField("reason", m.invalidateReason).Info("auto-advance invalidated")
	m.publish(eventbus.TimerInvalidatedEvent{Reason: m.invalidateReason})
}

func (m *Model) navigate(direction domain.Direction, reason string) tea.Cmd {
	m.invalidateTimer(reason)
	next := logic.Step(direction, m.navigator.CurrentIndex(), len(m.pages))
	return m.requestTransition(next, direction)
}

func (m *Model) startAutoAdvance() tea.Cmd {
	if m.stopped {
		return nil
	}
	if m.timer.Running() {
		return nil
	}
	cmd, err := m.timer.Start()
	if err != nil {
		logrus.WithError(err).Warn("auto-advance not started")
		m.status = err.Error()
		return nil
	}
	m.status = ""
	logrus.WithField("interval", m.timer.Interval()).Info("auto-advance started")
	m.publish(eventbus.TimerStartedEvent{Interval: m.timer.Interval()})
	return cmd
}

func (m *Model) invalidateTimer(reason string) {
	m.invalidateReason = reason
	m.timer.Invalidate()
}

// requestTransition starts a transition unless one is already in flight
func (m *Model) requestTransition(index int, direction domain.Direction) tea.Cmd {
	if m.stopped {
		return nil
	}
	if m.inFlight != nil {
		logrus.WithFields(logrus.Fields{
			"index":    index,
			"inFlight": m.inFlight.Index,
		}).Debug("transition dropped")
		m.publish(eventbus.TransitionDroppedEvent{Index: index, Reason: "transition in flight"})
		return nil
	}

	m.seq++
	req := TransitionRequest{Seq: m.seq, Index: index, Direction: direction}
	m.inFlight = &req
	m.interrupted = false
	m.visible = index

	return m.transitioner.Transition(req)
}

// completeTransition applies a settled transition. State only changes when it finished.
func (m *Model) completeTransition(msg TransitionDoneMsg) {
	if m.inFlight == nil || msg.Seq != m.inFlight.Seq {
		return
	}

	finished := msg.Finished && !m.interrupted
	m.inFlight = nil
	m.interrupted = false

	if !finished {
		m.visible = m.navigator.CurrentIndex()
		logrus.WithField("index", msg.Index).Debug("transition did not finish")
		m.publish(eventbus.TransitionInterruptedEvent{Index: msg.Index})
		return
	}

	m.navigator.SetCurrentIndex(msg.Index)
	m.visible = msg.Index
	m.syncIndicator()
	m.publish(eventbus.PageShownEvent{Index: msg.Index, Direction: msg.Direction})
}

func (m *Model) syncIndicator() {
	current := m.navigator.CurrentIndex()
	views.SelectOnly(m.indicators, current)
	m.paginator.Page = current
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.queued = append(m.queued, cmd)
	}
}

func (m *Model) drainQueued() []tea.Cmd {
	cmds := m.queued
	m.queued = nil
	return cmds
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
