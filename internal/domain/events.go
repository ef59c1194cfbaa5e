package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventConfigLoaded          EventType = "ConfigLoaded"
	EventConfigSaved           EventType = "ConfigSaved"
	EventPageShown             EventType = "PageShown"
	EventTransitionDropped     EventType = "TransitionDropped"
	EventTransitionInterrupted EventType = "TransitionInterrupted"
	EventTimerStarted          EventType = "TimerStarted"
	EventTimerFired            EventType = "TimerFired"
	EventTimerInvalidated      EventType = "TimerInvalidated"
	EventDeckStopped           EventType = "DeckStopped"
)

// AllEventTypes lists every event type, in declaration order
var AllEventTypes = []EventType{
	EventConfigLoaded,
	EventConfigSaved,
	EventPageShown,
	EventTransitionDropped,
	EventTransitionInterrupted,
	EventTimerStarted,
	EventTimerFired,
	EventTimerInvalidated,
	EventDeckStopped,
}

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ConfigLoadedEvent is emitted when a deck file is loaded
type ConfigLoadedEvent struct {
	Path  string
	Pages int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when a deck file is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// PageShownEvent is emitted after a transition completes and the indicator is synced
type PageShownEvent struct {
	Index     int
	Direction Direction
}

func (e PageShownEvent) Type() EventType { return EventPageShown }

// TransitionDroppedEvent is emitted when a navigation request arrives while
// another transition is still in flight
type TransitionDroppedEvent struct {
	Index  int
	Reason string
}

func (e TransitionDroppedEvent) Type() EventType { return EventTransitionDropped }

// TransitionInterruptedEvent is emitted when a transition completes without finishing
type TransitionInterruptedEvent struct {
	Index int
}

func (e TransitionInterruptedEvent) Type() EventType { return EventTransitionInterrupted }

// TimerStartedEvent is emitted when auto-advance is armed
type TimerStartedEvent struct {
	Interval time.Duration
}

func (e TimerStartedEvent) Type() EventType { return EventTimerStarted }

// TimerFiredEvent is emitted on every auto-advance fire
type TimerFiredEvent struct {
	Fire int
}

func (e TimerFiredEvent) Type() EventType { return EventTimerFired }

// TimerInvalidatedEvent is emitted when a running auto-advance timer is cancelled
type TimerInvalidatedEvent struct {
	Reason string
}

func (e TimerInvalidatedEvent) Type() EventType { return EventTimerInvalidated }

// DeckStoppedEvent is emitted on teardown
type DeckStoppedEvent struct {
	Index int
}

func (e DeckStoppedEvent) Type() EventType { return EventDeckStopped }
