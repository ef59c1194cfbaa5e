package ui

import (
	"swipedeck/internal/domain"
)

// TransitionRequest asks the container to show Index, sliding in from Direction
type TransitionRequest struct {
	Seq       int
	Index     int
	Direction domain.Direction
}

// Done builds the completion message for this request
func (r TransitionRequest) Done(finished bool) TransitionDoneMsg {
	return TransitionDoneMsg{
		Seq:       r.Seq,
		Index:     r.Index,
		Direction: r.Direction,
		Finished:  finished,
	}
}

// TransitionDoneMsg is delivered when a requested transition settles
type TransitionDoneMsg struct {
	Seq       int
	Index     int
	Direction domain.Direction
	Finished  bool
}

// pagerClosedMsg contains the result of showing a page in the pager
type pagerClosedMsg struct {
	pageID string
	err    error
}
