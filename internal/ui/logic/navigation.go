package logic

import (
	"fmt"

	"swipedeck/internal/domain"
)

// Decision is the outcome of resolving a tap
type Decision struct {
	Direction domain.Direction
	NextIndex int
}

// AdvanceForward returns the index after current, wrapping to the first page
func AdvanceForward(currentIndex, count int) int {
	mustHavePages(count)
	if currentIndex+1 > count-1 {
		return 0
	}
	return currentIndex + 1
}

// AdvanceBackward returns the index before current, wrapping to the last page
func AdvanceBackward(currentIndex, count int) int {
	mustHavePages(count)
	if currentIndex-1 < 0 {
		return count - 1
	}
	return currentIndex - 1
}

// ResolveDirectionAndIndex splits the container into a back zone (left half)
// and a forward zone (right half). A tap exactly on the midpoint goes back.
func ResolveDirectionAndIndex(containerWidth, tapX float64, currentIndex, count int) Decision {
	if tapX > containerWidth/2 {
		return Decision{Direction: domain.Forward, NextIndex: AdvanceForward(currentIndex, count)}
	}
	return Decision{Direction: domain.Back, NextIndex: AdvanceBackward(currentIndex, count)}
}

// Step moves one page in the given direction
func Step(direction domain.Direction, currentIndex, count int) int {
	if direction == domain.Forward {
		return AdvanceForward(currentIndex, count)
	}
	return AdvanceBackward(currentIndex, count)
}

func mustHavePages(count int) {
	if count < 1 {
		panic(fmt.Sprintf("logic: page count must be at least 1, got %d", count))
	}
}

// Navigator tracks the navigation state of one deck
type Navigator struct {
	currentIndex int
	lastTapX     float64
	tapped       bool
}

// NewNavigator creates a navigator positioned on the first page
func NewNavigator() *Navigator {
	return &Navigator{}
}

// CurrentIndex returns the index of the page whose transition last completed
func (n *Navigator) CurrentIndex() int {
	return n.currentIndex
}

// LastTapX returns the most recent tap position. Meaningless until HasTapped.
func (n *Navigator) LastTapX() float64 {
	return n.lastTapX
}

// HasTapped reports whether any tap has been recorded
func (n *Navigator) HasTapped() bool {
	return n.tapped
}

// SetCurrentIndex records a completed transition. Callers pass valid indices.
func (n *Navigator) SetCurrentIndex(index int) {
	n.currentIndex = index
}

// SetLastTapX records the position of a tap
func (n *Navigator) SetLastTapX(x float64) {
	n.lastTapX = x
	n.tapped = true
}
