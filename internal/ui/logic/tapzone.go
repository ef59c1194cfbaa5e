package logic

import "swipedeck/internal/domain"

// TapListener receives the notifications raised by a TapResolver
type TapListener interface {
	// DidTap is called for every tap before any navigation decision
	DidTap(x float64)
	DidTapForward(nextIndex int)
	DidTapBack(nextIndex int)
}

// TapInput is the state the owner hands over with each tap
type TapInput struct {
	X              float64
	ContainerWidth float64
	CurrentIndex   int
	Count          int
}

// TapResolver turns raw taps into navigation decisions. It keeps no state.
type TapResolver struct {
	listener TapListener
}

// NewTapResolver creates a resolver reporting to listener
func NewTapResolver(listener TapListener) *TapResolver {
	return &TapResolver{listener: listener}
}

// HandleTap notifies the generic tap, resolves the direction and then
// notifies exactly one of forward or back.
func (r *TapResolver) HandleTap(in TapInput) Decision {
	if r.listener != nil {
		r.listener.DidTap(in.X)
	}

	decision := ResolveDirectionAndIndex(in.ContainerWidth, in.X, in.CurrentIndex, in.Count)

	if r.listener != nil {
		switch decision.Direction {
		case domain.Forward:
			r.listener.DidTapForward(decision.NextIndex)
		case domain.Back:
			r.listener.DidTapBack(decision.NextIndex)
		}
	}

	return decision
}
