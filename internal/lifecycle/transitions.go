package lifecycle

import (
	"fmt"
	"slices"

	"github.com/wellywell/orderdesk/internal/types"
)

// ValidTransitions lists the statuses actor may move an order in current to.
// The result is empty, never nil, for terminal statuses.
func ValidTransitions(current types.Status, actor types.Actor) ([]types.Status, error) {
	next, ok := transitions[current]
	if !ok {
		return nil, fmt.Errorf("%w", &InvalidStatusError{Status: string(current)})
	}

	switch actor {
	case types.AdminActor:
		out := make([]types.Status, len(next))
		copy(out, next)
		return out, nil
	case types.OwnerActor:
		// owners may only withdraw an order nobody has started on
		if current == types.PendingStatus {
			return []types.Status{types.CancelledStatus}, nil
		}
		return []types.Status{}, nil
	default:
		return nil, fmt.Errorf("%w", &UnknownActorError{Actor: actor})
	}
}

// ApplyTransition validates a single step and returns the new authoritative
// status. Persisting it and notifying the owner is left to the caller.
func ApplyTransition(current, requested types.Status, actor types.Actor) (types.Status, error) {
	allowed, err := ValidTransitions(current, actor)
	if err != nil {
		return "", err
	}
	if !slices.Contains(allowed, requested) {
		return "", fmt.Errorf("%w", &IllegalTransitionError{From: current, To: requested, Actor: actor})
	}
	return requested, nil
}
