package lifecycle

import (
	"errors"
	"fmt"

	"github.com/wellywell/orderdesk/internal/types"
)

var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrIllegalTransition = errors.New("illegal transition")
)

type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("Unknown order status %q", e.Status)
}

func (e *InvalidStatusError) Is(target error) bool {
	return target == ErrInvalidStatus
}

type UnknownActorError struct {
	Actor types.Actor
}

func (e *UnknownActorError) Error() string {
	return fmt.Sprintf("Unknown actor %q", e.Actor)
}

// Is makes an unknown actor an invalid input like an unknown status.
func (e *UnknownActorError) Is(target error) bool {
	return target == ErrInvalidStatus
}

type IllegalTransitionError struct {
	From  types.Status
	To    types.Status
	Actor types.Actor
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("Order in status %s cannot be moved to %s by %s", e.From, e.To, e.Actor)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}
