package db

import (
	"errors"
	"fmt"
)

// ErrStatusConflict means the order left the status a transition was checked against.
var ErrStatusConflict = errors.New("order status changed concurrently")

type UserExistsError struct {
	Username string
}

func (e *UserExistsError) Error() string {
	return fmt.Sprintf("User %s exists", e.Username)
}

type UserNotFoundError struct {
	Username string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("User %s not found", e.Username)
}

type OrderNotFoundError struct {
	ID string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("Order %s not found", e.ID)
}
