package commands

import (
	"errors"

	"pizzaria/internal/pkg/guard"
)

// ErrSetOrdersPauseCommandIsNotConstructed is returned when a zero-value
// command reaches a handler.
var ErrSetOrdersPauseCommandIsNotConstructed = errors.New(
	"SetOrdersPauseCommand must be created via NewSetOrdersPauseCommand constructor",
)

// SetOrdersPauseCommand is the staff action that pauses or resumes order
// intake, optionally with a message shown to customers while paused.
type SetOrdersPauseCommand struct {
	paused  bool
	message string

	guard guard.ConstructorGuard
}

// NewSetOrdersPauseCommand creates the pause/resume command.
func NewSetOrdersPauseCommand(paused bool, message string) SetOrdersPauseCommand {
	return SetOrdersPauseCommand{
		paused:  paused,
		message: message,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SetOrdersPauseCommand) Validate() error {
	return c.guard.Validate(ErrSetOrdersPauseCommandIsNotConstructed)
}

// Paused returns the requested pause state.
func (c SetOrdersPauseCommand) Paused() bool { return c.paused }

// Message returns the customer-facing message for the paused state.
func (c SetOrdersPauseCommand) Message() string { return c.message }
