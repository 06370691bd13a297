package order

import (
	"errors"
	"fmt"

	"pizzaria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order on the kanban board.
// It implements a state machine with explicitly enumerated transitions so
// skip-ahead moves are rejected instead of silently accepted.
//
// State transitions:
//
//	novo ──> aceito ──> producao ──> entrega ──> finalizado
//	           │            │           │
//	           └──────> entrega    finalizado
//
//	cancelado is reachable from every non-terminal status.
//	finalizado and cancelado are terminal.
type Status string

const (
	// StatusNovo is the initial status of every created order.
	StatusNovo Status = "novo"

	// StatusAceito indicates staff accepted the order.
	StatusAceito Status = "aceito"

	// StatusProducao indicates the kitchen started preparing the order.
	StatusProducao Status = "producao"

	// StatusEntrega indicates the order left for delivery.
	StatusEntrega Status = "entrega"

	// StatusFinalizado indicates the order was completed. Terminal.
	StatusFinalizado Status = "finalizado"

	// StatusCancelado indicates the order was cancelled. Terminal.
	StatusCancelado Status = "cancelado"
)

// ErrInvalidTransition is the sentinel error for disallowed status changes.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError names the current and attempted status of a
// rejected transition so the API can report both to the caller.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// allowedTransitions enumerates every legal status change. Absence of a
// pair here means the transition is rejected; nothing is inferred from
// ordering. aceito may move straight to entrega and producao straight to
// finalizado because retirada/balcao orders skip stages of the delivery
// flow.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusNovo:     {StatusAceito, StatusCancelado},
		StatusAceito:   {StatusProducao, StatusEntrega, StatusCancelado},
		StatusProducao: {StatusEntrega, StatusFinalizado, StatusCancelado},
		StatusEntrega:  {StatusFinalizado, StatusCancelado},
	}
}

// validStatuses returns the set of statuses accepted from external input.
func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusNovo:       {},
		StatusAceito:     {},
		StatusProducao:   {},
		StatusEntrega:    {},
		StatusFinalizado: {},
		StatusCancelado:  {},
	}
}

// ParseStatus converts an external string into a Status, rejecting
// anything outside the six known values.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the Status is one of the six known values.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", string(s)))
	}
	return nil
}

// IsTerminal reports whether no transition out of the status exists.
func (s Status) IsTerminal() bool {
	return s == StatusFinalizado || s == StatusCancelado
}

// CanTransitionTo reports whether moving from s to target is an
// enumerated legal transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// String returns the persisted/displayed form of the status.
func (s Status) String() string {
	return string(s)
}
