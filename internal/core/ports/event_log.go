package ports

import (
	"context"

	"pizzaria/internal/core/domain/model/event"
)

// EventLog is the append-only log that decouples order mutations from the
// polling clients observing them. Appends happen only after the triggering
// database transaction commits, so log order is also commit order.
//
// Append failures must never fail the business operation that triggered
// them; callers log and swallow the error.
type EventLog interface {
	// Append serializes the entry and appends it as one line under an
	// exclusive write lock.
	Append(ctx context.Context, entry event.Entry) error

	// ReadSince reads complete entries recorded after the byte offset and
	// returns them with the new offset. An offset beyond the current end of
	// the log resyncs to the end and returns an empty batch rather than an
	// error. Safe to call concurrently with Append.
	ReadSince(ctx context.Context, offset int64) ([]event.Entry, int64, error)
}
