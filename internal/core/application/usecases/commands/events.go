package commands

import (
	"context"
	"log/slog"

	"pizzaria/internal/core/domain/model/event"
	"pizzaria/internal/core/ports"
)

// appendEvent writes one entry to the event log after a committed
// transaction. Failures are logged and swallowed: "order succeeded" is
// deliberately decoupled from "event was observed by watchers", so an event
// log I/O problem must never fail the business operation that triggered it.
func appendEvent(
	ctx context.Context, log ports.EventLog, logger *slog.Logger, eventType string, payload any,
) {
	entry, err := event.NewEntry(eventType, payload)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build event entry", "type", eventType, "error", err)
		return
	}

	if err := log.Append(ctx, entry); err != nil {
		logger.ErrorContext(ctx, "Failed to append event entry", "type", eventType, "error", err)
	}
}
