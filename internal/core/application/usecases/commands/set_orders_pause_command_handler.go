package commands

import (
	"context"
	"log/slog"

	"pizzaria/internal/core/domain/model/event"
	"pizzaria/internal/core/ports"
)

// SetOrdersPauseCommandHandler updates the global ordering pause flag and
// broadcasts the change through the event log.
type SetOrdersPauseCommandHandler struct {
	settings ports.SettingsStore
	eventLog ports.EventLog
	logger   *slog.Logger
}

// NewSetOrdersPauseCommandHandler creates a handler for pause/resume.
func NewSetOrdersPauseCommandHandler(
	settings ports.SettingsStore,
	eventLog ports.EventLog,
	logger *slog.Logger,
) SetOrdersPauseCommandHandler {
	return SetOrdersPauseCommandHandler{
		settings: settings,
		eventLog: eventLog,
		logger:   logger.With("component", "set_orders_pause"),
	}
}

// Handle persists the new pause state.
func (h *SetOrdersPauseCommandHandler) Handle(ctx context.Context, cmd SetOrdersPauseCommand) (ports.PauseFlag, error) {
	if err := cmd.Validate(); err != nil {
		return ports.PauseFlag{}, err
	}

	flag := ports.PauseFlag{Paused: cmd.Paused(), Message: cmd.Message()}
	if err := h.settings.SetPauseFlag(ctx, flag); err != nil {
		return ports.PauseFlag{}, err
	}

	appendEvent(ctx, h.eventLog, h.logger, event.TypeOrdersPauseUpdated, event.OrdersPauseUpdatedPayload{
		Paused:  flag.Paused,
		Message: flag.Message,
	})

	return flag, nil
}
