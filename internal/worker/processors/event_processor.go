package processors

import (
	"context"

	"awinfeed/internal/events"
	"awinfeed/internal/logger"
)

// Runner is the part of Pipeline the event processor drives.
type Runner interface {
	Run(ctx context.Context) (*RunResult, error)
}

type EventProcessor struct {
	logger *logger.Logger
	runner Runner
}

func NewEventProcessor(logger *logger.Logger, runner Runner) *EventProcessor {
	return &EventProcessor{
		logger: logger,
		runner: runner,
	}
}

// Process handles one event. Sync requests trigger a full run; other event
// types are ignored.
func (ep *EventProcessor) Process(ctx context.Context, event events.SyncRequest) error {
	switch event.Type {
	case events.TypeSyncRequested:
		ep.logger.Info("Sync requested by %q", event.RequestedBy)
		result, err := ep.runner.Run(ctx)
		if err != nil {
			return err
		}
		ep.logger.Info("Run %s exported %d of %d products", result.RunID, result.Exported, result.Fetched)
	default:
		ep.logger.Debug("Ignoring event type %q", event.Type)
	}
	return nil
}
