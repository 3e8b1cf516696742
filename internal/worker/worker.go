package worker

import (
	"context"
	"encoding/json"
	"time"

	"awinfeed/internal/config"
	"awinfeed/internal/events"
	"awinfeed/internal/logger"
	"awinfeed/internal/worker/processors"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of *kafka.Reader the worker uses.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Worker struct {
	logger    *logger.Logger
	reader    MessageReader
	processor *processors.EventProcessor
}

func New(cfg *config.Config, logger *logger.Logger, runner processors.Runner) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.KafkaBrokerList(),
		GroupID:        "awin-feed-worker",
		Topic:          events.SyncRequestsTopic,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return NewWithReader(reader, logger, runner)
}

func NewWithReader(reader MessageReader, logger *logger.Logger, runner processors.Runner) *Worker {
	return &Worker{
		logger:    logger,
		reader:    reader,
		processor: processors.NewEventProcessor(logger, runner),
	}
}

// Start reads sync requests until ctx is cancelled. Each request is handled
// to completion before the next one is read.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Worker started, listening on %s", events.SyncRequestsTopic)

	for {
		message, err := w.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Error("Failed to read message: %v", err)
			continue
		}

		w.logger.Debug("Received message: %s", string(message.Value))

		var event events.SyncRequest
		if err := json.Unmarshal(message.Value, &event); err != nil {
			w.logger.Error("Failed to parse event: %v", err)
			continue
		}

		if err := w.processor.Process(ctx, event); err != nil {
			w.logger.Error("Failed to process event: %v", err)
			continue
		}

		w.logger.Debug("Event processed successfully")
	}
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	w.reader.Close()
}
