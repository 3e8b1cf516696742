package events

import (
	"context"
	"encoding/json"
	"time"

	"awinfeed/internal/logger"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/kafka-go"
)

const (
	FeedEventsTopic   = "feed-events"
	SyncRequestsTopic = "feed-sync-requests"

	TypeFeedGenerated = "feed.generated"
	TypeSyncRequested = "feed.sync_requested"
)

// FeedGenerated is published after a run has written all of its files.
type FeedGenerated struct {
	Type        string            `json:"type"`
	RunID       string            `json:"run_id"`
	Store       string            `json:"store"`
	Fetched     int               `json:"fetched"`
	Exported    int               `json:"exported"`
	Files       map[string]string `json:"files"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// SyncRequest asks the worker for a fresh feed.
type SyncRequest struct {
	Type        string    `json:"type"`
	RequestedBy string    `json:"requested_by"`
	Timestamp   time.Time `json:"timestamp"`
}

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer MessageWriter
	logger *logger.Logger
}

// NewPublisher returns a publisher writing to the feed events topic on brokers.
// With no brokers it returns nil; a nil *Publisher is valid and publishes nothing.
func NewPublisher(brokers []string, logger *logger.Logger) *Publisher {
	if len(brokers) == 0 {
		return nil
	}
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  FeedEventsTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           10 * time.Second,
	}, logger)
}

func NewPublisherWithWriter(writer MessageWriter, logger *logger.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger,
	}
}

// PublishFeedGenerated writes event keyed by its run ID.
func (p *Publisher) PublishFeedGenerated(ctx context.Context, event FeedGenerated) error {
	if p == nil {
		return nil
	}
	event.Type = TypeFeedGenerated

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RunID),
		Value: payload,
		Time:  event.GeneratedAt,
	}); err != nil {
		return errors.Wrapf(err, "failed to publish %s", event.Type)
	}

	p.logger.Debug("Published %s for run %s", event.Type, event.RunID)
	return nil
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
