// Package eventbus wraps NATS JetStream behind the watermill Publisher and
// Subscriber interfaces used by the module routers.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/osu-rank-club/rankbot/internal/observability/attr"
)

// EventBus is the messaging surface the modules publish to and consume from.
// GetPublisher and GetSubscriber expose the raw watermill endpoints for
// router wiring.
type EventBus interface {
	Publish(ctx context.Context, topic string, msg *message.Message) error
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
	CreateStream(ctx context.Context, streamName string) error
	GetPublisher() message.Publisher
	GetSubscriber() message.Subscriber
	Close() error
}

type eventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	js         jetstream.JetStream
	natsConn   *nc.Conn
	logger     *slog.Logger

	streamMutex    sync.Mutex
	createdStreams map[string]bool
}

// NewEventBus connects to NATS and builds the watermill publisher and
// subscriber over JetStream.
func NewEventBus(ctx context.Context, natsURL string, logger *slog.Logger) (EventBus, error) {
	natsConn, err := nc.Connect(natsURL,
		nc.RetryOnFailedConnect(true),
		nc.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(logger)
	marshaler := &wmnats.NATSMarshaler{}

	publisher, err := wmnats.NewPublisher(wmnats.PublisherConfig{
		URL:       natsURL,
		Marshaler: marshaler,
		NatsOptions: []nc.Option{
			nc.RetryOnFailedConnect(true),
		},
		JetStream: wmnats.JetStreamConfig{AutoProvision: false},
	}, watermillLogger)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(wmnats.SubscriberConfig{
		URL:         natsURL,
		Unmarshaler: marshaler,
		NatsOptions: []nc.Option{
			nc.RetryOnFailedConnect(true),
		},
		JetStream: wmnats.JetStreamConfig{AutoProvision: false},
	}, watermillLogger)
	if err != nil {
		publisher.Close()
		natsConn.Close()
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return &eventBus{
		publisher:      publisher,
		subscriber:     subscriber,
		js:             js,
		natsConn:       natsConn,
		logger:         logger,
		createdStreams: make(map[string]bool),
	}, nil
}

func (eb *eventBus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	if msg.UUID == "" {
		msg.UUID = watermill.NewUUID()
	}
	if correlationID := attr.CorrelationIDFromContext(ctx); correlationID != "" && msg.Metadata.Get(attr.CorrelationIDKey) == "" {
		msg.Metadata.Set(attr.CorrelationIDKey, correlationID)
	}

	eb.logger.DebugContext(ctx, "Publishing message",
		attr.String("topic", topic),
		attr.String("message_id", msg.UUID),
	)

	if err := eb.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

func (eb *eventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	eb.logger.InfoContext(ctx, "Subscribing to topic", attr.String("topic", topic))
	messages, err := eb.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	return messages, nil
}

// CreateStream ensures the named stream exists with the subjects registered
// for it in streams.go. Safe to call repeatedly.
func (eb *eventBus) CreateStream(ctx context.Context, streamName string) error {
	eb.streamMutex.Lock()
	defer eb.streamMutex.Unlock()

	if eb.createdStreams[streamName] {
		return nil
	}

	subjects, ok := streamSubjects[streamName]
	if !ok {
		return fmt.Errorf("unknown stream %q", streamName)
	}

	stream, err := eb.js.Stream(ctx, streamName)
	switch {
	case err == jetstream.ErrStreamNotFound:
		if _, err := eb.js.CreateStream(ctx, jetstream.StreamConfig{
			Name:      streamName,
			Subjects:  subjects,
			Retention: jetstream.LimitsPolicy,
		}); err != nil {
			return fmt.Errorf("failed to create stream %s: %w", streamName, err)
		}
		eb.logger.InfoContext(ctx, "Stream created", attr.String("stream", streamName))
	case err != nil:
		return fmt.Errorf("failed to check stream %s: %w", streamName, err)
	default:
		info, err := stream.Info(ctx)
		if err != nil {
			return fmt.Errorf("failed to get stream info for %s: %w", streamName, err)
		}
		if missingSubjects(info.Config.Subjects, subjects) {
			info.Config.Subjects = subjects
			if _, err := eb.js.UpdateStream(ctx, info.Config); err != nil {
				return fmt.Errorf("failed to update stream %s: %w", streamName, err)
			}
			eb.logger.InfoContext(ctx, "Stream subjects updated", attr.String("stream", streamName))
		}
	}

	eb.createdStreams[streamName] = true
	return nil
}

func missingSubjects(existing, wanted []string) bool {
	have := make(map[string]bool, len(existing))
	for _, s := range existing {
		have[s] = true
	}
	for _, s := range wanted {
		if !have[s] {
			return true
		}
	}
	return false
}

func (eb *eventBus) GetPublisher() message.Publisher {
	return eb.publisher
}

func (eb *eventBus) GetSubscriber() message.Subscriber {
	return eb.subscriber
}

func (eb *eventBus) Close() error {
	if eb.publisher != nil {
		if err := eb.publisher.Close(); err != nil {
			eb.logger.Error("Error closing publisher", attr.Error(err))
		}
	}
	if eb.subscriber != nil {
		if err := eb.subscriber.Close(); err != nil {
			eb.logger.Error("Error closing subscriber", attr.Error(err))
		}
	}
	if eb.natsConn != nil {
		eb.natsConn.Close()
	}
	return nil
}
