// Package handlerwrapper adapts typed, pure event handlers to watermill. A
// handler receives a decoded payload and returns the messages to publish;
// the wrapper owns decoding, correlation metadata, tracing, and encoding.
package handlerwrapper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/internal/observability/attr"
)

// TopicMetadataKey carries the destination topic on outgoing messages so one
// handler can fan out to success and failure topics.
const TopicMetadataKey = "topic"

// Result is one outgoing event produced by a handler.
type Result struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

// FromOperationResult maps a service outcome onto the conventional
// success/failure topic pair. An outcome with neither payload produces no
// events.
func FromOperationResult(result results.OperationResult, successTopic, failureTopic string) []Result {
	var out []Result
	if result.Success != nil {
		out = append(out, Result{Topic: successTopic, Payload: result.Success})
	}
	if result.Failure != nil {
		out = append(out, Result{Topic: failureTopic, Payload: result.Failure})
	}
	return out
}

// WrapTransformingTyped turns a typed handler into a watermill HandlerFunc.
func WrapTransformingTyped[T any](
	handlerName string,
	logger *slog.Logger,
	tracer trace.Tracer,
	handler func(ctx context.Context, payload *T) ([]Result, error),
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx := msg.Context()
		correlationID := msg.Metadata.Get(attr.CorrelationIDKey)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		ctx = attr.WithCorrelationID(ctx, correlationID)

		ctx, span := tracer.Start(ctx, handlerName, trace.WithAttributes(
			attribute.String("handler", handlerName),
			attribute.String("message_id", msg.UUID),
		))
		defer span.End()

		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			// A payload that cannot decode will never decode; drop it rather
			// than redeliver forever.
			logger.ErrorContext(ctx, "Dropping undecodable message",
				attr.String("handler", handlerName),
				attr.String("message_id", msg.UUID),
				attr.Error(err),
			)
			span.RecordError(err)
			return nil, nil
		}

		handlerResults, err := handler(ctx, &payload)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}

		out := make([]*message.Message, 0, len(handlerResults))
		for _, result := range handlerResults {
			encoded, err := json.Marshal(result.Payload)
			if err != nil {
				return nil, fmt.Errorf("%s: marshal result for %s: %w", handlerName, result.Topic, err)
			}
			outMsg := message.NewMessage(watermill.NewUUID(), encoded)
			outMsg.Metadata.Set(TopicMetadataKey, result.Topic)
			outMsg.Metadata.Set(attr.CorrelationIDKey, correlationID)
			for k, v := range result.Metadata {
				outMsg.Metadata.Set(k, v)
			}
			out = append(out, outMsg)
		}
		return out, nil
	}
}

// TopicPublisher routes each message to the topic named in its metadata,
// falling back to the topic the router was configured with.
type TopicPublisher struct {
	inner message.Publisher
}

func NewTopicPublisher(inner message.Publisher) *TopicPublisher {
	return &TopicPublisher{inner: inner}
}

func (p *TopicPublisher) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		destination := msg.Metadata.Get(TopicMetadataKey)
		if destination == "" {
			destination = topic
		}
		if destination == "" {
			return fmt.Errorf("message %s has no destination topic", msg.UUID)
		}
		if err := p.inner.Publish(destination, msg); err != nil {
			return err
		}
	}
	return nil
}

func (p *TopicPublisher) Close() error {
	return p.inner.Close()
}

var _ message.Publisher = (*TopicPublisher)(nil)
