package handlerwrapper

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/osu-rank-club/rankbot/app/shared/results"
	"github.com/osu-rank-club/rankbot/internal/observability"
	"github.com/osu-rank-club/rankbot/internal/observability/attr"
)

type testPayload struct {
	Name string `json:"name"`
}

func wrap(t *testing.T, handler func(ctx context.Context, payload *testPayload) ([]Result, error)) message.HandlerFunc {
	t.Helper()
	return WrapTransformingTyped("test.handler", observability.NoOpLogger, noop.NewTracerProvider().Tracer("test"), handler)
}

func TestWrapTransformingTyped(t *testing.T) {
	t.Run("decodes, calls, and encodes with topic metadata", func(t *testing.T) {
		h := wrap(t, func(ctx context.Context, payload *testPayload) ([]Result, error) {
			assert.Equal(t, "hello", payload.Name)
			return []Result{{Topic: "out.topic", Payload: payload}}, nil
		})

		msg := message.NewMessage("m1", []byte(`{"name":"hello"}`))
		msg.Metadata.Set(attr.CorrelationIDKey, "corr-1")

		out, err := h(msg)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "out.topic", out[0].Metadata.Get(TopicMetadataKey))
		assert.Equal(t, "corr-1", out[0].Metadata.Get(attr.CorrelationIDKey))
		assert.JSONEq(t, `{"name":"hello"}`, string(out[0].Payload))
	})

	t.Run("generates a correlation id when none arrives", func(t *testing.T) {
		h := wrap(t, func(ctx context.Context, payload *testPayload) ([]Result, error) {
			assert.NotEmpty(t, attr.CorrelationIDFromContext(ctx))
			return []Result{{Topic: "out.topic", Payload: payload}}, nil
		})

		out, err := h(message.NewMessage("m1", []byte(`{}`)))
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.NotEmpty(t, out[0].Metadata.Get(attr.CorrelationIDKey))
	})

	t.Run("undecodable payload is dropped, not redelivered", func(t *testing.T) {
		called := false
		h := wrap(t, func(ctx context.Context, payload *testPayload) ([]Result, error) {
			called = true
			return nil, nil
		})

		out, err := h(message.NewMessage("m1", []byte(`not json`)))
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.False(t, called)
	})

	t.Run("handler error propagates", func(t *testing.T) {
		h := wrap(t, func(ctx context.Context, payload *testPayload) ([]Result, error) {
			return nil, errors.New("boom")
		})

		_, err := h(message.NewMessage("m1", []byte(`{}`)))
		require.Error(t, err)
	})
}

func TestFromOperationResult(t *testing.T) {
	success := FromOperationResult(results.OkResult("yes"), "ok", "fail")
	require.Len(t, success, 1)
	assert.Equal(t, "ok", success[0].Topic)

	failure := FromOperationResult(results.FailResult("no", errors.New("x")), "ok", "fail")
	require.Len(t, failure, 1)
	assert.Equal(t, "fail", failure[0].Topic)

	assert.Empty(t, FromOperationResult(results.OperationResult{}, "ok", "fail"))
}

// capturePublisher records topic/message pairs.
type capturePublisher struct {
	mu        sync.Mutex
	published map[string][]*message.Message
}

func (p *capturePublisher) Publish(topic string, messages ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.published == nil {
		p.published = map[string][]*message.Message{}
	}
	p.published[topic] = append(p.published[topic], messages...)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func TestTopicPublisher(t *testing.T) {
	inner := &capturePublisher{}
	p := NewTopicPublisher(inner)

	routed := message.NewMessage("m1", nil)
	routed.Metadata.Set(TopicMetadataKey, "a.topic")
	require.NoError(t, p.Publish("fallback", routed))

	plain := message.NewMessage("m2", nil)
	require.NoError(t, p.Publish("fallback", plain))

	orphan := message.NewMessage("m3", nil)
	require.Error(t, p.Publish("", orphan), "no destination anywhere must fail")

	assert.Len(t, inner.published["a.topic"], 1)
	assert.Len(t, inner.published["fallback"], 1)
}
