// Package rankrouter wires the rank module's handlers into a watermill
// router over the event bus.
package rankrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/osu-rank-club/rankbot/app/eventbus"
	rankservice "github.com/osu-rank-club/rankbot/app/modules/rank/application"
	rankevents "github.com/osu-rank-club/rankbot/app/modules/rank/domain/events"
	rankhandlers "github.com/osu-rank-club/rankbot/app/modules/rank/infrastructure/handlers"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// RankRouter handles routing for rank module events.
type RankRouter struct {
	logger *slog.Logger
	Router *message.Router
	bus    eventbus.EventBus
	tracer trace.Tracer
}

// NewRankRouter creates a new RankRouter.
func NewRankRouter(logger *slog.Logger, router *message.Router, bus eventbus.EventBus, tracer trace.Tracer) *RankRouter {
	return &RankRouter{
		logger: logger,
		Router: router,
		bus:    bus,
		tracer: tracer,
	}
}

// Configure sets up the router with the rank handlers. Middleware belongs to
// the shared router, not here.
func (r *RankRouter) Configure(ctx context.Context, service rankservice.Service) error {
	handlers := rankhandlers.NewRankHandlers(service)

	if err := r.RegisterHandlers(ctx, handlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

type handlerDeps struct {
	router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	logger     *slog.Logger
	tracer     trace.Tracer
}

// registerHandler registers a typed transforming handler. The publish topic
// is left empty; each outgoing message names its own destination.
func registerHandler[T any](
	deps handlerDeps,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "rank." + topic

	deps.router.AddHandler(
		handlerName,
		topic,
		deps.subscriber,
		"",
		deps.publisher,
		handlerwrapper.WrapTransformingTyped(handlerName, deps.logger, deps.tracer, handler),
	)
}

// RegisterHandlers registers the rank module's event handlers.
func (r *RankRouter) RegisterHandlers(ctx context.Context, handlers rankhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.bus.GetSubscriber(),
		publisher:  handlerwrapper.NewTopicPublisher(r.bus.GetPublisher()),
		logger:     r.logger,
		tracer:     r.tracer,
	}

	registerHandler(deps, rankevents.TopicSubmissionRequested, handlers.HandleSubmissionRequested)
	registerHandler(deps, rankevents.TopicWhatIfRequested, handlers.HandleWhatIfRequested)

	return nil
}

// Close stops the router.
func (r *RankRouter) Close() error {
	return r.Router.Close()
}
