// Package playerrouter wires the player module's handlers into a watermill
// router over the event bus.
package playerrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/osu-rank-club/rankbot/app/eventbus"
	playerservice "github.com/osu-rank-club/rankbot/app/modules/player/application"
	playerevents "github.com/osu-rank-club/rankbot/app/modules/player/domain/events"
	playerhandlers "github.com/osu-rank-club/rankbot/app/modules/player/infrastructure/handlers"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// PlayerRouter handles routing for player module events.
type PlayerRouter struct {
	logger *slog.Logger
	Router *message.Router
	bus    eventbus.EventBus
	tracer trace.Tracer
}

// NewPlayerRouter creates a new PlayerRouter.
func NewPlayerRouter(logger *slog.Logger, router *message.Router, bus eventbus.EventBus, tracer trace.Tracer) *PlayerRouter {
	return &PlayerRouter{
		logger: logger,
		Router: router,
		bus:    bus,
		tracer: tracer,
	}
}

// Configure sets up the router with the player handlers. Middleware belongs
// to the shared router, not here.
func (r *PlayerRouter) Configure(ctx context.Context, service playerservice.Service) error {
	handlers := playerhandlers.NewPlayerHandlers(service)

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
	handlerName := "player." + topic

	deps.router.AddHandler(
		handlerName,
		topic,
		deps.subscriber,
		"",
		deps.publisher,
		handlerwrapper.WrapTransformingTyped(handlerName, deps.logger, deps.tracer, handler),
	)
}

// RegisterHandlers registers the player module's event handlers.
func (r *PlayerRouter) RegisterHandlers(ctx context.Context, handlers playerhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.bus.GetSubscriber(),
		publisher:  handlerwrapper.NewTopicPublisher(r.bus.GetPublisher()),
		logger:     r.logger,
		tracer:     r.tracer,
	}

	registerHandler(deps, playerevents.TopicPlayerLinkRequested, handlers.HandlePlayerLinkRequested)
	registerHandler(deps, playerevents.TopicPlayerRequested, handlers.HandlePlayerRequested)

	return nil
}

// Close stops the router.
func (r *PlayerRouter) Close() error {
	return r.Router.Close()
}
