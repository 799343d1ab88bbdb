// Package guildrouter wires the guild module's handlers into a watermill
// router over the event bus.
package guildrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/osu-rank-club/rankbot/app/eventbus"
	guildservice "github.com/osu-rank-club/rankbot/app/modules/guild/application"
	guildevents "github.com/osu-rank-club/rankbot/app/modules/guild/domain/events"
	guildhandlers "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/handlers"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// GuildRouter handles routing for guild module events.
type GuildRouter struct {
	logger *slog.Logger
	Router *message.Router
	bus    eventbus.EventBus
	tracer trace.Tracer
}

// NewGuildRouter creates a new GuildRouter.
func NewGuildRouter(logger *slog.Logger, router *message.Router, bus eventbus.EventBus, tracer trace.Tracer) *GuildRouter {
	return &GuildRouter{
		logger: logger,
		Router: router,
		bus:    bus,
		tracer: tracer,
	}
}

// Configure sets up the router with the guild handlers. Middleware belongs to
// the shared router, not here.
func (r *GuildRouter) Configure(ctx context.Context, service guildservice.Service) error {
	handlers := guildhandlers.NewGuildHandlers(service)

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
	handlerName := "guild." + topic

	deps.router.AddHandler(
		handlerName,
		topic,
		deps.subscriber,
		"",
		deps.publisher,
		handlerwrapper.WrapTransformingTyped(handlerName, deps.logger, deps.tracer, handler),
	)
}

// RegisterHandlers registers the guild module's event handlers.
func (r *GuildRouter) RegisterHandlers(ctx context.Context, handlers guildhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.bus.GetSubscriber(),
		publisher:  handlerwrapper.NewTopicPublisher(r.bus.GetPublisher()),
		logger:     r.logger,
		tracer:     r.tracer,
	}

	registerHandler(deps, guildevents.TopicGuildSetupRequested, handlers.HandleGuildSetupRequested)
	registerHandler(deps, guildevents.TopicGuildConfigRequested, handlers.HandleGuildConfigRequested)
	registerHandler(deps, guildevents.TopicGuildConfigUpdateRequested, handlers.HandleGuildConfigUpdateRequested)
	registerHandler(deps, guildevents.TopicLadderRequested, handlers.HandleLadderRequested)
	registerHandler(deps, guildevents.TopicLadderRoleAddRequested, handlers.HandleLadderRoleAddRequested)
	registerHandler(deps, guildevents.TopicLadderRoleRemoveRequested, handlers.HandleLadderRoleRemoveRequested)
	registerHandler(deps, guildevents.TopicChannelCheckRequested, handlers.HandleChannelCheckRequested)

	return nil
}

// Close stops the router.
func (r *GuildRouter) Close() error {
	return r.Router.Close()
}
