// Package app assembles the service: database, event bus, caches, external
// providers, module services, and routers.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/osu-rank-club/rankbot/app/eventbus"
	guildservice "github.com/osu-rank-club/rankbot/app/modules/guild/application"
	guildrouter "github.com/osu-rank-club/rankbot/app/modules/guild/infrastructure/router"
	playerservice "github.com/osu-rank-club/rankbot/app/modules/player/application"
	playerrouter "github.com/osu-rank-club/rankbot/app/modules/player/infrastructure/router"
	rankservice "github.com/osu-rank-club/rankbot/app/modules/rank/application"
	rankdomain "github.com/osu-rank-club/rankbot/app/modules/rank/domain"
	rankrouter "github.com/osu-rank-club/rankbot/app/modules/rank/infrastructure/router"
	"github.com/osu-rank-club/rankbot/app/shared/guildtypes"
	"github.com/osu-rank-club/rankbot/config"
	"github.com/osu-rank-club/rankbot/db/bundb"
	"github.com/osu-rank-club/rankbot/internal/cache"
	"github.com/osu-rank-club/rankbot/internal/observability"
	"github.com/osu-rank-club/rankbot/internal/osuapi"
)

// App owns every long-lived component and shuts them down in reverse order.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	GuildService  guildservice.Service
	PlayerService playerservice.Service
	RankService   rankservice.Service

	Router *message.Router

	db            *bundb.DBService
	bus           eventbus.EventBus
	redisClient   redis.UniversalClient
	metricsServer *http.Server
}

// NewApp wires the application from configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := observability.NewLogger(cfg.Observability.Environment)
	tracer := otel.Tracer("rankbot")

	registry := prometheus.NewRegistry()
	guildMetrics := observability.NewPrometheusMetrics(registry, "guild")
	playerMetrics := observability.NewPrometheusMetrics(registry, "player")
	rankMetrics := observability.NewPrometheusMetrics(registry, "rank")

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		dbService.Close()
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}
	if err := eventbus.InitializeStreams(ctx, bus); err != nil {
		bus.Close()
		dbService.Close()
		return nil, err
	}

	a := &App{
		Config: cfg,
		Logger: logger,
		db:     dbService,
		bus:    bus,
	}

	configCache, profileCache, countsCache := a.buildCaches(cfg, logger)

	osuClient := osuapi.NewClient(ctx, osuapi.ClientConfig{
		ClientID:          cfg.Osu.ClientID,
		ClientSecret:      cfg.Osu.ClientSecret,
		BaseURL:           cfg.Osu.APIBaseURL,
		TokenURL:          cfg.Osu.TokenURL,
		RequestsPerSecond: 1,
	})
	counters := map[rankdomain.Regime]osuapi.RankCountProvider{
		rankdomain.RegimeStandard: osuapi.NewStatsClient(cfg.Sources.StatsBaseURL, 1),
		rankdomain.RegimeDelta:    osuapi.NewDeltaClient(cfg.Sources.DeltaBaseURL, 1),
	}

	db := dbService.GetDB()
	a.GuildService = guildservice.NewGuildService(db, dbService.GuildDB, configCache, logger, guildMetrics, tracer)
	a.PlayerService = playerservice.NewPlayerService(db, dbService.PlayerDB, dbService.GuildDB, osuClient, profileCache, logger, playerMetrics, tracer)
	a.RankService = rankservice.NewRankService(db, dbService.RankDB, dbService.PlayerDB, dbService.GuildDB, osuClient, counters, profileCache, countsCache, logger, rankMetrics, tracer)

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		bus.Close()
		dbService.Close()
		return nil, fmt.Errorf("failed to create router: %w", err)
	}
	a.Router = router
	router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)

	gr := guildrouter.NewGuildRouter(logger, router, bus, tracer)
	if err := gr.Configure(ctx, a.GuildService); err != nil {
		bus.Close()
		dbService.Close()
		return nil, fmt.Errorf("failed to configure guild router: %w", err)
	}
	pr := playerrouter.NewPlayerRouter(logger, router, bus, tracer)
	if err := pr.Configure(ctx, a.PlayerService); err != nil {
		bus.Close()
		dbService.Close()
		return nil, fmt.Errorf("failed to configure player router: %w", err)
	}
	rr := rankrouter.NewRankRouter(logger, router, bus, tracer)
	if err := rr.Configure(ctx, a.RankService); err != nil {
		bus.Close()
		dbService.Close()
		return nil, fmt.Errorf("failed to configure rank router: %w", err)
	}

	if cfg.Observability.MetricsAddress != "" {
		a.metricsServer = newMetricsServer(cfg.Observability.MetricsAddress, registry)
	}

	return a, nil
}

// buildCaches picks the cache backend: redis when configured, process memory
// otherwise.
func (a *App) buildCaches(cfg *config.Config, logger *slog.Logger) (
	cache.Store[guildtypes.GuildConfig],
	cache.Store[osuapi.Profile],
	cache.Store[int],
) {
	if cfg.Redis.Address != "" {
		a.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return cache.NewRedisStore[guildtypes.GuildConfig](a.redisClient, "guild-config", cfg.Cache.ConfigTTL, logger),
			cache.NewRedisStore[osuapi.Profile](a.redisClient, "osu-profile", cfg.Cache.ProfileTTL, logger),
			cache.NewRedisStore[int](a.redisClient, "rank-counts", cfg.Cache.CountsTTL, logger)
	}

	clock := clockwork.NewRealClock()
	return cache.NewMemoryStore[guildtypes.GuildConfig](cfg.Cache.ConfigTTL, clock),
		cache.NewMemoryStore[osuapi.Profile](cfg.Cache.ProfileTTL, clock),
		cache.NewMemoryStore[int](cfg.Cache.CountsTTL, clock)
}

func newMetricsServer(address string, registry *prometheus.Registry) *http.Server {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return &http.Server{
		Addr:              address,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run starts the router and the metrics server and blocks until ctx is
// canceled or the router stops.
func (a *App) Run(ctx context.Context) error {
	if a.metricsServer != nil {
		go func() {
			a.Logger.Info("Metrics server listening", slog.String("address", a.metricsServer.Addr))
			if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				a.Logger.Error("Metrics server failed", slog.Any("error", err))
			}
		}()
	}
	return a.Router.Run(ctx)
}

// Close shuts the application down.
func (a *App) Close() {
	if a.Router != nil {
		if err := a.Router.Close(); err != nil {
			a.Logger.Error("Error closing router", slog.Any("error", err))
		}
	}
	if a.metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Error("Error shutting down metrics server", slog.Any("error", err))
		}
	}
	if a.bus != nil {
		if err := a.bus.Close(); err != nil {
			a.Logger.Error("Error closing event bus", slog.Any("error", err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.Logger.Error("Error closing redis client", slog.Any("error", err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.Logger.Error("Error closing database", slog.Any("error", err))
		}
	}
}
