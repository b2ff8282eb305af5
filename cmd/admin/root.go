// Package main is the Music Minds admin console CLI. It wires the table
// engine (client, controllers, dispatcher, exports, saved views) behind
// list / act / export / views subcommands.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/client"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/config"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/domain"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/events"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/logging"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/metrics"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/views"
)

// Global flag values.
var (
	flagConfig string
	flagJSON   bool
)

// console holds the wired application shared by all subcommands.
// Populated by PersistentPreRunE.
type console struct {
	cfg    *config.Config
	logger *zerolog.Logger
	closer io.Closer
	api    *client.Client
	bus    *events.EventBus
}

var app console

var rootCmd = &cobra.Command{
	Use:          "admin",
	Short:        "Music Minds admin console",
	Long:         "Admin console for the Music Minds marketplace: list, filter, act on,\nexport and save views over the admin tables (users, bookings, reviews, ...).",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return app.init()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		app.shutdown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default: $CONFIG_PATH or configs/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(entitiesCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(actCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(viewsCmd)
}

func (a *console) init() error {
	configPath := flagConfig
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config %s: %w", configPath, err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return err
	}
	logger := baseLogger.With().Str("component", "admin-cli").Logger()

	metrics.Register()
	if cfg.Monitoring.PrometheusEnabled {
		startMetricsServer(cfg.Monitoring.PrometheusPort, &logger)
	}

	apiClient := client.New(client.Options{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.RequestTimeout(),
		RPS:     cfg.API.RateLimit.RPS,
		Burst:   cfg.API.RateLimit.Burst,
	}, &logger)

	bus := events.NewEventBus()
	subscribeAuditLog(bus, &logger)

	a.cfg = cfg
	a.logger = &logger
	a.closer = closer
	a.api = apiClient
	a.bus = bus
	return nil
}

func (a *console) shutdown() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

// viewRepository builds the saved-view store: redis primary when configured,
// in-memory fallback behind the failover wrapper. The returned cleanup closes
// the redis connection.
func (a *console) viewRepository(ctx context.Context) (domain.ViewRepository, func()) {
	var redisClient *redis.Client
	if a.cfg.Redis.Address != "" {
		redisClient = views.NewRedisClient(a.cfg.Redis.Address, a.cfg.Redis.Password, a.cfg.Redis.DB, a.cfg.Redis.PoolSize)
		if err := views.Ping(ctx, redisClient); err != nil {
			a.logger.Warn().Err(err).Msg("redis unavailable, saved views fall back to memory")
		}
	}

	repo := views.NewFailoverViewRepository(
		views.NewRedisViewRepository(redisClient),
		views.NewMemoryViewRepository(),
		a.logger,
	)
	return repo, func() { _ = views.Close(redisClient) }
}

func startMetricsServer(port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		addr := fmt.Sprintf(":%d", port)
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("metrics server error")
		}
	}()
}

// subscribeAuditLog mirrors every engine event into the structured log so
// operator actions leave a trail.
func subscribeAuditLog(bus *events.EventBus, logger *zerolog.Logger) {
	handler := func(ev *events.Event) error {
		logger.Info().Str("event", ev.Type).RawJSON("payload", ev.Payload).Msg("audit")
		return nil
	}
	for _, eventType := range []string{
		events.EventFetchCompleted,
		events.EventActionDispatch,
		events.EventBulkCompleted,
		events.EventExportCompleted,
		events.EventViewSaved,
	} {
		bus.Subscribe(eventType, handler)
	}
}
