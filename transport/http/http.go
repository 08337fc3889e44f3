package http

import (
	"context"
	"corais/config"
	_ "corais/docs" // swagger spec
	"corais/infras/kafka"
	"corais/infras/otel"
	"corais/infras/postgres"
	"corais/shared/constant"
	"corais/transport/http/middleware"
	"corais/transport/http/response"
	"corais/transport/http/router"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	healthTimeout     = 2 * time.Second
)

// Drainer finishes background work that still needs the infrastructure clients.
type Drainer interface {
	Drain(ctx context.Context) error
}

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	DB         *postgres.Connection
	Redis      *goRedis.Client
	Kafka      kafka.Client
	Background Drainer
	Otel       otel.Otel

	state   atomic.Int32
	once    sync.Once
	handler http.Handler
	server  *http.Server
	stopped chan struct{}
}

func New(
	cfg *config.Config,
	r router.Router,
	mw middleware.AppMiddleware,
	db *postgres.Connection,
	redis *goRedis.Client,
	kafkaClient kafka.Client,
	background Drainer,
	ot otel.Otel,
) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
		DB:         db,
		Redis:      redis,
		Kafka:      kafkaClient,
		Background: background,
		Otel:       ot,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) Serve() {
	h.setup()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.stopped = make(chan struct{})
	h.setupGracefulShutdown()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.stopped
}

// ServeHTTP lets the service run behind another server, as on serverless hosts.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.handler.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.handler = h.setupRoutes()
		h.state.Store(int32(ServerStateReady))
	})
}

func (h *HTTP) setupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(h.Middleware.RequestID)
	r.Use(h.Middleware.Tracing)
	r.Use(h.Middleware.Recover)

	if h.Config.App.CORS.Enable {
		r.Use(h.setupCORS())
	}

	r.Get("/health", h.health)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(api chi.Router) {
		api.Use(h.Middleware.RateLimit())
		h.Router.SetupRoutes(api)
	})

	return r
}

func (h *HTTP) setupCORS() func(http.Handler) http.Handler {
	c := h.Config.App.CORS

	return cors.Handler(cors.Options{
		AllowedOrigins:   c.AllowedOrigins,
		AllowedMethods:   c.AllowedMethods,
		AllowedHeaders:   c.AllowedHeaders,
		AllowCredentials: c.AllowCredentials,
		MaxAge:           c.MaxAgeSeconds,
	})
}

func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	switch h.State() {
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)

		return
	case ServerStateReady:
	default:
		response.WithUnhealthy(w)

		return
	}

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := h.DB.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("health check failed")
			response.WithUnhealthy(w)

			return
		}
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer close(h.stopped)

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
	} else {
		log.Info().Msg("Received SIGTERM.")
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.state.Store(int32(ServerStateInGracePeriod))

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server did not drain in time")
	}

	h.cleanup(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) cleanup(ctx context.Context) {
	if h.Background != nil {
		if err := h.Background.Drain(ctx); err != nil {
			log.Warn().Err(err).Msg("background work did not finish before cleanup")
		}
	}

	if h.Kafka != nil {
		if err := h.Kafka.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close kafka client")
		}
	}

	if h.Redis != nil {
		if err := h.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}

	if h.DB != nil {
		h.DB.Close()
	}

	if h.Otel != nil {
		if err := h.Otel.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to flush traces")
		}
	}
}
