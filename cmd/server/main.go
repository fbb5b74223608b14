// Package main is the entry point for the flight search console.
//
//	@title						Flight Search Console API
//	@version					1.0.0
//	@description				Server-rendered flight search console and its JSON API. Each search is a single GET against a remote endpoint; results are normalized so the stopover column reads Yes or No.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-search-console/docs"

	// Application layers
	flighthttp "github.com/flight-search/flight-search-console/internal/adapter/http"
	"github.com/flight-search/flight-search-console/internal/adapter/http/middleware"
	"github.com/flight-search/flight-search-console/internal/adapter/searchapi"
	"github.com/flight-search/flight-search-console/internal/config"
	"github.com/flight-search/flight-search-console/internal/infrastructure/logger"
	"github.com/flight-search/flight-search-console/internal/infrastructure/metrics"
	"github.com/flight-search/flight-search-console/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Logging)
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("endpoint", cfg.Search.Endpoint).
		Str("variant", cfg.Search.Variant).
		Str("timezone", cfg.Location().String()).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	renderer, err := flighthttp.NewTemplateRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load templates")
	}
	e.Renderer = renderer

	middleware.Setup(e, log.Logger, m)

	sessions := setupRoutes(e, cfg, log.Logger, m)
	go sessions.Run(ctx, cfg.Session.SweepInterval)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	gracefulShutdown(e, log)
}

// setupRoutes wires the search client, use case and session store into the
// handler and registers every route. It returns the session store so main
// can run its sweeper.
func setupRoutes(e *echo.Echo, cfg *config.Config, log zerolog.Logger, m *metrics.Metrics) *usecase.SessionStore {
	client := searchapi.NewClient(searchapi.Config{
		Endpoint: cfg.Search.Endpoint,
		Timeout:  cfg.Search.Timeout,
		Metrics:  m,
		Logger:   log,
	})

	flightUseCase := usecase.NewFlightSearchUseCase(client, &usecase.Config{
		Variant:     cfg.Variant(),
		Location:    cfg.Location(),
		MaxAttempts: cfg.Search.MaxAttempts,
		Logger:      &log,
	})

	sessions := usecase.NewSessionStore(flightUseCase, usecase.SessionStoreConfig{
		IdleTTL:      cfg.Session.IdleTTL,
		Logger:       log.With().Str("component", "sessions").Logger(),
		OnSizeChange: m.SetSessions,
	})

	handler := flighthttp.NewConsoleHandler(flightUseCase, sessions, flighthttp.HandlerConfig{
		Location:     cfg.Location(),
		CookieName:   cfg.Session.CookieName,
		SecureCookie: cfg.IsProduction(),
	})
	flighthttp.RegisterRoutes(e, handler)

	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return sessions
}

// gracefulShutdown drains in-flight requests before exiting.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
