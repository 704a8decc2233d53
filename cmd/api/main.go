package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"meccz.org/internal/app"
	"meccz.org/internal/appconf"
	"meccz.org/internal/geo"
	"meccz.org/internal/geocoding"
	"meccz.org/internal/logging"
	"meccz.org/internal/restapi"
)

func main() {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// parseConfig reads flags, each defaulting to its MECCZ_* environment variable
func parseConfig(args []string, getenv func(string) string) (appconf.Config, error) {
	var cfg appconf.Config
	var envFlag, apiKeysFlag string

	fs := flag.NewFlagSet("meccz-api", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.Port, "port", envInt(getenv, "MECCZ_PORT", 4000), "API server port")
	fs.StringVar(&envFlag, "env", envString(getenv, "MECCZ_ENV", "development"), "Environment (development|test|production)")
	fs.StringVar(&apiKeysFlag, "api-keys", envString(getenv, "MECCZ_API_KEYS", "test"), "Comma Separated API Keys (test, etc)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", envInt(getenv, "MECCZ_RATE_LIMIT", 100), "Requests per second per API key (negative disables limiting)")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", envDuration(getenv, "MECCZ_REQUEST_TIMEOUT", 10*time.Second), "Timeout for a geocoding lookup")
	fs.StringVar(&cfg.LogLevel, "log-level", envString(getenv, "MECCZ_LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.NominatimURL, "nominatim-url", envString(getenv, "MECCZ_NOMINATIM_URL", appconf.DefaultNominatimURL), "Nominatim base URL, empty disables address lookup")
	fs.StringVar(&cfg.UserAgent, "user-agent", envString(getenv, "MECCZ_USER_AGENT", appconf.DefaultUserAgent), "User-Agent sent to the geocoding service")
	fs.StringVar(&cfg.GeocodeCachePath, "geocode-cache", envString(getenv, "MECCZ_GEOCODE_CACHE", ""), "SQLite file caching geocoded addresses, empty disables the cache")

	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, fmt.Errorf("parse flags: %w", err)
	}

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	cfg.ApiKeys = appconf.ParseAPIKeys(apiKeysFlag)
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return appconf.Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

func envString(getenv func(string) string, key, def string) string {
	if v, ok := lookup(getenv, key); ok {
		return v
	}
	return def
}

func envInt(getenv func(string) string, key string, def int) int {
	if v, ok := lookup(getenv, key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(getenv func(string) string, key string, def time.Duration) time.Duration {
	if v, ok := lookup(getenv, key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func lookup(getenv func(string) string, key string) (string, bool) {
	v := getenv(key)
	return v, v != ""
}

// buildApplication wires the engine and the location resolver. The returned
// cleanup closes the geocode cache, if one was opened.
func buildApplication(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*app.Application, func() error, error) {
	cleanup := func() error { return nil }

	var geocoder geocoding.Geocoder
	if cfg.NominatimURL != "" {
		geocoder = geocoding.NewNominatimGeocoder(geocoding.NominatimConfig{
			BaseURL:   cfg.NominatimURL,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.RequestTimeout,
		}, logger)

		if cfg.GeocodeCachePath != "" {
			cache, err := geocoding.OpenSqliteCache(ctx, cfg.GeocodeCachePath, logger)
			if err != nil {
				return nil, cleanup, err
			}
			cleanup = cache.Close
			geocoder = geocoding.NewCachedGeocoder(geocoder, cache, logger)
		}
	}

	return &app.Application{
		Config:   cfg,
		Logger:   logger,
		Engine:   geo.NewKaabaEngine(),
		Resolver: geocoding.NewResolver(geocoder, logger),
	}, cleanup, nil
}

func run(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (err error) {
	application, cleanup, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer logging.HandleDeferredError(&err, cleanup, logger, "close geocode cache")

	api := restapi.NewRestAPI(application)
	defer api.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10*time.Second + cfg.RequestTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err = <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
