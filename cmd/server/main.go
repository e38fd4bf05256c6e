package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/jackc/pgx/v5/stdlib"

	"freight-quote-service/internal/adapters/cache"
	"freight-quote-service/internal/adapters/routing"
	"freight-quote-service/internal/api"
	"freight-quote-service/internal/config"
	"freight-quote-service/internal/platform/db"
	"freight-quote-service/internal/refdata"
)

// main is the application composition root. It wires concrete adapters
// (Postgres route cache, ORS routing) behind ports, loads the static
// reference tables, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger := newLogger(cfg)

	if strings.TrimSpace(cfg.ORSAPIKey) == "" {
		logger.Fatal().Msg("FREIGHT_ORS_API_KEY is required")
	}

	tables, err := refdata.Load(cfg.TablesPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load reference tables")
	}
	logger.Info().
		Int("trailers", len(tables.Trailers)).
		Int("fee_schedules", len(tables.Pricing.Fees)).
		Int("boundaries", len(tables.Boundaries)).
		Str("tables_path", cfg.TablesPath).
		Msg("reference tables loaded")

	// The route cache is optional: without a database the provider calls
	// ORS on every quote.
	var routeCache *cache.SQLRouteCache
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("open database")
		}
		defer conn.Close()

		if err := cache.InitSchema(conn); err != nil {
			logger.Fatal().Err(err).Msg("init route cache schema")
		}
		routeCache = cache.NewSQLRouteCache(conn)
	} else {
		logger.Warn().Msg("FREIGHT_DATABASE_URL not set; route caching disabled")
	}

	provider, err := routing.NewORSRouteProvider(cfg.ORSAPIKey, routeCache)
	if err != nil {
		logger.Fatal().Err(err).Msg("create route provider")
	}

	router := api.NewRouter(tables, provider, logger)

	// Timeouts are tuned for cold-cache quoting (external API latency).
	logger.Info().Str("port", cfg.Port).Msg("server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logger.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogPretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
