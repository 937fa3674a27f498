package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/hardcore/accounting/docs"
	"github.com/hardcore/accounting/internal/config"
	"github.com/hardcore/accounting/internal/converters"
	"github.com/hardcore/accounting/internal/handlers"
	"github.com/hardcore/accounting/internal/jwt"
	"github.com/hardcore/accounting/internal/logger"
	"github.com/hardcore/accounting/internal/middlewares"
	"github.com/hardcore/accounting/internal/migrations"
	"github.com/hardcore/accounting/internal/repositories"
	"github.com/hardcore/accounting/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title accounting API
// @version 1.0.0
// @description User accounts of the accounting service
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects to PostgreSQL, Redis and optionally Kafka, applies migrations and serves HTTP
// until ctx is done or a termination signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogEncoding); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Log

	log.Infow("connecting to PostgreSQL", "host", cfg.Postgres.Host, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(cfg.Postgres.DSN()); err != nil {
		return err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect to Redis: %w", err)
	}

	var kafkaWriter services.KafkaWriter
	if cfg.Kafka.Enabled() {
		w := newKafkaWriter(cfg.Kafka)
		defer w.Close()
		kafkaWriter = w
		log.Infow("publishing user events to Kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:           newRouter(cfg, db, rdb, kafkaWriter),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// kafkaBatchTimeout bounds how long a registration waits for its event batch.
// The writer default of 1s would be added to every registration.
const kafkaBatchTimeout = 10 * time.Millisecond

// newKafkaWriter creates a synchronous writer so publish errors reach the logs.
func newKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: kafkaBatchTimeout,
	}
}

// newRouter wires repositories, services and handlers into the HTTP routes.
// kafkaWriter may be nil.
func newRouter(cfg *config.Config, db *sqlx.DB, rdb *redis.Client, kafkaWriter services.KafkaWriter) http.Handler {
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWT.SecretKey), jwt.WithExpiration(cfg.JWT.Exp))

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	userCacheRepo := repositories.NewUserCacheRepository(rdb, cfg.Redis.Exp)

	userInfoService := services.NewUserInfoService(
		userReadRepo,
		userWriteRepo,
		userCacheRepo,
		converters.NewUserInfoP2C(),
		kafkaWriter,
	)
	sessionService := services.NewSessionService(userReadRepo, tokens)

	c2s := converters.NewUserInfoC2S()

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/v1.0", func(r chi.Router) {
		r.Get("/users/{userId}", handlers.NewGetUserInfoHandler(userInfoService, c2s))
		r.With(middlewares.TxMiddleware(db)).Post("/users", handlers.NewRegisterHandler(userInfoService, c2s))

		r.Post("/session", handlers.NewLoginHandler(sessionService))
		r.With(middlewares.AuthMiddleware(tokens)).Get("/session", handlers.NewGetSessionHandler(userInfoService, c2s))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
