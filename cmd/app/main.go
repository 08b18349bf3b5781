package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres"
	redisadapter "logistics/internal/adapters/out/redis"
	"logistics/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	loadDotEnv()
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var publisher ports.OrderEventPublisher
	if configs.RedisAddr != "" {
		redisPublisher, redisErr := redisadapter.NewOrderEventPublisher(ctx,
			configs.RedisAddr, configs.RedisPassword, configs.RedisChannel)
		if redisErr != nil {
			log.Fatalf("Failed to connect to redis: %v", redisErr)
		}
		defer redisPublisher.Close()
		publisher = redisPublisher
	} else {
		logger.Warn("REDIS_ADDR is not set, order events will not be published")
	}

	app := cmd.NewCompositionRoot(configs, db, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort)
}

// loadDotEnv reads .env when present; the environment alone is enough.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:            envOr("HTTP_PORT", "8080"),
		DBHost:              envOr("DB_HOST", "localhost"),
		DBPort:              envOr("DB_PORT", "5432"),
		DBUser:              envOr("DB_USER", "postgres"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              envOr("DB_NAME", "logistics"),
		DBSslMode:           envOr("DB_SSLMODE", "disable"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisChannel:        os.Getenv("REDIS_CHANNEL"),
		DefaultCity:         envOr("DEFAULT_CITY", "Addis Ababa"),
		ShortHopThresholdKm: envFloat("ROUTER_SHORT_HOP_KM"),
		LongHaulThresholdKm: envFloat("ROUTER_LONG_HAUL_KM"),
		SnapshotRefreshSpec: os.Getenv("PRICING_SNAPSHOT_CRON"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envFloat returns 0 for unset variables so the router keeps its defaults.
func envFloat(key string) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		log.Fatalf("%s must be a non-negative number, got %q", key, raw)
	}
	return v
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	app.CreateHTTPServer().Register(e)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			e.Logger.Error(err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
