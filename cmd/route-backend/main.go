package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/comeltrans/comeltrans/httpapp"
	"github.com/comeltrans/comeltrans/internal/application/service"
	"github.com/comeltrans/comeltrans/internal/config"
	bookingclient "github.com/comeltrans/comeltrans/internal/infrastructures/booking"
	bookingpg "github.com/comeltrans/comeltrans/internal/infrastructures/db/postgres"
	sessionredis "github.com/comeltrans/comeltrans/internal/infrastructures/db/redis"
	garsclient "github.com/comeltrans/comeltrans/internal/infrastructures/gars/http/client"
	"github.com/comeltrans/comeltrans/internal/infrastructures/session"
	"github.com/comeltrans/comeltrans/internal/infrastructures/tracing"
	"github.com/comeltrans/comeltrans/internal/transport/http/handlers"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	tp, err := tracing.InitTracer("route-backend", cfg.Jaeger)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	log.Info("route-backend starting", zap.String("http_addr", fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)))

	startCtx, startCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer startCancel()

	bookingRepo, err := bookingpg.New(startCtx, cfg.DB.DSN())
	if err != nil {
		log.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer bookingRepo.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Warn("failed to close redis client", zap.Error(err))
		}
	}()

	sessionRepo := sessionredis.NewSessionRepository(redisClient)
	routeSource := garsclient.NewClient(cfg.Routes.BaseURL, cfg.Routes.Timeout)
	bookingCreator := bookingclient.NewClient(cfg.Bookings.BaseURL, cfg.Bookings.Timeout)

	searchService := service.NewSearchService(log, routeSource)
	purchaseService := service.NewPurchaseService(log, session.ContextSource{}, bookingCreator)
	bookingService := service.NewBookingService(log, sessionRepo, bookingRepo, cfg.SessionTTL)

	searchHandler := handlers.NewSearchHandler(log, searchService, cfg.HTTP.HandlerTimeout)
	purchaseHandler := handlers.NewPurchaseHandler(log, purchaseService, cfg.HTTP.HandlerTimeout)
	bookingHandler := handlers.NewBookingHandler(log, bookingService, cfg.HTTP.HandlerTimeout)

	app := httpapp.New(log, httpapp.Options{
		Host:         cfg.HTTP.Host,
		Port:         cfg.HTTP.Port,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}, func(mux *http.ServeMux) {
		mux.HandleFunc("/healthz", healthHandler)
		mux.HandleFunc("/api/v1/routes/search", searchHandler.Search)
		mux.HandleFunc("/api/v1/purchase", purchaseHandler.Purchase)
		mux.HandleFunc("/api/v1/bookings", bookingHandler.Create)
		mux.HandleFunc("/api/v1/bookings/my", bookingHandler.ListMine)
		mux.HandleFunc("/api/v1/auth/logout", bookingHandler.Logout)
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		app.Stop(shutdownCtx)
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server stopped", zap.Error(err))
		}
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
