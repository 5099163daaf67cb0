package httpapp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HTTPApp struct {
	log    *zap.Logger
	server *http.Server
}

type Options struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func New(log *zap.Logger, opts Options, register func(mux *http.ServeMux)) *HTTPApp {
	addr := fmt.Sprintf("%s:%d", opts.Host, opts.Port)

	mux := http.NewServeMux()
	register(mux)

	server := &http.Server{
		Addr:         addr,
		Handler:      recoveryMiddleware(log, loggingMiddleware(log, mux)),
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}

	return &HTTPApp{
		log:    log,
		server: server,
	}
}

func (a *HTTPApp) Run() error {
	const op = "httpapp.Run"

	a.log.Info("HTTP server started", zap.String("addr", a.server.Addr))

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *HTTPApp) Stop(ctx context.Context) {
	a.log.Info("stopping HTTP server", zap.String("addr", a.server.Addr))
	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Warn("http shutdown error", zap.Error(err))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)),
		}

		if recorder.status >= http.StatusInternalServerError {
			log.Error("HTTP request failed", fields...)
			return
		}

		log.Info("HTTP request", fields...)
	})
}

func recoveryMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered", zap.Any("panic", rec), zap.String("path", r.URL.Path))
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
