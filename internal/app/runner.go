package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"serviceability-relay/internal/config"
	"serviceability-relay/internal/http/pprofserver"
	"serviceability-relay/internal/logx"
)

// MustRun starts the HTTP server using the provided DI container
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(server *http.Server, ctx context.Context, cfg *config.Config, logger logx.Logger) error {
		debug := startDebugServer(cfg, logger)
		startServer(server, logger)
		waitForShutdown(ctx, logger)
		gracefulShutdown(server, logger, 15*time.Second)
		closeResources(server, debug, logger)
		return nil
	})
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("serviceability relay listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

func startDebugServer(cfg *config.Config, logger logx.Logger) *http.Server {
	if cfg.Pprof.Port == 0 {
		return nil
	}
	debug := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Pprof.Port),
		Handler: pprofserver.Handler(pprofserver.Guard{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass}),
	}
	go func() {
		logger.Info("pprof listening", logx.String("addr", debug.Addr))
		if err := debug.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("pprof listen error", logx.Any("err", err))
		}
	}()
	return debug
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down serviceability relay")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Any("err", err))
	}
}

func closeResources(srv *http.Server, debug *http.Server, logger logx.Logger) {
	if debug != nil {
		if err := debug.Close(); err != nil {
			logger.Error("pprof server close error", logx.Any("err", err))
		}
	}
	if err := srv.Close(); err != nil {
		logger.Error("server close error", logx.Any("err", err))
	}
}
