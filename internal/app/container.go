package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"serviceability-relay/internal/config"
	"serviceability-relay/internal/gateway/rapidshyp"
	"serviceability-relay/internal/http/handlers"
	"serviceability-relay/internal/http/router"
	"serviceability-relay/internal/logx"
	"serviceability-relay/internal/metrics"
	"serviceability-relay/internal/service/serviceability"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		logFatalf: log.Fatalf,
	}
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerGateway(container); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
	)
}

func registerGateway(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) *http.Client {
			return &http.Client{Timeout: cfg.RapidShyp.Timeout}
		},
		provideUpstreamCounter,
		func(cfg *config.Config, client *http.Client, logger logx.Logger, calls *prometheus.CounterVec) *rapidshyp.Client {
			return rapidshyp.NewClient(cfg.RapidShyp.BaseURL, cfg.RapidShyp.APIKey, client, logger, calls)
		},
	)
}

// provideUpstreamCounter registers the counter with the default registry once;
// rebuilding the container (tests) reuses the existing collector.
func provideUpstreamCounter() *prometheus.CounterVec {
	c := metrics.NewUpstreamRequestsTotal()
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return c
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(gw *rapidshyp.Client, logger logx.Logger) *serviceability.Service {
			return serviceability.NewService(gw, logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		func(cfg *config.Config, logger logx.Logger, svc *serviceability.Service) *handlers.ServiceabilityHandler {
			return handlers.NewServiceabilityHandler(logger, handlers.NewServiceabilityUsecase(svc), cfg.IsDevelopment())
		},
		router.New,
		func(cfg *config.Config, mux http.Handler) *http.Server {
			// WriteTimeout must outlast the upstream call budget, or slow
			// provider responses get cut off mid-reply.
			return &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Port),
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       15 * time.Second,
				WriteTimeout:      cfg.RapidShyp.Timeout + 5*time.Second,
				IdleTimeout:       60 * time.Second,
			}
		},
	)
}
