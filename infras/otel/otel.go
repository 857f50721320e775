package otel

import (
	"agency/config"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc/credentials/insecure"
)

// Otel opens spans for handlers, services and repositories.
type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
	Shutdown(ctx context.Context) error
}

type provider struct {
	tp *sdktrace.TracerProvider
}

func (p *provider) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := p.tp.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// Shutdown flushes pending spans.
func (p *provider) Shutdown(ctx context.Context) error {
	if err := p.tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}

	return nil
}

func serviceResource(cfg *config.Config) *resource.Resource {
	attrs := []attribute.KeyValue{semconv.ServiceNameKey.String(cfg.App.Name)}
	if cfg.Server.Env != "" {
		attrs = append(attrs, semconv.DeploymentEnvironmentKey.String(cfg.Server.Env))
	}

	return resource.NewWithAttributes(semconv.SchemaURL, attrs...)
}

// New builds the tracer provider. Without an endpoint spans are still created but never exported.
func New(cfg *config.Config) Otel {
	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(serviceResource(cfg))}

	endpoint := cfg.External.Otel.Endpoint
	if endpoint == "" {
		log.Warn().Msg("OTEL endpoint not configured, traces will not be exported")

		return NewWithProvider(sdktrace.NewTracerProvider(opts...))
	}

	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatal().Err(err).Str("endpoint", endpoint).Msg("Failed to create OTLP exporter")
	}

	log.Info().Str("endpoint", endpoint).Msg("Exporting traces over OTLP")

	return NewWithProvider(sdktrace.NewTracerProvider(append(opts, sdktrace.WithBatcher(exporter))...))
}

// NewWithProvider wraps an existing tracer provider and registers it globally.
func NewWithProvider(tp *sdktrace.TracerProvider) Otel {
	otel.SetTracerProvider(tp)

	return &provider{tp: tp}
}
