package mocks

import (
	"agency/infras/otel"
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// noopOtel hands out real scopes over non-recording spans, so instrumented code runs unchanged in tests.
type noopOtel struct {
	tracer trace.Tracer
}

func (o noopOtel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	ctx, span := o.tracer.Start(ctx, spanName)

	return ctx, otel.NewScope(span)
}

func (o noopOtel) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return noopOtel{tracer: noop.NewTracerProvider().Tracer("test")}
}
