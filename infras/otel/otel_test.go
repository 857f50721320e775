package otel_test

import (
	"agency/infras/otel"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	o := otel.NewWithProvider(provider)

	_, scope := o.NewScope(context.Background(), "service", "service.Book")
	scope.SetAttributes(map[string]any{
		"booking.id": "BOOK-1",
		"slots":      3,
		"cancelled":  false,
	})
	scope.AddEvent("slot.locked")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("slot taken"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "service.Book", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "slot taken", span.Status().Description)
	assert.Len(t, span.Attributes(), 3)
	require.Len(t, span.Events(), 2)
	assert.Equal(t, "slot.locked", span.Events()[0].Name)

	require.NoError(t, o.Shutdown(context.Background()))
}

func TestAttribute(t *testing.T) {
	at := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "string", value: "BOOK-1", want: attribute.StringValue("BOOK-1")},
		{name: "int", value: 3, want: attribute.IntValue(3)},
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "time", value: at, want: attribute.StringValue("2025-03-10T10:00:00Z")},
		{name: "duration", value: 90 * time.Second, want: attribute.StringValue("1m30s")},
		{name: "ints", value: []int{1, 2}, want: attribute.IntSliceValue([]int{1, 2})},
		{name: "fallback", value: struct{ N int }{7}, want: attribute.StringValue("{7}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := otel.Attribute("key", tt.value)

			assert.Equal(t, attribute.Key("key"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}
