// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	jaegerpropagator "go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/canonical/sbom-broker/internal/logging"
)

const tracerName = "github.com/canonical/sbom-broker"

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// NewTracer sets the global tracer provider from the config. With
// tracing disabled or no endpoint configured it degrades to a noop
// tracer.
func NewTracer(config *Config) *Tracer {
	t := new(Tracer)
	t.logger = config.Logger

	if !config.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var exporter *otlptrace.Exporter
	var err error

	switch {
	case config.OtelGRPCEndpoint != "":
		exporter, err = otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpoint(config.OtelGRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	case config.OtelHTTPEndpoint != "":
		exporter, err = otlptracehttp.New(
			ctx,
			otlptracehttp.WithEndpoint(config.OtelHTTPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	default:
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	if err != nil {
		config.Logger.Errorf("failed to create otlp exporter: %v", err)
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(
			resource.NewSchemaless(
				attribute.String("service.name", "sbom-broker"),
			),
		),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
			jaegerpropagator.Jaeger{},
		),
	)

	t.tracer = provider.Tracer(tracerName)

	return t
}

// NewNoopTracer returns a tracer that records nothing.
func NewNoopTracer() *Tracer {
	t := new(Tracer)
	t.tracer = noop.NewTracerProvider().Tracer(tracerName)
	return t
}
