package main

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/phrazzld/taskpost-api/internal/config"
)

const serviceName = "taskpost-api"

// newTracerProvider builds the SDK tracer provider and installs it, along
// with the W3C trace context propagator, as the global default. Spans are
// sampled by trace ID ratio unless the parent already decided. With tracing
// disabled nothing is sampled, but trace IDs are still generated so log
// lines can be correlated.
func newTracerProvider(cfg config.TracingConfig) *sdktrace.TracerProvider {
	sampler := sdktrace.NeverSample()
	if cfg.Enabled {
		sampler = sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sampler),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp
}
