// Package telemetry provides optional OpenTelemetry tracing and metrics for
// statuspush. Disabled providers are no-ops so the hot path never branches on
// configuration.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

// Config controls the telemetry provider.
type Config struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string
	OTLPHeaders    map[string]string
	SampleRate     float64
}

// Provider wraps a tracer and meter plus the push-level instruments.
type Provider struct {
	config        *Config
	tracer        trace.Tracer
	meter         metric.Meter
	traceProvider *sdktrace.TracerProvider

	pushesSent   metric.Int64Counter
	pushesFailed metric.Int64Counter
	pushDuration metric.Float64Histogram
}

// NewProvider creates a telemetry provider. A nil or disabled config yields a
// no-op provider backed by the global (default no-op) tracer and meter.
func NewProvider(cfg *Config) (*Provider, error) {
	if cfg == nil {
		cfg = &Config{
			ServiceName:    "statuspush",
			ServiceVersion: "1.0.0",
			Environment:    "development",
			OTLPEndpoint:   "localhost:4318",
			SampleRate:     1.0,
		}
	}

	tp := &Provider{config: cfg}
	if !cfg.Enabled {
		tp.tracer = otel.Tracer("statuspush")
		tp.meter = otel.Meter("statuspush")
		return tp, nil
	}

	if err := tp.initTracing(); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	if err := tp.initMetrics(); err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}
	return tp, nil
}

func (tp *Provider) initTracing() error {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(tp.config.ServiceName),
			semconv.ServiceVersion(tp.config.ServiceVersion),
			semconv.DeploymentEnvironment(tp.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("create resource: %w", err)
	}

	exporter, err := otlptrace.New(context.Background(),
		otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(tp.config.OTLPEndpoint),
			otlptracehttp.WithHeaders(tp.config.OTLPHeaders),
		),
	)
	if err != nil {
		return fmt.Errorf("create exporter: %w", err)
	}

	tp.traceProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(tp.config.SampleRate)),
	)

	otel.SetTracerProvider(tp.traceProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	tp.tracer = otel.Tracer("statuspush",
		trace.WithSchemaURL(semconv.SchemaURL),
	)
	return nil
}

func (tp *Provider) initMetrics() error {
	tp.meter = otel.Meter("statuspush",
		metric.WithSchemaURL(semconv.SchemaURL),
	)

	var err error
	tp.pushesSent, err = tp.meter.Int64Counter(
		"statuspush_pushes_sent_total",
		metric.WithDescription("Total number of notifications delivered"),
	)
	if err != nil {
		return fmt.Errorf("create pushes_sent counter: %w", err)
	}

	tp.pushesFailed, err = tp.meter.Int64Counter(
		"statuspush_pushes_failed_total",
		metric.WithDescription("Total number of notifications that failed"),
	)
	if err != nil {
		return fmt.Errorf("create pushes_failed counter: %w", err)
	}

	tp.pushDuration, err = tp.meter.Float64Histogram(
		"statuspush_push_duration_seconds",
		metric.WithDescription("Duration of push operations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("create push_duration histogram: %w", err)
	}
	return nil
}

// TracePush starts a span around one push operation.
func (tp *Provider) TracePush(ctx context.Context, platform string) (context.Context, trace.Span) {
	if tp.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tp.tracer.Start(ctx, "statuspush.push",
		trace.WithAttributes(
			attribute.String("statuspush.platform", platform),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

// RecordPushSent records one successful delivery.
func (tp *Provider) RecordPushSent(ctx context.Context, platform string, duration time.Duration) {
	if tp.pushesSent != nil {
		tp.pushesSent.Add(ctx, 1, metric.WithAttributes(
			attribute.String("platform", platform),
			attribute.String("status", "success"),
		))
	}
	if tp.pushDuration != nil {
		tp.pushDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
			attribute.String("platform", platform),
			attribute.String("status", "success"),
		))
	}
}

// RecordPushFailed records one failed delivery.
func (tp *Provider) RecordPushFailed(ctx context.Context, platform string, duration time.Duration, errorType string) {
	if tp.pushesFailed != nil {
		tp.pushesFailed.Add(ctx, 1, metric.WithAttributes(
			attribute.String("platform", platform),
			attribute.String("error_type", errorType),
		))
	}
	if tp.pushDuration != nil {
		tp.pushDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
			attribute.String("platform", platform),
			attribute.String("status", "error"),
		))
	}
}

// SetSpanError records err on the span and marks it failed.
func (tp *Provider) SetSpanError(span trace.Span, err error) {
	if span != nil && err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// SetSpanSuccess marks the span as successful.
func (tp *Provider) SetSpanSuccess(span trace.Span) {
	if span != nil {
		span.SetStatus(codes.Ok, "")
	}
}

// Shutdown flushes and stops the trace provider.
func (tp *Provider) Shutdown(ctx context.Context) error {
	if tp.traceProvider != nil {
		return tp.traceProvider.Shutdown(ctx)
	}
	return nil
}
