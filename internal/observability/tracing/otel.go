package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/credentials"

	"github.com/medeiros-dev/reseller-vault/configs"
	"github.com/medeiros-dev/reseller-vault/pkg/logger"
	"go.uber.org/zap"
)

var (
	shutdownFunc func(context.Context) error = func(ctx context.Context) error { return nil }
	Tracer       trace.Tracer

	// newExporterFunc allows overriding the exporter creation for testing
	newExporterFunc = func(ctx context.Context, cfg *configs.Config) (tracesdk.SpanExporter, error) {
		if cfg.OtelInsecure {
			return otlptracegrpc.New(ctx,
				otlptracegrpc.WithEndpoint(cfg.OtelEndpoint),
				otlptracegrpc.WithInsecure(),
			)
		}
		creds := credentials.NewClientTLSFromCert(nil, "")
		return otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.OtelEndpoint),
			otlptracegrpc.WithTLSCredentials(creds),
		)
	}
)

func InitTracer(cfg *configs.Config) (func(context.Context) error, error) {
	ctx := context.Background()

	exporter, err := newExporterFunc(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.OtelServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter),
		tracesdk.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	Tracer = otel.Tracer(cfg.OtelServiceName)

	shutdownFunc = func(shutdownCtx context.Context) error {
		return tp.Shutdown(shutdownCtx)
	}
	return shutdownFunc, nil
}

func GetTracer() trace.Tracer {
	return Tracer
}

func ShutdownTracer(ctx context.Context) {
	if err := shutdownFunc(ctx); err != nil {
		logger.L().Error("Error shutting down tracer provider", zap.Error(err))
	}
}
