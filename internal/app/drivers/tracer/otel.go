package tracer

import (
	"context"
	"log"
	"padel-service/internal/app/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// NewTracerProvider installs the global tracer provider and returns its
// shutdown function. Without a collector endpoint only context propagation
// is configured and spans stay no-op.
func NewTracerProvider(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) func(context.Context) error {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	endpoint := driverConfig.Tracing.Endpoint
	if endpoint == "" {
		log.Println("Tracing disabled, no OTLP endpoint configured")
		return func(context.Context) error { return nil }
	}

	conn, err := grpc.Dial(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to dial OTLP collector: %s", err.Error())
	}
	exporter, err := otlptracegrpc.New(context.Background(), otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		log.Fatalf("Failed to create OTLP exporter: %s", err.Error())
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(driverConfig.Tracing.ServiceName),
			semconv.ServiceVersionKey.String(internalConfig.App.Version),
			semconv.DeploymentEnvironmentKey.String(internalConfig.App.Env),
		),
	)
	if err != nil {
		log.Printf("Failed to build tracing resource: %s", err.Error())
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	log.Println("Successfully initialized tracer provider")

	return tp.Shutdown
}
