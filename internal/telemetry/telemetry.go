package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Config selects the exporters. The zero value disables telemetry.
type Config struct {
	ServiceName    string `mapstructure:"service_name" json:"service_name"`
	ServiceVersion string `mapstructure:"service_version" json:"service_version"`
	// OTLPEndpoint is a host:port of an OTLP gRPC collector, e.g. otel-collector:4317.
	OTLPEndpoint string `mapstructure:"otlp_endpoint" json:"otlp_endpoint"`
	StdoutTraces bool   `mapstructure:"stdout_traces" json:"stdout_traces"`
	// TraceWriter receives stdout traces; defaults to os.Stderr.
	TraceWriter io.Writer `mapstructure:"-" json:"-"`
}

// Enabled reports whether any exporter is configured.
func (c Config) Enabled() bool {
	return c.StdoutTraces || c.OTLPEndpoint != ""
}

// Shutdown flushes and stops the providers set up by InitOtel.
type Shutdown func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// InitOtel installs global trace, metric and log providers for cfg. With no
// exporter configured the global no-op providers stay in place.
func InitOtel(ctx context.Context, cfg Config) (Shutdown, error) {
	if !cfg.Enabled() {
		return noopShutdown, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "tictactoe-ai"
	}
	if cfg.ServiceVersion == "" {
		cfg.ServiceVersion = "v0.1.0"
	}

	// --- Create shared resource ---
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	var (
		conn     *grpc.ClientConn
		shutdown []func(context.Context) error
	)
	// cleanup undoes everything created so far when a later step fails.
	cleanup := func() {
		for i := len(shutdown) - 1; i >= 0; i-- {
			_ = shutdown[i](context.Background())
		}
	}

	if cfg.OTLPEndpoint != "" {
		conn, err = grpc.NewClient(cfg.OTLPEndpoint,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create gRPC connection to OTLP collector: %w", err)
		}
		shutdown = append(shutdown, func(context.Context) error { return conn.Close() })
	}

	// --- Setup Traces ---
	traceOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if cfg.StdoutTraces {
		w := cfg.TraceWriter
		if w == nil {
			w = os.Stderr
		}
		stdoutTraceExporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
		}
		traceOpts = append(traceOpts, sdktrace.WithBatcher(stdoutTraceExporter))
	}
	if conn != nil {
		otlpTraceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
		}
		traceOpts = append(traceOpts, sdktrace.WithBatcher(otlpTraceExporter))
	}
	tp := sdktrace.NewTracerProvider(traceOpts...)
	otel.SetTracerProvider(tp)
	shutdown = append(shutdown, tp.Shutdown)

	// --- Setup Metrics and Logs ---
	if conn != nil {
		otlpMetricExporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
		}
		mp := metric.NewMeterProvider(
			metric.WithReader(metric.NewPeriodicReader(otlpMetricExporter)),
			metric.WithResource(res),
		)
		otel.SetMeterProvider(mp)
		shutdown = append(shutdown, mp.Shutdown)

		otlpLogExporter, err := otlploggrpc.New(ctx, otlploggrpc.WithGRPCConn(conn))
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
		}
		lp := sdklog.NewLoggerProvider(
			sdklog.WithProcessor(sdklog.NewBatchProcessor(otlpLogExporter)),
			sdklog.WithResource(res),
		)
		global.SetLoggerProvider(lp)
		shutdown = append(shutdown, lp.Shutdown)
	}

	// --- Set Propagators ---
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	// --- Shutdown function ---
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		// Providers flush before the connection they export through closes.
		var errs []error
		for i := len(shutdown) - 1; i >= 0; i-- {
			if err := shutdown[i](ctx); err != nil {
				errs = append(errs, err)
			}
		}
		if err := errors.Join(errs...); err != nil {
			return fmt.Errorf("failed to shutdown telemetry: %w", err)
		}
		return nil
	}, nil
}
