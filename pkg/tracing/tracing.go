// Package tracing wires the Jaeger tracer used across the service.
package tracing

import (
	"fmt"

	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go/config"
	"github.com/uber/jaeger-lib/metrics"
	"go.uber.org/zap"
)

// NewTracer creates a new Jaeger tracer reporting to the given agent,
// logging through the provided zap logger.
func NewTracer(serviceName, jaegerHost, jaegerPort string, logger *zap.Logger) (opentracing.Tracer, error) {
	cfg := &config.Configuration{
		ServiceName: serviceName,
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			LogSpans:           true,
			LocalAgentHostPort: fmt.Sprintf("%s:%s", jaegerHost, jaegerPort),
		},
	}

	jaegerLogger := &jaegerLoggerAdapter{logger: logger}
	metricsFactory := metrics.NullFactory

	tracer, closer, err := cfg.NewTracer(
		config.Logger(jaegerLogger),
		config.Metrics(metricsFactory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Jaeger tracer: %w", err)
	}

	// The tracer outlives the process; the closer flushes on exit.
	_ = closer

	return tracer, nil
}

// jaegerLoggerAdapter adapts zap logger to Jaeger logger interface.
type jaegerLoggerAdapter struct {
	logger *zap.Logger
}

func (l *jaegerLoggerAdapter) Error(msg string) {
	l.logger.Error(msg)
}

func (l *jaegerLoggerAdapter) Infof(msg string, args ...interface{}) {
	l.logger.Sugar().Infof(msg, args...)
}
