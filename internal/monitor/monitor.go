// Package monitor records frame-loop metrics through the OpenTelemetry
// metric API. Without an installed meter provider every call is a no-op.
package monitor

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "orrery/internal/monitor"

// Metrics holds the frame-loop instruments.
type Metrics struct {
	frames          metric.Int64Counter
	textureFailures metric.Int64Counter
	frameTime       metric.Float64Histogram
}

// New creates the instruments on m.
func New(m metric.Meter) (*Metrics, error) {
	var (
		mt  Metrics
		err error
	)
	mt.frames, err = m.Int64Counter(
		"orrery.frames",
		metric.WithDescription("Frames rendered"),
	)
	if err != nil {
		return nil, fmt.Errorf("create frames counter: %w", err)
	}
	mt.textureFailures, err = m.Int64Counter(
		"orrery.texture.failures",
		metric.WithDescription("Textures that failed to load"),
	)
	if err != nil {
		return nil, fmt.Errorf("create texture failure counter: %w", err)
	}
	mt.frameTime, err = m.Float64Histogram(
		"orrery.frame.duration",
		metric.WithDescription("Time spent building and rendering one frame"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create frame duration histogram: %w", err)
	}
	return &mt, nil
}

// Default creates the instruments on the global meter provider.
func Default() (*Metrics, error) {
	return New(otel.Meter(instrumentationName))
}

// FrameDone records one completed frame that took d.
func (m *Metrics) FrameDone(ctx context.Context, d time.Duration) {
	if m == nil {
		return
	}
	m.frames.Add(ctx, 1)
	m.frameTime.Record(ctx, float64(d)/float64(time.Millisecond))
}

// TextureFailed records a texture load failure for body.
func (m *Metrics) TextureFailed(ctx context.Context, body string) {
	if m == nil {
		return
	}
	m.textureFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("body", body)))
}
