package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// NewPrometheusProvider returns an OTel MeterProvider whose instruments are
// exposed through reg. Pass the provider's Meter to pipeline.WithMeter and
// scrape or Gather reg to read the stage counters.
func NewPrometheusProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exporter, err := promexporter.New(
		promexporter.WithRegisterer(reg),
	)
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)), nil
}
