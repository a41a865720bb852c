package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Exporter bridges the otel meter provider into a dedicated prometheus
// registry, so that a short-lived process can dump its counters into a
// node-exporter textfile on exit.
type Exporter struct {
	Metrics *Metrics

	provider *sdkmetric.MeterProvider
	registry *prometheus.Registry
}

func Setup(service, version string) (*Exporter, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprom.New(
		otelprom.WithRegisterer(registry),
		otelprom.WithoutScopeInfo(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(resource.NewSchemaless(
			attribute.String("service.name", service),
			attribute.String("service.version", version),
		)),
	)

	m, err := New(provider)
	if err != nil {
		return nil, err
	}

	return &Exporter{
		Metrics:  m,
		provider: provider,
		registry: registry,
	}, nil
}

// WriteTextfile atomically writes all collected metrics in the prometheus
// text exposition format.
func (e *Exporter) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, e.registry)
}

func (e *Exporter) Shutdown(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
