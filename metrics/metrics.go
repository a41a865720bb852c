package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	ReasonMissing     = "missing"
	ReasonUnreadable  = "unreadable"
	ReasonMalformed   = "malformed"
	ReasonInvalidIP   = "invalid_ip_address"
	ReasonInvalidPort = "invalid_port"

	scope = "github.com/agentsmithers/mcp-server-config"
)

// Metrics counts the recoveries that the config store performs silently.
type Metrics struct {
	loadFallbacks metric.Int64Counter
	saveFailures  metric.Int64Counter
	saves         metric.Int64Counter
}

func New(provider metric.MeterProvider) (*Metrics, error) {
	meter := provider.Meter(scope)

	loadFallbacks, err := meter.Int64Counter("mcp_config_load_fallbacks",
		metric.WithDescription("Count of configuration values replaced by defaults on load"),
	)
	if err != nil {
		return nil, err
	}

	saveFailures, err := meter.Int64Counter("mcp_config_save_failures",
		metric.WithDescription("Count of configuration writes that failed"),
	)
	if err != nil {
		return nil, err
	}

	saves, err := meter.Int64Counter("mcp_config_saves",
		metric.WithDescription("Count of configuration writes that succeeded"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		loadFallbacks: loadFallbacks,
		saveFailures:  saveFailures,
		saves:         saves,
	}, nil
}

// Noop returns metrics that record nothing.
func Noop() *Metrics {
	m, _ := New(noop.NewMeterProvider())
	return m
}

func (m *Metrics) LoadFallback(reason string) {
	m.loadFallbacks.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("reason", reason)),
	)
}

func (m *Metrics) SaveFailure() {
	m.saveFailures.Add(context.Background(), 1)
}

func (m *Metrics) Saved() {
	m.saves.Add(context.Background(), 1)
}
