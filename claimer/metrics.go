package claimer

import (
	"context"

	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/agglayer/aggsandbox/claimer"

type metrics struct {
	submitted metric.Int64Counter
	outcomes  metric.Int64Counter
}

func newMetrics(logger *log.Logger) *metrics {
	meter := otel.Meter(meterName)
	m := &metrics{}
	var err error
	if m.submitted, err = meter.Int64Counter("claim_txs_submitted"); err != nil {
		logger.Warnf("failed to create claim_txs_submitted counter: %s", err)
	}
	if m.outcomes, err = meter.Int64Counter("claim_outcomes"); err != nil {
		logger.Warnf("failed to create claim_outcomes counter: %s", err)
	}

	return m
}

func (m *metrics) txSubmitted(ctx context.Context, method string, replacement bool) {
	if m.submitted == nil {
		return
	}
	m.submitted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.Bool("replacement", replacement),
	))
}

func (m *metrics) outcome(ctx context.Context, method, outcome string) {
	if m.outcomes == nil {
		return
	}
	m.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("outcome", outcome),
	))
}

func (m *metrics) failure(ctx context.Context, method string, kind types.ErrorKind) {
	m.outcome(ctx, method, kind.String())
}
