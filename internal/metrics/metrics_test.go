package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valueOf(t *testing.T, c prometheus.Metric) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return metricValue(m)
}

func TestRecordMarketPriced(t *testing.T) {
	InitRegistry()
	before := valueOf(t, MarketsPricedTotal)

	RecordMarketPriced(1.1, 0.0002)

	assert.Equal(t, before+1, valueOf(t, MarketsPricedTotal))
	assert.InDelta(t, 1.1, valueOf(t, MarketOverround), 1e-9)
}

func TestRecordRaceSimulated(t *testing.T) {
	InitRegistry()
	before := valueOf(t, WinningTrapTotal.WithLabelValues("4"))

	RecordRaceSimulated(4)

	assert.Equal(t, before+1, valueOf(t, WinningTrapTotal.WithLabelValues("4")))
}

func TestSnapshot(t *testing.T) {
	InitRegistry()
	RecordRaceSimulated(2)
	RecordStageError("pricing", "degenerate_probability")

	snapshot, err := Snapshot()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, snapshot["greyhound_market_races_simulated_total"], 1.0)
	assert.GreaterOrEqual(t, snapshot[`greyhound_market_winning_trap_total{trap="2"}`], 1.0)
	assert.GreaterOrEqual(t, snapshot[`greyhound_market_stage_errors_total{code="degenerate_probability",stage="pricing"}`], 1.0)
}

func TestGetRegistrySingleton(t *testing.T) {
	assert.Same(t, GetRegistry(), InitRegistry())
}
