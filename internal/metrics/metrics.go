// Package metrics provides the Prometheus metrics registry for the market simulator.
package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	MarketsPricedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "greyhound_market",
		Name:      "markets_priced_total",
		Help:      "Total number of markets priced",
	})
	RacesSimulatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "greyhound_market",
		Name:      "races_simulated_total",
		Help:      "Total number of races simulated",
	})
	StageErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "greyhound_market",
		Name:      "stage_errors_total",
		Help:      "Total number of pipeline failures by stage and error code",
	}, []string{"stage", "code"})
	WinningTrapTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "greyhound_market",
		Name:      "winning_trap_total",
		Help:      "Simulated wins by trap number",
	}, []string{"trap"})
)

// Gauge metrics
var (
	MarketOverround = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "greyhound_market",
		Name:      "market_overround",
		Help:      "Total implied probability of the last priced win book",
	})
)

// Histogram metrics
var (
	PricingDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "greyhound_market",
		Name:      "pricing_duration_seconds",
		Help:      "Duration of win, forecast and tricast pricing in seconds",
		Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(MarketsPricedTotal)
		registry.MustRegister(RacesSimulatedTotal)
		registry.MustRegister(StageErrorsTotal)
		registry.MustRegister(WinningTrapTotal)

		registry.MustRegister(MarketOverround)

		registry.MustRegister(PricingDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	return InitRegistry()
}

// RecordMarketPriced records a priced market.
func RecordMarketPriced(overround, durationSeconds float64) {
	MarketsPricedTotal.Inc()
	MarketOverround.Set(overround)
	PricingDuration.Observe(durationSeconds)
}

// RecordRaceSimulated records a simulated race and its winning trap.
func RecordRaceSimulated(winningTrap int) {
	RacesSimulatedTotal.Inc()
	WinningTrapTotal.WithLabelValues(strconv.Itoa(winningTrap)).Inc()
}

// RecordStageError records a pipeline failure.
func RecordStageError(stage, code string) {
	StageErrorsTotal.WithLabelValues(stage, code).Inc()
}

// Snapshot gathers the registry into a flat name -> value map. Labelled series
// are keyed as name{label="value",...}; histograms report their sample count.
func Snapshot() (map[string]float64, error) {
	families, err := GetRegistry().Gather()
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64)
	for _, family := range families {
		for _, m := range family.GetMetric() {
			values[seriesName(family.GetName(), m.GetLabel())] = metricValue(m)
		}
	}
	return values, nil
}

func seriesName(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	out := name + "{"
	for i, l := range labels {
		if i > 0 {
			out += ","
		}
		out += l.GetName() + "=" + strconv.Quote(l.GetValue())
	}
	return out + "}"
}

func metricValue(m *dto.Metric) float64 {
	switch {
	case m.GetCounter() != nil:
		return m.GetCounter().GetValue()
	case m.GetGauge() != nil:
		return m.GetGauge().GetValue()
	case m.GetHistogram() != nil:
		return float64(m.GetHistogram().GetSampleCount())
	default:
		return 0
	}
}
