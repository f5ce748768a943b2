// Package logger provides market-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/greyhound-market/internal/models"
)

// MarketLogger provides dedicated logging for pricing and race simulation.
type MarketLogger struct {
	*logrus.Entry
}

// NewMarketLogger creates a new market logger.
func NewMarketLogger(baseLogger *logrus.Logger) *MarketLogger {
	return &MarketLogger{
		Entry: baseLogger.WithField("component", "market"),
	}
}

// LogProbabilitiesGenerated logs the generated win distribution.
func (ml *MarketLogger) LogProbabilitiesGenerated(dist models.Distribution, source string) {
	ml.WithFields(logrus.Fields{
		"entrants":      dist.Len(),
		"favourite":     models.TrapNumber(dist.Favourite()),
		"probabilities": []float64(dist),
		"source":        source,
	}).Debug("Win probabilities generated")
}

// LogMarketPriced logs a fully priced market.
func (ml *MarketLogger) LogMarketPriced(market *models.Market, durationMs float64) {
	ml.WithFields(logrus.Fields{
		"market_id":           market.ID.String(),
		"entrants":            market.Entrants(),
		"margin":              market.Margin,
		"overround":           market.Overround(),
		"forecast_lines":      len(market.Forecast),
		"tricast_lines":       len(market.Tricast),
		"pricing_duration_ms": durationMs,
	}).Info("Market priced")
}

// LogRaceSimulated logs the simulated finishing order.
func (ml *MarketLogger) LogRaceSimulated(marketID string, result *models.RaceResult) {
	ml.WithFields(logrus.Fields{
		"market_id": marketID,
		"race_id":   result.RaceID.String(),
		"winner":    models.TrapNumber(result.Winner),
		"second":    models.TrapNumber(result.Second),
		"third":     models.TrapNumber(result.Third),
	}).Info("Race simulated")
}

// LogStageFailure logs a failed pipeline stage with its error code.
func (ml *MarketLogger) LogStageFailure(stage string, err error) {
	ml.WithFields(logrus.Fields{
		"stage":      stage,
		"error_code": models.ErrorCode(err),
	}).WithError(err).Error("Simulation stage failed")
}
