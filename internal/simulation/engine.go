// Package simulation runs the generate, price and race pipeline for one market.
package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/greyhound-market/internal/logger"
	"github.com/yourusername/greyhound-market/internal/metrics"
	"github.com/yourusername/greyhound-market/internal/models"
	"github.com/yourusername/greyhound-market/internal/pricing"
	"github.com/yourusername/greyhound-market/internal/race"
	"github.com/yourusername/greyhound-market/internal/rng"
)

// Pipeline stage names used in logs and metrics.
const (
	StageProbabilities = "probabilities"
	StagePricing       = "pricing"
	StageRace          = "race"
)

// Outcome is a priced market together with its simulated result.
type Outcome struct {
	Market *models.Market
	Result *models.RaceResult
}

// Engine orchestrates a simulation run
type Engine struct {
	config Config
	source rng.Source
	logger *logrus.Logger
	log    *logger.MarketLogger
}

// NewEngine creates a new simulation engine
func NewEngine(cfg Config, source rng.Source, log *logrus.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if source == nil {
		source = rng.NewCryptoSource()
	}
	if log == nil {
		log = logrus.New()
	}
	return &Engine{
		config: cfg,
		source: source,
		logger: log,
		log:    logger.NewMarketLogger(log),
	}, nil
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.config
}

// Logger returns the engine logger
func (e *Engine) Logger() *logrus.Logger {
	return e.logger
}

// Run generates a win distribution, prices it and simulates the race.
func (e *Engine) Run(ctx context.Context) (*Outcome, error) {
	dist, err := pricing.GenerateProbabilities(e.config.Entrants, e.source)
	if err != nil {
		return nil, e.fail(StageProbabilities, err)
	}
	e.log.LogProbabilitiesGenerated(dist, fmt.Sprintf("%T", e.source))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	market, err := e.PriceMarket(dist)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := e.SimulateRace(market)
	if err != nil {
		return nil, err
	}

	return &Outcome{Market: market, Result: result}, nil
}

// PriceMarket builds the win, forecast and tricast books for dist. Forecast
// and tricast odds are computed from the margin-free distribution.
func (e *Engine) PriceMarket(dist models.Distribution) (*models.Market, error) {
	start := time.Now()

	winOdds, err := pricing.CalculateOddsWithMargins(dist, e.config.Margin)
	if err != nil {
		return nil, e.fail(StagePricing, fmt.Errorf("win odds: %w", err))
	}
	forecast, err := pricing.GenerateForecastOdds(dist)
	if err != nil {
		return nil, e.fail(StagePricing, fmt.Errorf("forecast odds: %w", err))
	}
	tricast, err := pricing.GenerateTricastOdds(dist)
	if err != nil {
		return nil, e.fail(StagePricing, fmt.Errorf("tricast odds: %w", err))
	}

	market := &models.Market{
		ID:            uuid.New(),
		Probabilities: dist.Clone(),
		Margin:        e.config.Margin,
		WinOdds:       winOdds,
		Forecast:      forecast,
		Tricast:       tricast,
		CreatedAt:     time.Now().UTC(),
	}

	elapsed := time.Since(start)
	e.log.LogMarketPriced(market, float64(elapsed.Microseconds())/1000)
	if e.config.RecordMetrics {
		metrics.RecordMarketPriced(market.Overround(), elapsed.Seconds())
	}
	return market, nil
}

// SimulateRace draws the first three finishers from the market's win distribution.
func (e *Engine) SimulateRace(market *models.Market) (*models.RaceResult, error) {
	result, err := race.Run(market.Probabilities, e.source)
	if err != nil {
		return nil, e.fail(StageRace, err)
	}

	e.log.LogRaceSimulated(market.ID.String(), result)
	if e.config.RecordMetrics {
		metrics.RecordRaceSimulated(models.TrapNumber(result.Winner))
	}
	return result, nil
}

func (e *Engine) fail(stage string, err error) error {
	e.log.LogStageFailure(stage, err)
	if e.config.RecordMetrics {
		metrics.RecordStageError(stage, models.ErrorCode(err))
	}
	return fmt.Errorf("%s stage failed: %w", stage, err)
}
