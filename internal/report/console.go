// Package report renders a priced market and its race result for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/greyhound-market/internal/models"
)

// FormatOdds rounds odds to two decimal places.
func FormatOdds(odds float64) string {
	return decimal.NewFromFloat(odds).StringFixed(2)
}

// GenerateConsoleReport formats the market and result for terminal output.
// Entrants are numbered from 1; forecast and tricast lines are in key order.
func GenerateConsoleReport(market *models.Market, result *models.RaceResult) string {
	var builder strings.Builder

	builder.WriteString("Win Odds:\n")
	for i, odds := range market.WinOdds {
		builder.WriteString(fmt.Sprintf("%s: %s\n", models.RunnerName(i), FormatOdds(odds)))
	}

	builder.WriteString("\nForecast Odds:\n")
	for _, key := range market.Forecast.SortedKeys() {
		builder.WriteString(fmt.Sprintf("%s: %s\n", key, FormatOdds(market.Forecast[key])))
	}

	builder.WriteString("\nTricast Odds:\n")
	for _, key := range market.Tricast.SortedKeys() {
		builder.WriteString(fmt.Sprintf("%s: %s\n", key, FormatOdds(market.Tricast[key])))
	}

	if result != nil {
		builder.WriteString("\nRace Results:\n")
		builder.WriteString(fmt.Sprintf("Winner: %s\n", models.RunnerName(result.Winner)))
		builder.WriteString(fmt.Sprintf("Second: %s\n", models.RunnerName(result.Second)))
		builder.WriteString(fmt.Sprintf("Third: %s\n", models.RunnerName(result.Third)))
	}

	return builder.String()
}

// WriteConsoleReport writes the console report to w.
func WriteConsoleReport(w io.Writer, market *models.Market, result *models.RaceResult) error {
	if market == nil {
		return fmt.Errorf("market is required")
	}
	if _, err := io.WriteString(w, GenerateConsoleReport(market, result)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
