package services

import (
	"github.com/montanaflynn/stats"

	"github.com/quantfolio/option-analyzer/src/models"
)

// ResolveSpotPrice picks the underlying price for the run. An explicit
// override always wins. Portfolio rows embed their own spot, so the first
// record's value is taken (rows are assumed consistent). Chain data carries
// no spot at all, so it is estimated from the strikes.
func ResolveSpotPrice(override *float64, formatType models.FormatType, options []models.Option, cfg models.AnalyzerConfigYAML) float64 {
	if override != nil && *override > 0 {
		return *override
	}

	if formatType == models.FormatTypePortfolio {
		if len(options) > 0 && options[0].SpotPrice != nil {
			return *options[0].SpotPrice
		}
		return cfg.FallbackSpotPrice
	}

	return EstimateSpotFromStrikes(options, cfg.FallbackSpotPrice)
}

// EstimateSpotFromStrikes proxies the underlying price with the arithmetic
// mean of all parsed strikes.
func EstimateSpotFromStrikes(options []models.Option, fallback float64) float64 {
	if len(options) == 0 {
		return fallback
	}

	strikes := make([]float64, 0, len(options))
	for _, option := range options {
		strikes = append(strikes, option.Strike)
	}

	mean, err := stats.Mean(strikes)
	if err != nil {
		return fallback
	}

	return mean
}
