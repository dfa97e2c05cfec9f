package services

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/quantfolio/option-analyzer/src/models"
)

// BuildPortfolioSummary folds the result sequence into portfolio totals.
// Only successful calculations contribute to greek sums and portfolio value;
// mispricing statistics only cover results that carry a market price.
func BuildPortfolioSummary(results []models.OptionResult, spot float64) *models.PortfolioSummary {
	var successful []models.OptionResult
	for _, r := range results {
		if r.Success {
			successful = append(successful, r)
		}
	}

	if len(successful) == 0 {
		return &models.PortfolioSummary{Error: "no successful calculations"}
	}

	var totalValue, netDelta, netGamma, netVega, netTheta float64
	for _, r := range successful {
		totalValue += r.TheoreticalPrice * r.Position
		netDelta += r.Delta * r.Position
		netGamma += r.Gamma * r.Position
		netVega += r.Vega * r.Position
		netTheta += r.Theta * r.Position
	}

	var withMarketPrices, overpriced, underpriced int
	var absDiffPcts []float64
	for _, r := range successful {
		if r.MarketPrice == nil {
			continue
		}

		withMarketPrices++

		if r.PriceDifference != nil {
			if *r.PriceDifference > 0 {
				overpriced++
			} else if *r.PriceDifference < 0 {
				underpriced++
			}
		}

		if r.PriceDifferencePct != nil {
			absDiffPcts = append(absDiffPcts, math.Abs(*r.PriceDifferencePct))
		}
	}

	avgDiffPct := 0.0
	if len(absDiffPcts) > 0 {
		if mean, err := stats.Mean(absDiffPcts); err == nil {
			avgDiffPct = mean
		}
	}

	return &models.PortfolioSummary{
		PortfolioMetrics: &models.PortfolioMetrics{
			TotalValue:         totalValue,
			NetDelta:           netDelta,
			NetGamma:           netGamma,
			NetVega:            netVega,
			NetTheta:           netTheta,
			DeltaAdjustedValue: totalValue + netDelta*spot*0.01,
		},
		MarketAnalysis: &models.MarketAnalysis{
			OptionsWithMarketPrices: withMarketPrices,
			AvgPriceDifferencePct:   avgDiffPct,
			OverpricedCount:         overpriced,
			UnderpricedCount:        underpriced,
		},
		RiskMetrics: &models.RiskMetrics{
			PortfolioDeltaRisk:  math.Abs(netDelta) * spot * 0.01,
			PortfolioGammaRisk:  math.Abs(netGamma) * spot * spot * 0.0001,
			PortfolioVegaRisk:   math.Abs(netVega) * 0.01,
			PortfolioThetaDecay: netTheta,
		},
	}
}
