package models

type PortfolioMetrics struct {
	TotalValue         float64 `json:"total_value"`
	NetDelta           float64 `json:"net_delta"`
	NetGamma           float64 `json:"net_gamma"`
	NetVega            float64 `json:"net_vega"`
	NetTheta           float64 `json:"net_theta"`
	DeltaAdjustedValue float64 `json:"delta_adjusted_value"`
}

type MarketAnalysis struct {
	OptionsWithMarketPrices int     `json:"options_with_market_prices"`
	AvgPriceDifferencePct   float64 `json:"avg_price_difference_pct"`
	OverpricedCount         int     `json:"overpriced_count"`
	UnderpricedCount        int     `json:"underpriced_count"`
}

type RiskMetrics struct {
	PortfolioDeltaRisk  float64 `json:"portfolio_delta_risk"`
	PortfolioGammaRisk  float64 `json:"portfolio_gamma_risk"`
	PortfolioVegaRisk   float64 `json:"portfolio_vega_risk"`
	PortfolioThetaDecay float64 `json:"portfolio_theta_decay"`
}

// PortfolioSummary aggregates the successful pricing results. When no
// calculation succeeded, Error is set and the metric blocks are omitted so
// zeros are never mistaken for measured values.
type PortfolioSummary struct {
	PortfolioMetrics *PortfolioMetrics `json:"portfolio_metrics,omitempty"`
	MarketAnalysis   *MarketAnalysis   `json:"market_analysis,omitempty"`
	RiskMetrics      *RiskMetrics      `json:"risk_metrics,omitempty"`
	Error            string            `json:"error,omitempty"`
}
