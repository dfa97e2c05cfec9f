package models

// OptionResult joins an Option with its PricingResult under the spot price
// the run resolved. PriceDifference and PriceDifferencePct are nil when the
// option has no market price or the theoretical price is zero.
type OptionResult struct {
	Symbol            string     `json:"symbol"`
	OptionType        OptionType `json:"option_type"`
	Strike            float64    `json:"strike"`
	SpotPrice         float64    `json:"spot_price"`
	ExpiryDays        float64    `json:"expiry_days"`
	ImpliedVolatility float64    `json:"implied_volatility"`
	MarketPrice       *float64   `json:"market_price"`
	Position          float64    `json:"position"`
	PricingResult
	PriceDifference    *float64 `json:"price_difference,omitempty"`
	PriceDifferencePct *float64 `json:"price_difference_pct,omitempty"`
}

func NewOptionResult(opt Option, spot float64, pricing PricingResult) OptionResult {
	result := OptionResult{
		Symbol:            opt.Symbol,
		OptionType:        opt.OptionType,
		Strike:            opt.Strike,
		SpotPrice:         spot,
		ExpiryDays:        opt.ExpiryDays,
		ImpliedVolatility: opt.ImpliedVolatility,
		MarketPrice:       opt.MarketPrice,
		Position:          opt.Position,
		PricingResult:     pricing,
	}

	if opt.MarketPrice != nil && pricing.TheoreticalPrice != 0 {
		diff := *opt.MarketPrice - pricing.TheoreticalPrice
		pct := diff / pricing.TheoreticalPrice * 100
		result.PriceDifference = &diff
		result.PriceDifferencePct = &pct
	}

	return result
}
