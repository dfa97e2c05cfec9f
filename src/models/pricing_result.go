package models

// PricingResult holds the pricing engine's answer for a single option. A
// failed invocation still yields a result so portfolio totals remain
// computable: all figures zero and Success false.
type PricingResult struct {
	TheoreticalPrice float64 `json:"theoretical_price"`
	Delta            float64 `json:"delta"`
	Gamma            float64 `json:"gamma"`
	Vega             float64 `json:"vega"`
	Theta            float64 `json:"theta"`
	Success          bool    `json:"calculation_success"`
}

func FailedPricingResult() PricingResult {
	return PricingResult{}
}
