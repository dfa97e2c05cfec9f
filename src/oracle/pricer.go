package oracle

import (
	"context"

	"github.com/quantfolio/option-analyzer/src/models"
)

type PriceRequest struct {
	Spot              float64
	Strike            float64
	Rate              float64
	TimeToExpiryYears float64
	Volatility        float64
	OptionType        models.OptionType
}

// Pricer is the capability the pipeline depends on for theoretical prices
// and greeks. The production implementation shells out to the pricing
// engine; tests substitute a deterministic stub.
type Pricer interface {
	Price(ctx context.Context, req PriceRequest) (models.PricingResult, error)
}
