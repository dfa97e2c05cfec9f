package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/quantfolio/option-analyzer/src/models"
	"github.com/quantfolio/option-analyzer/src/oracle"
)

// PriceOptions dispatches each option to the pricer sequentially, in input
// order, and collects results in the same order. A pricing failure is
// recorded as a zeroed unsuccessful result and the loop continues.
func PriceOptions(ctx context.Context, pricer oracle.Pricer, options []models.Option, spot float64, rate float64) []models.OptionResult {
	results := make([]models.OptionResult, 0, len(options))

	for i, option := range options {
		log.Infof("Processing option %d/%d: %s strike %.2f", i+1, len(options), option.OptionType, option.Strike)

		pricing := priceOption(ctx, pricer, option, spot, rate)
		results = append(results, models.NewOptionResult(option, spot, pricing))
	}

	return results
}

func priceOption(ctx context.Context, pricer oracle.Pricer, option models.Option, spot float64, rate float64) models.PricingResult {
	req := oracle.PriceRequest{
		Spot:              spot,
		Strike:            option.Strike,
		Rate:              rate,
		TimeToExpiryYears: option.TimeToExpiryYears(),
		Volatility:        option.ImpliedVolatility,
		OptionType:        option.OptionType,
	}

	pricing, err := pricer.Price(ctx, req)
	if err != nil {
		log.Warnf("Pricing failed for %s strike %.2f: %v", option.OptionType, option.Strike, err)
		return models.FailedPricingResult()
	}

	return pricing
}
