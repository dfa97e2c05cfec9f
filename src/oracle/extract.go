package oracle

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/quantfolio/option-analyzer/src/models"
)

type pricingPayloadDTO struct {
	Price *float64 `json:"price"`
	Delta *float64 `json:"delta"`
	Gamma *float64 `json:"gamma"`
	Vega  *float64 `json:"vega"`
	Theta *float64 `json:"theta"`
}

var (
	priceRe = regexp.MustCompile(`Price:\s*([\d.]+)`)
	deltaRe = regexp.MustCompile(`Delta:\s*([-\d.]+)`)
	gammaRe = regexp.MustCompile(`Gamma:\s*([\d.]+)`)
	vegaRe  = regexp.MustCompile(`Vega:\s*([\d.]+)`)
	thetaRe = regexp.MustCompile(`Theta:\s*([-\d.]+)`)
)

// ParsePricingOutput extracts price and greeks from the engine's response,
// which is either a json object or free text with "Price: <n>" style lines.
// Individual missing fields default to zero; output with no recognizable
// field at all is an error.
func ParsePricingOutput(output string) (models.PricingResult, error) {
	trimmed := strings.TrimSpace(output)

	if strings.HasPrefix(trimmed, "{") {
		var payload pricingPayloadDTO
		if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
			return models.PricingResult{
				TheoreticalPrice: derefOrZero(payload.Price),
				Delta:            derefOrZero(payload.Delta),
				Gamma:            derefOrZero(payload.Gamma),
				Vega:             derefOrZero(payload.Vega),
				Theta:            derefOrZero(payload.Theta),
				Success:          true,
			}, nil
		}
	}

	price, priceOk := extractField(priceRe, output)
	delta, deltaOk := extractField(deltaRe, output)
	gamma, gammaOk := extractField(gammaRe, output)
	vega, vegaOk := extractField(vegaRe, output)
	theta, thetaOk := extractField(thetaRe, output)

	if !priceOk && !deltaOk && !gammaOk && !vegaOk && !thetaOk {
		return models.PricingResult{}, fmt.Errorf("no price or greeks found in output: %q", trimmed)
	}

	return models.PricingResult{
		TheoreticalPrice: price,
		Delta:            delta,
		Gamma:            gamma,
		Vega:             vega,
		Theta:            theta,
		Success:          true,
	}, nil
}

func extractField(re *regexp.Regexp, output string) (float64, bool) {
	m := re.FindStringSubmatch(output)
	if len(m) < 2 {
		return 0, false
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

func derefOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
