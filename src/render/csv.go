package render

import (
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/quantfolio/option-analyzer/src/models"
)

// Absent values are pointers so gocsv renders them as empty cells.
type optionResultCsvRowDTO struct {
	Symbol             string   `csv:"symbol"`
	OptionType         string   `csv:"option_type"`
	Strike             float64  `csv:"strike"`
	ExpiryDays         float64  `csv:"expiry_days"`
	ImpliedVolatility  float64  `csv:"implied_volatility"`
	MarketPrice        *float64 `csv:"market_price"`
	TheoreticalPrice   float64  `csv:"theoretical_price"`
	PriceDifference    *float64 `csv:"price_difference"`
	PriceDifferencePct *float64 `csv:"price_difference_pct"`
	Delta              float64  `csv:"delta"`
	Gamma              float64  `csv:"gamma"`
	Vega               float64  `csv:"vega"`
	Theta              float64  `csv:"theta"`
	Position           float64  `csv:"position"`
}

func RenderCSV(report models.AnalysisReport) (string, error) {
	if report.IsError() {
		return fmt.Sprintf("Error,%s", report.Error), nil
	}

	rows := make([]*optionResultCsvRowDTO, 0, len(report.Options))
	for _, r := range report.Options {
		rows = append(rows, &optionResultCsvRowDTO{
			Symbol:             r.Symbol,
			OptionType:         string(r.OptionType),
			Strike:             r.Strike,
			ExpiryDays:         r.ExpiryDays,
			ImpliedVolatility:  r.ImpliedVolatility,
			MarketPrice:        r.MarketPrice,
			TheoreticalPrice:   r.TheoreticalPrice,
			PriceDifference:    r.PriceDifference,
			PriceDifferencePct: r.PriceDifferencePct,
			Delta:              r.Delta,
			Gamma:              r.Gamma,
			Vega:               r.Vega,
			Theta:              r.Theta,
			Position:           r.Position,
		})
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("failed to marshal csv: %v", err)
	}

	return out, nil
}
