package models

import (
	"fmt"
	"strings"
)

type OptionType string

const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "calls", "c":
		return OptionTypeCall, nil
	case "put", "puts", "p":
		return OptionTypePut, nil
	default:
		return "", fmt.Errorf("unknown option type: %q", s)
	}
}

// Option is the canonical record produced by a parser. MarketPrice is nil
// when the source carries no traded price. SpotPrice is only set for
// portfolio-format rows, where each row embeds its own underlying price.
type Option struct {
	Symbol            string     `json:"symbol"`
	Strike            float64    `json:"strike"`
	OptionType        OptionType `json:"option_type"`
	ExpiryDays        float64    `json:"expiry_days"`
	ImpliedVolatility float64    `json:"implied_volatility"`
	MarketPrice       *float64   `json:"market_price"`
	Position          float64    `json:"position"`
	SpotPrice         *float64   `json:"spot_price,omitempty"`
}

func (o Option) TimeToExpiryYears() float64 {
	return o.ExpiryDays / 365.0
}
