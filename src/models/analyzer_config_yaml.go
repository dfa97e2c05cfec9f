package models

import "time"

// AnalyzerConfigYAML carries the tunable defaults of the analysis pipeline.
// All fields have conventional defaults; a yaml config file overrides them.
type AnalyzerConfigYAML struct {
	DefaultVolatility    float64  `yaml:"default_volatility"`
	DefaultExpiryDays    float64  `yaml:"default_expiry_days"`
	FallbackSpotPrice    float64  `yaml:"fallback_spot_price"`
	ChainSymbol          string   `yaml:"chain_symbol"`
	OracleTimeoutSeconds int      `yaml:"oracle_timeout_seconds"`
	OraclePaths          []string `yaml:"oracle_paths"`
}

func DefaultAnalyzerConfig() AnalyzerConfigYAML {
	return AnalyzerConfigYAML{
		DefaultVolatility:    0.20,
		DefaultExpiryDays:    30,
		FallbackSpotPrice:    23000.0,
		ChainSymbol:          "NIFTY",
		OracleTimeoutSeconds: 30,
		OraclePaths: []string{
			"build/release/bin/bsm_enhanced",
			"build/release/bin/bsm",
			"build/bin/bsm_enhanced",
			"build/bin/bsm",
		},
	}
}

func (c AnalyzerConfigYAML) OracleTimeout() time.Duration {
	return time.Duration(c.OracleTimeoutSeconds) * time.Second
}
