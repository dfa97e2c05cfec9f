package parsers

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/quantfolio/option-analyzer/src/models"
)

// Cells stay strings so one malformed value drops a single row instead of
// failing the whole unmarshal.
type portfolioCsvRowDTO struct {
	Symbol     string `csv:"symbol"`
	Position   string `csv:"position"`
	Spot       string `csv:"spot"`
	Strike     string `csv:"strike"`
	Expiry     string `csv:"expiry"`
	Volatility string `csv:"volatility"`
	OptionType string `csv:"option_type"`
}

func (r *portfolioCsvRowDTO) toOption(cfg models.AnalyzerConfigYAML) (models.Option, error) {
	position, err := parseFloatCell(r.Position)
	if err != nil {
		return models.Option{}, fmt.Errorf("invalid position %q: %v", r.Position, err)
	}

	spot, err := parseFloatCell(r.Spot)
	if err != nil {
		return models.Option{}, fmt.Errorf("invalid spot %q: %v", r.Spot, err)
	}

	strike, err := parseFloatCell(r.Strike)
	if err != nil {
		return models.Option{}, fmt.Errorf("invalid strike %q: %v", r.Strike, err)
	}
	if strike <= 0 {
		return models.Option{}, fmt.Errorf("strike must be positive, got %v", strike)
	}

	expiryYears, err := parseFloatCell(r.Expiry)
	if err != nil {
		return models.Option{}, fmt.Errorf("invalid expiry %q: %v", r.Expiry, err)
	}

	volatility := cfg.DefaultVolatility
	if strings.TrimSpace(r.Volatility) != "" {
		volatility, err = parseFloatCell(r.Volatility)
		if err != nil {
			return models.Option{}, fmt.Errorf("invalid volatility %q: %v", r.Volatility, err)
		}
	}

	optionType, err := models.ParseOptionType(r.OptionType)
	if err != nil {
		return models.Option{}, err
	}

	return models.Option{
		Symbol:            strings.TrimSpace(r.Symbol),
		Strike:            strike,
		OptionType:        optionType,
		ExpiryDays:        expiryYears * 365,
		ImpliedVolatility: volatility,
		Position:          position,
		SpotPrice:         &spot,
	}, nil
}

func parseFloatCell(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParsePortfolio reads a named-column portfolio csv. Malformed rows are
// skipped with a warning; the parse only fails if the file itself cannot be
// read.
func ParsePortfolio(filePath string, cfg models.AnalyzerConfigYAML) ([]models.Option, []SkippedRow, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer f.Close()

	var rows []*portfolioCsvRowDTO
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal portfolio csv: %v", err)
	}

	var options []models.Option
	var skipped []SkippedRow

	for i, row := range rows {
		line := i + 2 // 1-based, after the header

		option, err := row.toOption(cfg)
		if err != nil {
			log.Warnf("Skipping malformed row %d: %v", line, err)
			skipped = append(skipped, SkippedRow{Line: line, Reason: err.Error()})
			continue
		}

		options = append(options, option)
	}

	return options, skipped, nil
}
