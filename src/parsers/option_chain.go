package parsers

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/quantfolio/option-analyzer/src/models"
)

// Exchange option-chain exports are positional: calls on the left, strike in
// the middle, puts on the right. Column indexes are 0-based.
const (
	chainMinColumns = 23
	chainCallIvIdx  = 4
	chainCallLtpIdx = 5
	chainStrikeIdx  = 11
	chainPutLtpIdx  = 17
	chainPutIvIdx   = 18
)

var expiryDatePattern = regexp.MustCompile(`\d{1,2}-[A-Za-z]{3}-\d{4}`)

// ParseOptionChain reads a positional exchange export. A single row can
// yield zero, one or two options: a call leg is emitted only when its last
// traded price parses to a positive value, and likewise for the put leg.
// Incomplete rows and blank strikes are skipped silently.
func ParseOptionChain(filePath string, cfg models.AnalyzerConfigYAML, now time.Time) ([]models.Option, []SkippedRow, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read option chain csv: %v", err)
	}
	if len(records) <= 1 {
		return nil, nil, nil
	}

	expiryDays := EstimateExpiryDays(filePath, cfg.DefaultExpiryDays, now)

	var options []models.Option
	var skipped []SkippedRow

	for i, row := range records[1:] {
		line := i + 2

		if len(row) < chainMinColumns {
			skipped = append(skipped, SkippedRow{Line: line, Reason: fmt.Sprintf("row has %d columns, expected at least %d", len(row), chainMinColumns)})
			continue
		}

		strike, ok := cleanPrice(row[chainStrikeIdx])
		if !ok || strike <= 0 {
			skipped = append(skipped, SkippedRow{Line: line, Reason: "blank or invalid strike"})
			continue
		}

		if callLtp, ok := cleanPrice(row[chainCallLtpIdx]); ok && callLtp > 0 {
			ltp := callLtp
			options = append(options, models.Option{
				Symbol:            cfg.ChainSymbol,
				Strike:            strike,
				OptionType:        models.OptionTypeCall,
				ExpiryDays:        expiryDays,
				ImpliedVolatility: chainImpliedVolatility(row[chainCallIvIdx], cfg.DefaultVolatility),
				MarketPrice:       &ltp,
				Position:          1,
			})
		}

		if putLtp, ok := cleanPrice(row[chainPutLtpIdx]); ok && putLtp > 0 {
			ltp := putLtp
			options = append(options, models.Option{
				Symbol:            cfg.ChainSymbol,
				Strike:            strike,
				OptionType:        models.OptionTypePut,
				ExpiryDays:        expiryDays,
				ImpliedVolatility: chainImpliedVolatility(row[chainPutIvIdx], cfg.DefaultVolatility),
				MarketPrice:       &ltp,
				Position:          1,
			})
		}
	}

	return options, skipped, nil
}

func chainImpliedVolatility(cell string, defaultVolatility float64) float64 {
	if iv, ok := cleanPercent(cell); ok && iv > 0 {
		return iv
	}
	return defaultVolatility
}

// cleanPrice parses an exchange price cell, stripping thousands separators
// and quoting. A blank cell or "-" means no value.
func cleanPrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, false
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// cleanPercent parses a percentage cell into a decimal fraction.
func cleanPercent(s string) (float64, bool) {
	s = strings.ReplaceAll(s, "%", "")
	v, ok := cleanPrice(s)
	if !ok {
		return 0, false
	}
	return v / 100.0, true
}

// EstimateExpiryDays scans the file name for a DD-Mon-YYYY expiry date and
// returns the number of days until it, clamped to a minimum of one day.
// Exports named like "option-chain-ED-NIFTY-14-Aug-2025.csv" carry their
// expiry this way; anything else falls back to defaultDays.
func EstimateExpiryDays(filePath string, defaultDays float64, now time.Time) float64 {
	fileName := filepath.Base(filePath)

	match := expiryDatePattern.FindString(fileName)
	if match == "" {
		return defaultDays
	}

	expiry, err := time.Parse("2-Jan-2006", match)
	if err != nil {
		return defaultDays
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := expiry.Sub(today).Hours() / 24

	return math.Max(1, days)
}
