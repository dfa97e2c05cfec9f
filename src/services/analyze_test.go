package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfolio/option-analyzer/src/models"
	"github.com/quantfolio/option-analyzer/src/oracle"
)

type stubPricer struct {
	result   models.PricingResult
	err      error
	requests []oracle.PriceRequest
}

func (s *stubPricer) Price(ctx context.Context, req oracle.PriceRequest) (models.PricingResult, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return models.FailedPricingResult(), s.err
	}
	return s.result, nil
}

func writeTempCsv(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeFile(t *testing.T) {
	cfg := models.DefaultAnalyzerConfig()
	now := time.Date(2025, time.August, 4, 10, 0, 0, 0, time.UTC)

	t.Run("portfolio end to end", func(t *testing.T) {
		content := "symbol,position,spot,strike,expiry,volatility,option_type\n" +
			"NIFTY,1,100,100,0.25,0.2,call\n"
		path := writeTempCsv(t, "portfolio.csv", content)

		pricer := &stubPricer{result: models.PricingResult{
			TheoreticalPrice: 4.0,
			Delta:            0.52,
			Gamma:            0.03,
			Vega:             12.0,
			Theta:            -5.0,
			Success:          true,
		}}

		report, err := AnalyzeFile(context.Background(), pricer, AnalyzeArgs{
			FilePath:     path,
			RiskFreeRate: 0.05,
			Config:       cfg,
			Now:          now,
		})
		require.NoError(t, err)
		assert.False(t, report.IsError())

		assert.Equal(t, models.FormatTypePortfolio, report.Metadata.FormatType)
		assert.Equal(t, 1, report.Metadata.OptionCount)
		assert.Equal(t, 100.0, report.Metadata.SpotPrice)
		assert.Equal(t, 0.05, report.Metadata.RiskFreeRate)
		assert.NotEmpty(t, report.Metadata.AnalysisID)

		require.Len(t, pricer.requests, 1)
		req := pricer.requests[0]
		assert.Equal(t, 100.0, req.Spot)
		assert.Equal(t, 100.0, req.Strike)
		assert.Equal(t, 0.05, req.Rate)
		assert.Equal(t, 0.25, req.TimeToExpiryYears)
		assert.Equal(t, 0.2, req.Volatility)
		assert.Equal(t, models.OptionTypeCall, req.OptionType)

		require.NotNil(t, report.Summary)
		require.NotNil(t, report.Summary.PortfolioMetrics)
		assert.Equal(t, 4.0, report.Summary.PortfolioMetrics.TotalValue)
		assert.Equal(t, 0.52, report.Summary.PortfolioMetrics.NetDelta)
	})

	t.Run("results preserve input row order", func(t *testing.T) {
		content := "symbol,position,spot,strike,expiry,volatility,option_type\n" +
			"NIFTY,1,100,110,0.25,0.2,call\n" +
			"NIFTY,1,100,90,0.25,0.2,put\n" +
			"NIFTY,1,100,100,0.25,0.2,call\n"
		path := writeTempCsv(t, "portfolio.csv", content)

		pricer := &stubPricer{result: models.PricingResult{TheoreticalPrice: 1.0, Success: true}}

		report, err := AnalyzeFile(context.Background(), pricer, AnalyzeArgs{
			FilePath: path,
			Config:   cfg,
			Now:      now,
		})
		require.NoError(t, err)
		require.Len(t, report.Options, 3)
		assert.Equal(t, 110.0, report.Options[0].Strike)
		assert.Equal(t, 90.0, report.Options[1].Strike)
		assert.Equal(t, 100.0, report.Options[2].Strike)
	})

	t.Run("pricing failures never abort the run", func(t *testing.T) {
		content := "symbol,position,spot,strike,expiry,volatility,option_type\n" +
			"NIFTY,1,100,100,0.25,0.2,call\n" +
			"NIFTY,1,100,105,0.25,0.2,put\n"
		path := writeTempCsv(t, "portfolio.csv", content)

		pricer := &stubPricer{err: fmt.Errorf("engine exploded")}

		report, err := AnalyzeFile(context.Background(), pricer, AnalyzeArgs{
			FilePath: path,
			Config:   cfg,
			Now:      now,
		})
		require.NoError(t, err)

		require.Len(t, report.Options, 2)
		for _, r := range report.Options {
			assert.False(t, r.Success)
			assert.Equal(t, 0.0, r.TheoreticalPrice)
		}

		require.NotNil(t, report.Summary)
		assert.Equal(t, "no successful calculations", report.Summary.Error)
	})

	t.Run("no valid options yields an error report", func(t *testing.T) {
		content := "symbol,position,spot,strike,expiry,volatility,option_type\n" +
			"NIFTY,bad,100,100,0.25,0.2,call\n"
		path := writeTempCsv(t, "portfolio.csv", content)

		pricer := &stubPricer{}

		report, err := AnalyzeFile(context.Background(), pricer, AnalyzeArgs{
			FilePath: path,
			Config:   cfg,
			Now:      now,
		})
		require.NoError(t, err)
		assert.True(t, report.IsError())
		assert.Equal(t, models.NoValidOptionsErr.Error(), report.Error)
		assert.Len(t, pricer.requests, 0)
	})

	t.Run("unreadable file is fatal", func(t *testing.T) {
		_, err := AnalyzeFile(context.Background(), &stubPricer{}, AnalyzeArgs{
			FilePath: filepath.Join(t.TempDir(), "missing.csv"),
			Config:   cfg,
			Now:      now,
		})
		assert.ErrorIs(t, err, models.FormatUnrecognizedErr)
	})

	t.Run("spot override beats estimation", func(t *testing.T) {
		content := "symbol,position,spot,strike,expiry,volatility,option_type\n" +
			"NIFTY,1,100,100,0.25,0.2,call\n"
		path := writeTempCsv(t, "portfolio.csv", content)

		override := 250.0
		pricer := &stubPricer{result: models.PricingResult{TheoreticalPrice: 1.0, Success: true}}

		report, err := AnalyzeFile(context.Background(), pricer, AnalyzeArgs{
			FilePath:     path,
			SpotOverride: &override,
			Config:       cfg,
			Now:          now,
		})
		require.NoError(t, err)
		assert.Equal(t, 250.0, report.Metadata.SpotPrice)
		require.Len(t, pricer.requests, 1)
		assert.Equal(t, 250.0, pricer.requests[0].Spot)
	})
}
