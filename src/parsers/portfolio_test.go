package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfolio/option-analyzer/src/models"
)

func TestParsePortfolio(t *testing.T) {
	cfg := models.DefaultAnalyzerConfig()

	t.Run("valid rows", func(t *testing.T) {
		content := "symbol,position,spot,strike,expiry,volatility,option_type\n" +
			"NIFTY,2,23000,23100,0.25,0.18,CALL\n" +
			"NIFTY,-1,23000,22900,0.5,0.22,put\n"
		path := writeTempCsv(t, "portfolio.csv", content)

		options, skipped, err := ParsePortfolio(path, cfg)
		require.NoError(t, err)
		assert.Len(t, skipped, 0)
		require.Len(t, options, 2)

		first := options[0]
		assert.Equal(t, "NIFTY", first.Symbol)
		assert.Equal(t, models.OptionTypeCall, first.OptionType)
		assert.Equal(t, 23100.0, first.Strike)
		assert.Equal(t, 0.25*365, first.ExpiryDays)
		assert.Equal(t, 0.18, first.ImpliedVolatility)
		assert.Equal(t, 2.0, first.Position)
		require.NotNil(t, first.SpotPrice)
		assert.Equal(t, 23000.0, *first.SpotPrice)
		assert.Nil(t, first.MarketPrice)

		second := options[1]
		assert.Equal(t, models.OptionTypePut, second.OptionType)
		assert.Equal(t, -1.0, second.Position)
		assert.Equal(t, 0.5*365, second.ExpiryDays)
	})

	t.Run("malformed rows are skipped, not fatal", func(t *testing.T) {
		content := "symbol,position,spot,strike,expiry,volatility,option_type\n" +
			"NIFTY,abc,23000,23100,0.25,0.18,call\n" +
			"NIFTY,1,23000,22900,0.25,0.22,put\n" +
			"NIFTY,1,23000,22900,0.25,0.22,straddle\n"
		path := writeTempCsv(t, "portfolio.csv", content)

		options, skipped, err := ParsePortfolio(path, cfg)
		require.NoError(t, err)
		require.Len(t, options, 1)
		assert.Equal(t, models.OptionTypePut, options[0].OptionType)

		require.Len(t, skipped, 2)
		assert.Equal(t, 2, skipped[0].Line)
		assert.Equal(t, 4, skipped[1].Line)
	})

	t.Run("non positive strike is skipped", func(t *testing.T) {
		content := "symbol,position,spot,strike,expiry,volatility,option_type\n" +
			"NIFTY,1,23000,0,0.25,0.18,call\n"
		path := writeTempCsv(t, "portfolio.csv", content)

		options, skipped, err := ParsePortfolio(path, cfg)
		require.NoError(t, err)
		assert.Len(t, options, 0)
		assert.Len(t, skipped, 1)
	})

	t.Run("blank volatility defaults", func(t *testing.T) {
		content := "symbol,position,spot,strike,expiry,volatility,option_type\n" +
			"NIFTY,1,23000,23100,0.25,,call\n"
		path := writeTempCsv(t, "portfolio.csv", content)

		options, _, err := ParsePortfolio(path, cfg)
		require.NoError(t, err)
		require.Len(t, options, 1)
		assert.Equal(t, cfg.DefaultVolatility, options[0].ImpliedVolatility)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := ParsePortfolio("does-not-exist.csv", cfg)
		assert.Error(t, err)
	})
}
