package parsers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfolio/option-analyzer/src/models"
)

func writeTempCsv(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectFormat(t *testing.T) {
	t.Run("portfolio header", func(t *testing.T) {
		path := writeTempCsv(t, "portfolio.csv", "symbol,position,spot,strike,expiry,volatility,option_type\n")

		format, err := DetectFormat(path)
		assert.NoError(t, err)
		assert.Equal(t, models.FormatTypePortfolio, format)
	})

	t.Run("portfolio header is case insensitive", func(t *testing.T) {
		path := writeTempCsv(t, "portfolio.csv", "SYMBOL,POSITION,SPOT,STRIKE,EXPIRY,VOLATILITY,OPTION_TYPE\n")

		format, err := DetectFormat(path)
		assert.NoError(t, err)
		assert.Equal(t, models.FormatTypePortfolio, format)
	})

	t.Run("anything else is an option chain", func(t *testing.T) {
		path := writeTempCsv(t, "chain.csv", "CALLS,,,,,,,,,,,STRIKE,,,,,,,,,,,PUTS\n")

		format, err := DetectFormat(path)
		assert.NoError(t, err)
		assert.Equal(t, models.FormatTypeOptionChain, format)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTempCsv(t, "empty.csv", "")

		_, err := DetectFormat(path)
		assert.ErrorIs(t, err, models.FormatUnrecognizedErr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := DetectFormat(filepath.Join(t.TempDir(), "nope.csv"))
		assert.ErrorIs(t, err, models.FormatUnrecognizedErr)
	})
}
