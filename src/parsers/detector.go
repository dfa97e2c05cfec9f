package parsers

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/quantfolio/option-analyzer/src/models"
)

// portfolioHeaderSignature marks the named-column portfolio format. Anything
// else with a readable header is treated as an exchange option-chain export.
const portfolioHeaderSignature = "symbol,position,spot,strike"

func DetectFormat(filePath string) (models.FormatType, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", filePath, models.FormatUnrecognizedErr)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", fmt.Errorf("%s is empty: %w", filePath, models.FormatUnrecognizedErr)
	}

	firstLine := strings.ToLower(strings.TrimSpace(scanner.Text()))
	if firstLine == "" {
		return "", fmt.Errorf("%s has a blank header line: %w", filePath, models.FormatUnrecognizedErr)
	}

	if strings.Contains(firstLine, portfolioHeaderSignature) {
		return models.FormatTypePortfolio, nil
	}

	return models.FormatTypeOptionChain, nil
}
