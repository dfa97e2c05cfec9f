package oracle

import (
	"os"

	"github.com/quantfolio/option-analyzer/src/models"
)

// FindExecutable resolves the pricing engine binary: the ORACLE_PATH
// environment variable wins, then the configured build-output paths are
// tried in order.
func FindExecutable(cfg models.AnalyzerConfigYAML) (string, error) {
	if path := os.Getenv("ORACLE_PATH"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	for _, path := range cfg.OraclePaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", models.OracleNotFoundErr
}
