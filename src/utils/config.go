package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quantfolio/option-analyzer/src/models"
)

// LoadAnalyzerConfig returns the built-in defaults, overridden by the yaml
// file at path when one is given. Keys absent from the file keep their
// defaults.
func LoadAnalyzerConfig(path string) (models.AnalyzerConfigYAML, error) {
	cfg := models.DefaultAnalyzerConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %v", err)
	}

	return cfg, nil
}
