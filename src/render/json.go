package render

import (
	"encoding/json"
	"fmt"

	"github.com/quantfolio/option-analyzer/src/models"
)

func RenderJSON(report models.AnalysisReport) (string, error) {
	if report.IsError() {
		data, err := json.Marshal(map[string]string{"error": report.Error})
		if err != nil {
			return "", fmt.Errorf("failed to marshal error report: %v", err)
		}
		return string(data), nil
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %v", err)
	}

	return string(data), nil
}
