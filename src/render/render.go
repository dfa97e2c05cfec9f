package render

import (
	"fmt"

	"github.com/quantfolio/option-analyzer/src/models"
)

type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatCSV   OutputFormat = "csv"
)

// Render produces the report in the requested format. Rendering a valid
// report never fails; an error report produces a single descriptive line in
// every format.
func Render(report models.AnalysisReport, format OutputFormat) (string, error) {
	switch format {
	case OutputFormatJSON:
		return RenderJSON(report)
	case OutputFormatCSV:
		return RenderCSV(report)
	case OutputFormatTable, "":
		return RenderTable(report), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}
