package models

type FormatType string

const (
	FormatTypePortfolio   FormatType = "portfolio"
	FormatTypeOptionChain FormatType = "option_chain"
)

type ReportMetadata struct {
	SourceName   string     `json:"source_name"`
	FormatType   FormatType `json:"format_type"`
	OptionCount  int        `json:"option_count"`
	SpotPrice    float64    `json:"spot_price"`
	RiskFreeRate float64    `json:"risk_free_rate"`
	Timestamp    string     `json:"timestamp"`
	AnalysisID   string     `json:"analysis_id"`
}

// AnalysisReport is built once per run and read-only afterwards. Options
// preserve source row order. Error is set instead of Options/Summary when
// ingestion produced nothing to analyze.
type AnalysisReport struct {
	Metadata ReportMetadata    `json:"metadata"`
	Options  []OptionResult    `json:"options"`
	Summary  *PortfolioSummary `json:"summary,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func (r AnalysisReport) IsError() bool {
	return r.Error != ""
}

func NewErrorReport(msg string) AnalysisReport {
	return AnalysisReport{Error: msg}
}
