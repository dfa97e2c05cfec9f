package render

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quantfolio/option-analyzer/src/models"
)

// maxTableRows caps the option listing; json and csv always carry the full
// sequence.
const maxTableRows = 20

func RenderTable(report models.AnalysisReport) string {
	if report.IsError() {
		return fmt.Sprintf("Error: %s", report.Error)
	}

	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	banner := strings.Repeat("=", 80)
	display.WriteString(banner + "\n")
	display.WriteString("OPTION PRICING ANALYSIS\n")
	display.WriteString(banner + "\n")

	meta := report.Metadata
	fmt.Fprintf(display, "File: %s\n", meta.SourceName)
	fmt.Fprintf(display, "Format: %s\n", meta.FormatType)
	fmt.Fprintf(display, "Options Analyzed: %d\n", meta.OptionCount)
	fmt.Fprintf(display, "Spot Price: %.2f\n", meta.SpotPrice)
	fmt.Fprintf(display, "Risk-free Rate: %.2f%%\n", meta.RiskFreeRate*100)

	display.WriteString("\nOPTION DETAILS:\n")
	writeOptionsTable(display, report.Options)

	if len(report.Options) > maxTableRows {
		fmt.Fprintf(display, "... and %d more options\n", len(report.Options)-maxTableRows)
	}

	if report.Summary != nil {
		writeSummary(display, p, report.Summary)
	}

	display.WriteString(banner + "\n")
	return display.String()
}

func writeOptionsTable(display *strings.Builder, options []models.OptionResult) {
	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Symbol", "Type", "Strike", "Days", "IV", "Market", "Theor.", "Diff%", "Delta", "Gamma", "Vega", "Theta"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	limit := len(options)
	if limit > maxTableRows {
		limit = maxTableRows
	}

	for _, r := range options[:limit] {
		market := "N/A"
		if r.MarketPrice != nil {
			market = fmt.Sprintf("%.2f", *r.MarketPrice)
		}

		diffPct := "N/A"
		if r.PriceDifferencePct != nil {
			diffPct = fmt.Sprintf("%.1f%%", *r.PriceDifferencePct)
		}

		table.Append([]string{
			r.Symbol,
			string(r.OptionType),
			fmt.Sprintf("%.0f", r.Strike),
			fmt.Sprintf("%.0f", r.ExpiryDays),
			fmt.Sprintf("%.1f%%", r.ImpliedVolatility*100),
			market,
			fmt.Sprintf("%.2f", r.TheoreticalPrice),
			diffPct,
			fmt.Sprintf("%.3f", r.Delta),
			fmt.Sprintf("%.4f", r.Gamma),
			fmt.Sprintf("%.2f", r.Vega),
			fmt.Sprintf("%.2f", r.Theta),
		})
	}

	table.Render()
}

func writeSummary(display *strings.Builder, p *message.Printer, summary *models.PortfolioSummary) {
	if summary.Error != "" {
		fmt.Fprintf(display, "\nPORTFOLIO SUMMARY: error: %s\n", summary.Error)
		return
	}

	display.WriteString("\nPORTFOLIO SUMMARY:\n")
	display.WriteString(strings.Repeat("-", 40) + "\n")

	pm := summary.PortfolioMetrics
	fmt.Fprintf(display, "Total Portfolio Value: %s\n", p.Sprintf("%.2f", pm.TotalValue))
	fmt.Fprintf(display, "Net Delta: %.2f\n", pm.NetDelta)
	fmt.Fprintf(display, "Net Gamma: %.4f\n", pm.NetGamma)
	fmt.Fprintf(display, "Net Vega: %.2f\n", pm.NetVega)
	fmt.Fprintf(display, "Net Theta: %.2f\n", pm.NetTheta)
	fmt.Fprintf(display, "Delta Adjusted Value (1%% move): %s\n", p.Sprintf("%.2f", pm.DeltaAdjustedValue))

	if ma := summary.MarketAnalysis; ma != nil {
		display.WriteString("\nMARKET ANALYSIS:\n")
		display.WriteString(strings.Repeat("-", 20) + "\n")
		fmt.Fprintf(display, "Options with Market Prices: %d\n", ma.OptionsWithMarketPrices)
		fmt.Fprintf(display, "Avg Price Difference: %.1f%%\n", ma.AvgPriceDifferencePct)
		fmt.Fprintf(display, "Overpriced: %d, Underpriced: %d\n", ma.OverpricedCount, ma.UnderpricedCount)
	}

	if rm := summary.RiskMetrics; rm != nil {
		display.WriteString("\nRISK METRICS:\n")
		display.WriteString(strings.Repeat("-", 20) + "\n")
		fmt.Fprintf(display, "Delta Risk (1%% spot move): %s\n", p.Sprintf("%.2f", rm.PortfolioDeltaRisk))
		fmt.Fprintf(display, "Gamma Risk (1%% spot move): %s\n", p.Sprintf("%.2f", rm.PortfolioGammaRisk))
		fmt.Fprintf(display, "Vega Risk (1%% vol move): %s\n", p.Sprintf("%.2f", rm.PortfolioVegaRisk))
		fmt.Fprintf(display, "Theta Decay (daily): %.2f\n", rm.PortfolioThetaDecay)
	}
}
