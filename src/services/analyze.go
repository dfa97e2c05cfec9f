package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/quantfolio/option-analyzer/src/models"
	"github.com/quantfolio/option-analyzer/src/oracle"
	"github.com/quantfolio/option-analyzer/src/parsers"
)

type AnalyzeArgs struct {
	FilePath     string
	SpotOverride *float64
	RiskFreeRate float64
	Config       models.AnalyzerConfigYAML
	Now          time.Time
}

// AnalyzeFile runs the whole pipeline for one csv file: detect format,
// parse, resolve spot, price each option through the pricer and aggregate
// into a report. An empty parse yields an error report, not an error.
func AnalyzeFile(ctx context.Context, pricer oracle.Pricer, args AnalyzeArgs) (models.AnalysisReport, error) {
	if args.Now.IsZero() {
		args.Now = time.Now()
	}

	formatType, err := parsers.DetectFormat(args.FilePath)
	if err != nil {
		return models.AnalysisReport{}, err
	}

	var options []models.Option
	var skipped []parsers.SkippedRow

	switch formatType {
	case models.FormatTypePortfolio:
		options, skipped, err = parsers.ParsePortfolio(args.FilePath, args.Config)
	default:
		options, skipped, err = parsers.ParseOptionChain(args.FilePath, args.Config, args.Now)
	}
	if err != nil {
		return models.AnalysisReport{}, fmt.Errorf("failed to parse %s: %v", args.FilePath, err)
	}

	if len(skipped) > 0 {
		log.Warnf("Skipped %d rows while parsing %s", len(skipped), filepath.Base(args.FilePath))
	}

	if len(options) == 0 {
		return models.NewErrorReport(models.NoValidOptionsErr.Error()), nil
	}

	spot := ResolveSpotPrice(args.SpotOverride, formatType, options, args.Config)

	log.Infof("Using spot price: %.2f", spot)
	log.Infof("Found %d options to analyze", len(options))

	results := PriceOptions(ctx, pricer, options, spot, args.RiskFreeRate)
	summary := BuildPortfolioSummary(results, spot)

	return models.AnalysisReport{
		Metadata: models.ReportMetadata{
			SourceName:   filepath.Base(args.FilePath),
			FormatType:   formatType,
			OptionCount:  len(results),
			SpotPrice:    spot,
			RiskFreeRate: args.RiskFreeRate,
			Timestamp:    args.Now.Format(time.RFC3339),
			AnalysisID:   uuid.New().String(),
		},
		Options: results,
		Summary: summary,
	}, nil
}
