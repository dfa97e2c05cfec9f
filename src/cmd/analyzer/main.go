package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quantfolio/option-analyzer/src/oracle"
	"github.com/quantfolio/option-analyzer/src/render"
	"github.com/quantfolio/option-analyzer/src/services"
	"github.com/quantfolio/option-analyzer/src/utils"
)

type RunArgs struct {
	InFile     string
	Output     string
	OutFile    string
	Spot       float64
	Rate       float64
	OraclePath string
	ConfigFile string
	GoEnv      string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/analyzer/main.go --inFile input/option-chain-ED-NIFTY-14-Aug-2025.csv",
	Short: "Analyze option csv data: theoretical prices, greeks and portfolio risk via the pricing engine.",
	Run: func(cmd *cobra.Command, args []string) {
		inFile, err := cmd.Flags().GetString("inFile")
		if err != nil {
			log.Fatalf("error getting inFile: %v", err)
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			log.Fatalf("error getting output: %v", err)
		}

		outFile, err := cmd.Flags().GetString("outFile")
		if err != nil {
			log.Fatalf("error getting outFile: %v", err)
		}

		spot, err := cmd.Flags().GetFloat64("spot")
		if err != nil {
			log.Fatalf("error getting spot: %v", err)
		}

		rate, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			log.Fatalf("error getting rate: %v", err)
		}

		oraclePath, err := cmd.Flags().GetString("oracle")
		if err != nil {
			log.Fatalf("error getting oracle: %v", err)
		}

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		if err := run(RunArgs{
			InFile:     inFile,
			Output:     output,
			OutFile:    outFile,
			Spot:       spot,
			Rate:       rate,
			OraclePath: oraclePath,
			ConfigFile: configFile,
			GoEnv:      goEnv,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(".", args.GoEnv); err != nil {
		return err
	}

	cfg, err := utils.LoadAnalyzerConfig(args.ConfigFile)
	if err != nil {
		return err
	}

	// Resolve the pricing engine before touching the input: a missing
	// engine aborts the run before any parsing.
	oraclePath := args.OraclePath
	if oraclePath == "" {
		oraclePath, err = oracle.FindExecutable(cfg)
		if err != nil {
			return err
		}
	}

	pricer := oracle.NewCommandOracle(oraclePath, cfg.OracleTimeout())

	var spotOverride *float64
	if args.Spot > 0 {
		spotOverride = &args.Spot
	}

	log.Infof("Analyzing: %s", args.InFile)

	report, err := services.AnalyzeFile(context.Background(), pricer, services.AnalyzeArgs{
		FilePath:     args.InFile,
		SpotOverride: spotOverride,
		RiskFreeRate: args.Rate,
		Config:       cfg,
	})
	if err != nil {
		return err
	}

	if report.IsError() {
		log.Warnf("Analysis produced no results: %s", report.Error)
	}

	output, err := render.Render(report, render.OutputFormat(args.Output))
	if err != nil {
		return err
	}

	return utils.WriteOutput(output, args.OutFile)
}

func main() {
	runCmd.PersistentFlags().String("inFile", "", "The csv file to analyze.")
	runCmd.PersistentFlags().String("output", string(render.OutputFormatTable), "Output format: table, json or csv.")
	runCmd.PersistentFlags().String("outFile", "", "Write results to a file instead of stdout.")
	runCmd.PersistentFlags().Float64("spot", 0, "Spot price override. Auto-detected from the input when omitted.")
	runCmd.PersistentFlags().Float64("rate", 0.05, "Risk-free rate.")
	runCmd.PersistentFlags().String("oracle", "", "Path to the pricing engine executable. Conventional build paths are searched when omitted.")
	runCmd.PersistentFlags().String("config", "", "Optional yaml file overriding analyzer defaults.")
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")

	runCmd.MarkPersistentFlagRequired("inFile")

	cobra.CheckErr(runCmd.Execute())
}
