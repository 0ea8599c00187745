package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"cardiotrend/adapters/excel"
	"cardiotrend/app"
	"cardiotrend/domain/trend"
	"cardiotrend/internal/config"
	"cardiotrend/internal/testkit"
	"cardiotrend/ports"
)

func main() {
	// Optional .env for local runs; missing file is fine
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "cardiotrend",
		Short: "Heart-rate trend forecasting and clinical validation",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newDemoCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var inputFile string
	var sheet string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze monthly readings from a local spreadsheet (xlsx or csv)",
		Long: `Analyze monthly heart-rate readings from a local spreadsheet.

The first column carries the period label (YYYY-MM); reading columns may be
named bpm, value, heartRate, avgBpm or reading.

Example: cardiotrend analyze --input readings.xlsx --sheet Readings`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if inputFile == "" {
				inputFile = cfg.Input.ExcelFile
			}
			if inputFile == "" {
				return fmt.Errorf("no input file: pass --input or set READINGS_FILE")
			}
			if sheet == "" {
				sheet = cfg.Input.Sheet
			}

			readerCfg := excel.DefaultReaderConfig()
			readerCfg.FilePath = inputFile
			readerCfg.Sheet = sheet

			return runAnalysis(cmd.Context(), excel.NewReadingReader(readerCfg), cfg)
		},
	}

	cmd.Flags().StringVar(&inputFile, "input", "", "Spreadsheet with monthly readings")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name for xlsx input")

	return cmd
}

func newDemoCmd() *cobra.Command {
	var months int
	var seed int64
	var base, drift float64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Analyze a deterministic synthetic series",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			seriesCfg := testkit.DefaultSeriesConfig()
			seriesCfg.Months = months
			seriesCfg.Seed = seed
			seriesCfg.BaseBPM = base
			seriesCfg.Trend = drift

			source := testkit.NewInMemoryReadingSource(testkit.GenerateReadings(seriesCfg))
			return runAnalysis(cmd.Context(), source, cfg)
		},
	}

	cmd.Flags().IntVar(&months, "months", 24, "Number of synthetic months")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic generation")
	cmd.Flags().Float64Var(&base, "base", 72, "Baseline BPM at the first month")
	cmd.Flags().Float64Var(&drift, "drift", 0.4, "BPM drift per month")

	return cmd
}

func runAnalysis(ctx context.Context, source ports.ReadingSourcePort, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	service := app.NewAnalysisService(source, nil, cfg.Thresholds, app.AnalysisRequest{
		Folds:    cfg.Analysis.Folds,
		Parallel: cfg.Analysis.Parallel,
	})

	bundle, err := service.Run(ctx)
	if err != nil {
		return err
	}

	printBundle(bundle)
	return nil
}

func printBundle(b *trend.AnalysisBundle) {
	if b.Empty() {
		fmt.Println("No plausible readings to analyze.")
		return
	}

	fmt.Printf("Run %s — %d samples (%d raw, %d dropped)\n",
		b.Manifest.RunID, b.Manifest.SampleCount, b.Manifest.RawCount, b.Manifest.Dropped)
	fmt.Printf("Model: value = %.3f·t + %.3f\n\n", b.Slope, b.Interc)

	fmt.Printf("Validation:  MAE %.2f  RMSE %.2f  R² %.3f\n",
		b.Metrics.MAE, b.Metrics.RMSE, b.Metrics.R2)
	fmt.Printf("Clinical validity: MAE %s, RMSE %s, R² %s → %s\n\n",
		passFail(b.Validity.MAEAcceptable), passFail(b.Validity.RMSEAcceptable),
		b.Validity.R2Status, verdict(b.Validity.Valid))

	if len(b.FoldResults) > 0 {
		fmt.Println("Cross-validation:")
		for _, fr := range b.FoldResults {
			fmt.Printf("  fold %d: MAE %.2f  RMSE %.2f  variance %.2f  (%d points)\n",
				fr.Fold, fr.MAE, fr.RMSE, fr.Variance, len(fr.Points))
		}
		fmt.Println()
	}

	fmt.Printf("Residuals: %.1f%% within clinical tolerance (%d of %d)\n\n",
		b.Residuals.WithinPercentage, b.Residuals.WithinTolerance, len(b.Residuals.Records))

	fmt.Println("Forecast:")
	for _, p := range b.Forecast {
		fmt.Printf("  %s: %.1f ±%.1f BPM  [%s] %s\n",
			p.Period, p.Predicted, p.Confidence, p.Status, p.Assessment)
	}
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func verdict(valid bool) string {
	if valid {
		return "clinically acceptable"
	}
	return "not clinically acceptable"
}
