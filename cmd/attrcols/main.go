// Package main provides the CLI entry point for attrcols.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/attrcols-go/pkg/attrcols"
	"github.com/ukaji3/attrcols-go/pkg/attrcols/models"
	"github.com/ukaji3/attrcols-go/pkg/attrcols/output"
)

var (
	outputPath string
	configPath string
	sheet      string
	format     string
	trimQuotes bool
	pretty     bool
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "attrcols [input.csv|input.xlsx]",
		Short: "Promote order attributes into columns",
		Long: `attrcols reads an order export (csv or xlsx), parses the "key: value" lines
of its "Note Attributes" or "Additional Details" column, and writes a copy
with one column per tracked key appended. Missing keys are written as NA.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>-updated.<format>)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file (default: $"+configEnvVar+")")
	rootCmd.Flags().StringVar(&sheet, "sheet", "Orders", "Sheet holding the orders (xlsx input and output)")
	rootCmd.Flags().StringVar(&format, "format", formatXLSX, "Output format: xlsx, csv, json")
	rootCmd.Flags().BoolVar(&trimQuotes, "trim-quotes", false, "Strip enclosing quotes from every output cell")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// .env is optional
	_ = godotenv.Load()

	path := configPath
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	if err := cfg.applyFlags(cmd.Flags()); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := attrcols.DefaultOptions()
	opts.TrimQuotes = cfg.TrimQuotes
	opts.Logger = logger
	opts.SheetName = cfg.Sheet

	result, err := attrcols.Convert(inputPath, opts)
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		return fmt.Errorf("conversion failed: %w", err)
	}

	dest := outputPath
	if dest == "" {
		dest = attrcols.DefaultOutputPath(inputPath, cfg.Format)
	}
	if err := writeResult(result, cfg, dest); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("output written", zap.String("path", dest), zap.String("format", cfg.Format))
	fmt.Fprintln(cmd.OutOrStdout(), dest)
	return nil
}

func writeResult(result *models.Result, cfg Config, dest string) error {
	switch cfg.Format {
	case formatCSV:
		f, err := os.Create(dest)
		if err != nil {
			return err
		}
		if err := output.WriteCSV(f, result.Grid); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case formatJSON:
		jsonData, err := output.ToJSON(result, cfg.Pretty)
		if err != nil {
			return err
		}
		return os.WriteFile(dest, jsonData, 0644)
	default:
		sheetName := cfg.Sheet
		if sheetName == "" {
			sheetName = attrcols.DefaultSheetName
		}
		return output.WriteXLSX(result.Grid, sheetName, dest)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
