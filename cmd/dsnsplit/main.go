package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dsn-tools/dsnsplit/internal/config"
	"github.com/dsn-tools/dsnsplit/internal/pipeline"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dsnsplit [flags] INPUT_DIR OUTPUT_DIR",
	Short: "Split multi-organization declaration files into per-organization monthly archives",
	Long: `dsnsplit converts multi-organization payroll declaration files (.dsn) into
one file per organization per reporting month, then bundles each
organization's monthly files into a single zip archive.

Directories can also come from a config file (--config) or from the
DSNSPLIT_INPUT_DIR / DSNSPLIT_OUTPUT_DIR environment variables; positional
arguments take precedence.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return pipeline.NewArgumentError("loading configuration", err)
	}

	// Positional arguments win over config file and environment
	if len(args) > 0 {
		cfg.Input.Directory = args[0]
	}
	if len(args) > 1 {
		cfg.Output.Directory = args[1]
	}

	runner, err := pipeline.NewRunner(cfg, logger)
	if err != nil {
		return err
	}

	printBanner(cfg)

	report, err := runner.Run()
	if err != nil {
		fmt.Printf("Run failed after %s: %v\n", report.Elapsed.Round(time.Millisecond), err)
		return err
	}

	fmt.Printf("Done in %s: %d file(s) processed, %d skipped, %d declaration(s), %d archive(s) for %d organization(s)\n",
		report.Elapsed.Round(time.Millisecond),
		report.FilesProcessed, report.FilesSkipped,
		report.Declarations, report.Archives, report.Organizations)

	return nil
}

func printBanner(cfg *config.Config) {
	fmt.Printf("\n")
	fmt.Printf("╔══════════════════════════════════════════════════════╗\n")
	fmt.Printf("║  dsnsplit - declaration archive builder              ║\n")
	fmt.Printf("╠══════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Version:    %-40s║\n", Version)
	fmt.Printf("║  Build Time: %-40s║\n", BuildTime)
	fmt.Printf("║  Input:      %-40s║\n", cfg.Input.Directory)
	fmt.Printf("║  Output:     %-40s║\n", cfg.Output.Directory)
	fmt.Printf("║  Encoding:   %-40s║\n", cfg.Format.Encoding)
	fmt.Printf("╚══════════════════════════════════════════════════════╝\n")
	fmt.Printf("\n")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (created with defaults if missing)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
