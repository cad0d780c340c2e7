package main

import (
	"fmt"

	"github.com/safmod/saf-pathways/internal/calculation"
	"github.com/safmod/saf-pathways/internal/config"
	"github.com/safmod/saf-pathways/internal/domain"
	"github.com/safmod/saf-pathways/internal/output"
	"github.com/spf13/cobra"
)

var (
	configFile     string
	outputFormat   string
	saveConfigPath string
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run the scenario model and write a report",
	Long: `Calculate projects fuel demand from the configured base year parameters,
evaluates each requested policy scenario against it and writes the result
table in the selected format. Without --config the reference assumptions and
the example forecast (80 Mt, 2.5% growth) are used.`,
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML run configuration")
	calculateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (overrides config)")
	calculateCmd.Flags().StringVar(&saveConfigPath, "save-config", "", "write the effective configuration to this file")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var cfg *domain.Configuration
	if configFile != "" {
		cfg, err = config.NewInputParser().LoadFromFile(configFile)
		if err != nil {
			return err
		}
	} else {
		cfg = config.DefaultConfiguration()
		log.Info("no config given, using reference assumptions and example forecast")
	}
	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}

	engine, err := calculation.NewCalculationEngineWithAssumptions(cfg.Assumptions)
	if err != nil {
		return err
	}
	engine.SetLogger(log)

	comparison, err := engine.RunComparison(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if saveConfigPath != "" {
		if err := output.SaveConfiguration(cfg, saveConfigPath); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		log.Infof("configuration saved to %s", saveConfigPath)
	}
	return output.GenerateReport(comparison, cfg.Output.Format)
}
