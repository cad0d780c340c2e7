package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "safpath",
	Short: "Aviation fuel-demand and SAF compliance scenario calculator",
	Long: `safpath models multi-decade aviation fuel demand and derives emissions,
volume-split and compliance-cost trajectories under alternative sustainable
aviation fuel adoption policies (market-driven and mandated scenarios).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(filterEUCmd)
}

// newLogger builds the console logger; debug level when --verbose is set.
func newLogger() (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
