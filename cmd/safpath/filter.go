package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/safmod/saf-pathways/internal/dataprep"
	"github.com/spf13/cobra"
)

var (
	filterOutDir    string
	filterEntityCol string
)

var filterEUCmd = &cobra.Command{
	Use:   "filter-eu <input.csv> [more.csv...]",
	Short: "Filter country-level CSVs down to EU member rows",
	Long: `filter-eu keeps only rows naming an EU-27 member state in the entity
column, writing <stem>_eu.csv per input. Used to clean the raw emissions and
traffic datasets before deriving forecast parameters.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFilterEU,
}

func init() {
	filterEUCmd.Flags().StringVarP(&filterOutDir, "output", "o", "clean_data", "output directory")
	filterEUCmd.Flags().StringVar(&filterEntityCol, "entity-col", dataprep.DefaultEntityColumn, "country column name")
}

func runFilterEU(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := os.MkdirAll(filterOutDir, 0755); err != nil {
		return err
	}
	for _, path := range args {
		in, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		outPath := filepath.Join(filterOutDir, stem+"_eu.csv")
		out, err := os.Create(outPath)
		if err != nil {
			in.Close()
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		kept, err := dataprep.FilterEU(in, out, filterEntityCol)
		in.Close()
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Warnf("skipping %s: %v", path, err)
			continue
		}
		if kept == 0 {
			log.Warnf("no EU rows found in %s", path)
			continue
		}
		log.Infof("wrote %s (%d rows)", outPath, kept)
	}
	return nil
}
