package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecomlab/datagen/internal/config"
	"github.com/ecomlab/datagen/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a generated dataset on disk against its invariants",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		f := cmd.Flags()
		if f.Changed("raw-dir") {
			cfg.Output.RawDir, _ = f.GetString("raw-dir")
		}
		if f.Changed("processed-dir") {
			cfg.Output.ProcessedDir, _ = f.GetString("processed-dir")
		}

		report, err := validate.Dataset(cfg)
		if err != nil {
			return err
		}
		fmt.Print(report)

		if !report.OK() {
			return fmt.Errorf("dataset validation failed: %d check(s)", len(report.Issues))
		}
		return nil
	},
}

func init() {
	f := validateCmd.Flags()
	f.String("raw-dir", "", "directory holding the raw variant")
	f.String("processed-dir", "", "directory holding the processed variant")
}
