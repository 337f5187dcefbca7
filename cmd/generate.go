package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ecomlab/datagen/internal/config"
	"github.com/ecomlab/datagen/internal/generator"
	"github.com/ecomlab/datagen/internal/logger"
	"github.com/ecomlab/datagen/internal/util"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the sample dataset (raw + processed CSV variants)",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1) load config, overlay explicitly set flags
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		applyGenerateFlags(cmd, &cfg)

		logger.Init(cfg.Log.Level)
		defer func() { _ = logger.Log.Sync() }()
		log := logger.Log.With(zap.String("run_id", util.NewRunID()))

		// 2) validate + run; New rejects bad parameters before any file write
		gen, err := generator.New(cfg, log)
		if err != nil {
			return err
		}
		log.Info("starting generation", zap.Uint64("seed", gen.Seed()))
		summary, err := gen.Run()
		if err != nil {
			return err
		}

		fmt.Print(summary)
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.Int("customers", 0, "number of customers to generate")
	f.Int("products", 0, "number of products to generate")
	f.Int("transactions", 0, "number of transactions to generate")
	f.Uint64("seed", 0, "random seed (0 = randomize each run)")
	f.Float64("duplicate-rate", 0, "fraction of raw transaction rows duplicated")
	f.Float64("missing-rate", 0, "fraction of nullable cells nulled in the raw variant")
	f.String("raw-dir", "", "output directory for the raw variant")
	f.String("processed-dir", "", "output directory for the processed variant")
}

// applyGenerateFlags overlays flags the user actually set on top of the
// loaded config, so the precedence is defaults < file < env < flags.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("customers") {
		cfg.Counts.Customers, _ = f.GetInt("customers")
	}
	if f.Changed("products") {
		cfg.Counts.Products, _ = f.GetInt("products")
	}
	if f.Changed("transactions") {
		cfg.Counts.Transactions, _ = f.GetInt("transactions")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("duplicate-rate") {
		cfg.Defects.DuplicateRate, _ = f.GetFloat64("duplicate-rate")
	}
	if f.Changed("missing-rate") {
		cfg.Defects.MissingRate, _ = f.GetFloat64("missing-rate")
	}
	if f.Changed("raw-dir") {
		cfg.Output.RawDir, _ = f.GetString("raw-dir")
	}
	if f.Changed("processed-dir") {
		cfg.Output.ProcessedDir, _ = f.GetString("processed-dir")
	}
}
