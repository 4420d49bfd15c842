// Package pipeline handles the full ETL run command
package pipeline

import (
	"kasozi/momo-etl/cmd/root"
	"kasozi/momo-etl/internal/logging"
	"kasozi/momo-etl/internal/pipeline"
	"kasozi/momo-etl/internal/store"

	"github.com/spf13/cobra"
)

var (
	// BatchSize overrides the configured upsert batch size when positive
	BatchSize int

	// SkipValidation bypasses the structural XML check before extraction
	SkipValidation bool
)

// Cmd represents the run command
var Cmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full ETL pipeline",
	Long: `Run the full ETL pipeline: extract SMS records from the input XML,
normalize and categorize them, load them into sqlite and export the
dashboard JSON document.`,
	Run: runFunc,
}

func init() {
	Cmd.Flags().IntVar(&BatchSize, "batch-size", 0, "Upsert batch size (0 uses the configured value)")
	Cmd.Flags().BoolVar(&SkipValidation, "skip-validation", false, "Skip structural XML validation before extraction")
}

func runFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("ETL run command called")
	root.Log.Info("Input XML file: " + root.InputPath())
	root.Log.Info("Output dashboard file: " + root.OutputPath())

	if BatchSize > 0 {
		root.Cfg.ETL.BatchSize = BatchSize
	}

	st, err := store.Open(root.Cfg.Database.Path, root.Log)
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() { _ = st.Close() }()

	p := pipeline.New(root.Cfg, root.Rules, st, root.Log)
	summary, err := p.RunAndExport(root.InputPath(), root.OutputPath(), SkipValidation)
	if err != nil {
		root.Log.Fatalf("Pipeline failed: %v", err)
	}

	root.Log.Info("ETL pipeline completed successfully!",
		logging.Field{Key: "parsed", Value: summary.Parsed},
		logging.Field{Key: "loaded", Value: summary.Loaded},
		logging.Field{Key: "dead_lettered", Value: summary.DeadLettered},
		logging.Field{Key: "dropped", Value: summary.Dropped})
}
