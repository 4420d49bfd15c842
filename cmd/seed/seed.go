// Package seed handles the sample data generation command
package seed

import (
	"math/rand"
	"time"

	"kasozi/momo-etl/cmd/root"
	"kasozi/momo-etl/internal/logging"
	"kasozi/momo-etl/internal/seed"
	"kasozi/momo-etl/internal/store"

	"github.com/spf13/cobra"
)

// Count is the number of sample transactions to generate
var Count int

// Cmd represents the seed command
var Cmd = &cobra.Command{
	Use:   "seed",
	Short: "Load generated sample transactions into the database",
	Long: `Generate random but realistic sample transactions and upsert them
into the database. Useful for trying out the analytics and API
endpoints without a real SMS export.`,
	Run: seedFunc,
}

func init() {
	Cmd.Flags().IntVar(&Count, "count", 50, "Number of sample transactions to generate")
}

func seedFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Seed command called")

	st, err := store.Open(root.Cfg.Database.Path, root.Log)
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() { _ = st.Close() }()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	txs := seed.Generate(Count, time.Now(), rng)
	loaded, failed := st.UpsertAll(txs)

	root.Log.Info("Seed completed successfully!",
		logging.Field{Key: "loaded", Value: loaded},
		logging.Field{Key: "failed", Value: failed})
}
