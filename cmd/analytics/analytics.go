// Package analytics handles the aggregate reporting command
package analytics

import (
	"encoding/json"
	"fmt"
	"os"

	"kasozi/momo-etl/cmd/root"
	"kasozi/momo-etl/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the analytics command
var Cmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show aggregate analytics for stored transactions",
	Long: `Compute totals, category, type, network and monthly breakdowns over
the transactions in the database and print them as JSON.`,
	Run: analyticsFunc,
}

func analyticsFunc(cmd *cobra.Command, args []string) {
	st, err := store.Open(root.Cfg.Database.Path, root.Log)
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() { _ = st.Close() }()

	summary, err := st.Analytics()
	if err != nil {
		root.Log.Fatalf("Error computing analytics: %v", err)
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		root.Log.Fatalf("Error encoding analytics: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
}
