// Package status handles the database health check command
package status

import (
	"fmt"
	"os"

	"kasozi/momo-etl/cmd/root"
	"kasozi/momo-etl/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the status command
var Cmd = &cobra.Command{
	Use:   "status",
	Short: "Check database connectivity and show the transaction count",
	Long: `Open the configured database, ping it and report how many
transactions it currently holds.`,
	Run: statusFunc,
}

func statusFunc(cmd *cobra.Command, args []string) {
	st, err := store.Open(root.Cfg.Database.Path, root.Log)
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() { _ = st.Close() }()

	if err := st.Ping(); err != nil {
		root.Log.Fatalf("Database ping failed: %v", err)
	}

	count, err := st.Count()
	if err != nil {
		root.Log.Fatalf("Error counting transactions: %v", err)
	}

	fmt.Fprintf(os.Stdout, "database: %s\nstatus: ok\ntransactions: %d\n",
		root.Cfg.Database.Path, count)
}
