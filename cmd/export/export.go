// Package export handles dashboard and CSV export commands
package export

import (
	"kasozi/momo-etl/cmd/root"
	"kasozi/momo-etl/internal/store"

	"github.com/spf13/cobra"
)

// CSVPath optionally writes the full transaction list as CSV as well
var CSVPath string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the analytics dashboard from stored transactions",
	Long: `Export the dashboard JSON document from the transactions already
loaded into the database. Use --csv to additionally write the full
transaction list as a CSV file.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVar(&CSVPath, "csv", "", "Also export all transactions as CSV to this path")
}

func exportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Export command called")
	root.Log.Info("Output dashboard file: " + root.OutputPath())

	st, err := store.Open(root.Cfg.Database.Path, root.Log)
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() { _ = st.Close() }()

	if err := st.ExportDashboard(root.OutputPath()); err != nil {
		root.Log.Fatalf("Error exporting dashboard: %v", err)
	}

	if CSVPath != "" {
		if err := st.ExportCSV(CSVPath); err != nil {
			root.Log.Fatalf("Error exporting CSV: %v", err)
		}
		root.Log.Info("CSV export written to " + CSVPath)
	}

	root.Log.Info("Export completed successfully!")
}
