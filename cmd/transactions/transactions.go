// Package transactions handles the stored transaction listing command
package transactions

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"kasozi/momo-etl/cmd/root"
	"kasozi/momo-etl/internal/store"

	"github.com/spf13/cobra"
)

var (
	// Category filters by transaction category
	Category string

	// Type filters by transaction type
	Type string

	// Network filters by sender network
	Network string

	// Limit caps the number of rows printed
	Limit int
)

// Cmd represents the transactions command
var Cmd = &cobra.Command{
	Use:   "transactions",
	Short: "List stored transactions",
	Long: `List transactions from the database, newest first. Filters on
category, type and sender network can be combined.`,
	Run: transactionsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Category, "category", "c", "", "Filter by category (e.g. TRANSFER, AIRTIME)")
	Cmd.Flags().StringVarP(&Type, "type", "t", "", "Filter by type (DEBIT or CREDIT)")
	Cmd.Flags().StringVarP(&Network, "network", "n", "", "Filter by sender network (e.g. MTN)")
	Cmd.Flags().IntVarP(&Limit, "limit", "l", 20, "Maximum number of transactions to show")
}

func transactionsFunc(cmd *cobra.Command, args []string) {
	st, err := store.Open(root.Cfg.Database.Path, root.Log)
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() { _ = st.Close() }()

	txs, err := st.List(store.Filter{
		Category:      strings.ToUpper(Category),
		Type:          strings.ToUpper(Type),
		SenderNetwork: strings.ToUpper(Network),
		Limit:         Limit,
	})
	if err != nil {
		root.Log.Fatalf("Error listing transactions: %v", err)
	}

	if len(txs) == 0 {
		fmt.Fprintln(os.Stdout, "No transactions found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tTYPE\tCATEGORY\tNETWORK\tDESCRIPTION")
	for _, tx := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\t%s\t%s\n",
			tx.TransactionID,
			tx.TransactionDate.Format("2006-01-02 15:04"),
			tx.Amount.StringFixed(2), tx.Currency,
			tx.TransactionType,
			tx.Category,
			tx.SenderNetwork,
			truncate(tx.Description, 40))
	}
	_ = w.Flush()
}

// truncate shortens s to at most n runes, never splitting a rune.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
