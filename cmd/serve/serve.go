// Package serve handles the HTTP API server command
package serve

import (
	"kasozi/momo-etl/cmd/root"
	"kasozi/momo-etl/internal/api"
	"kasozi/momo-etl/internal/store"

	"github.com/spf13/cobra"
)

// Addr overrides the configured listen address when set
var Addr string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only transaction API over HTTP",
	Long: `Start an HTTP server exposing the stored transactions and analytics
as JSON endpoints. The server is read-only; loading data still happens
through the run and seed commands.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&Addr, "addr", "", "Listen address (overrides configuration, e.g. :8001)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	addr := root.Cfg.API.Addr
	if Addr != "" {
		addr = Addr
	}

	st, err := store.Open(root.Cfg.Database.Path, root.Log)
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() { _ = st.Close() }()

	srv := api.NewServer(st, root.Log)
	root.Log.Info("API server listening on " + addr)
	if err := srv.Run(addr); err != nil {
		root.Log.Fatalf("API server stopped: %v", err)
	}
}
