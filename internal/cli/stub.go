package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exd-tools/surveil-admin/internal/stub"
)

// StubCmd returns the stub command
func StubCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Run the bundled in-memory backend",
	}
	cmd.AddCommand(stubServeCmd(app))
	return cmd
}

func stubServeCmd(app *App) *cobra.Command {
	var port int
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the in-memory backend for development and demos",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := stub.NewStore()
			if seed {
				stub.SeedDemo(store)
			}
			server := stub.NewServer(store, app.Logger)
			return server.Run(fmt.Sprintf(":%d", port))
		},
	}
	cmd.Flags().IntVar(&port, "port", app.Config.Stub.Port, "listen port")
	cmd.Flags().BoolVar(&seed, "seed", app.Config.Stub.Seed, "preload the demo dataset")
	return cmd
}
