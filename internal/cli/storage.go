package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/exd-tools/surveil-admin/pkg/jobs"
	"github.com/exd-tools/surveil-admin/pkg/storage"
)

// StorageCmd returns the storage command
func StorageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Manage backend-generated documents",
	}
	cmd.AddCommand(storageListCmd(app))
	cmd.AddCommand(storageDownloadCmd(app))
	cmd.AddCommand(storageDeleteCmd(app))
	return cmd
}

func storageListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List documents available on the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := app.Client().ListStoredFiles(context.Background())
			if err != nil {
				return err
			}
			if listing.Count == 0 {
				fmt.Println("No files on the backend.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FICHIER\tTAILLE\tCRÉÉ")
			for _, f := range listing.Files {
				fmt.Fprintf(w, "%s\t%d\t%s\n", f.Filename, f.Size, f.Created)
			}
			return w.Flush()
		},
	}
}

func storageDownloadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Download every backend document into the local exports directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			listing, err := app.Client().ListStoredFiles(ctx)
			if err != nil {
				return err
			}
			if listing.Count == 0 {
				fmt.Println("No files to download.")
				return nil
			}

			store, err := storage.NewLocalStorage(app.Config.Exports.Dir)
			if err != nil {
				return err
			}

			tasks := make(map[string]jobs.Task, len(listing.Files))
			for _, f := range listing.Files {
				file := f
				tasks[file.Filename] = func(ctx context.Context) error {
					dest, err := store.Create(file.Filename)
					if err != nil {
						return err
					}
					defer dest.Close() //nolint:errcheck
					_, err = app.Client().DownloadStoredFile(ctx, file.DownloadURL, dest)
					return err
				}
			}

			pool := jobs.NewPool(jobs.PoolConfig{
				Workers:    app.Config.API.DownloadWorkers,
				MaxRetries: app.Config.API.DownloadRetries,
				Logger:     app.Logger,
			})
			failed := 0
			for _, res := range pool.Run(ctx, tasks) {
				if res.Err != nil {
					failed++
					color.Red("✗ %s: %v", res.Name, res.Err)
					continue
				}
				color.Green("✓ %s", res.Name)
			}
			if failed > 0 {
				return fmt.Errorf("%d download(s) failed", failed)
			}
			return nil
		},
	}
}

func storageDeleteCmd(app *App) *cobra.Command {
	var sessionID int
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete backend documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if sessionID > 0 {
				if !yes && !confirm(os.Stdin, os.Stdout, fmt.Sprintf("Supprimer les documents de la session %d ?", sessionID)) {
					return nil
				}
				if err := app.Client().DeleteSessionFiles(ctx, sessionID); err != nil {
					return err
				}
			} else {
				if !yes && !confirm(os.Stdin, os.Stdout, "Supprimer tous les documents du backend ?") {
					return nil
				}
				if err := app.Client().DeleteAllStoredFiles(ctx); err != nil {
					return err
				}
			}
			color.Green("✓ Documents supprimés.")
			return app.Client().CleanupEmptyDirs(ctx)
		},
	}
	cmd.Flags().IntVar(&sessionID, "session", 0, "restrict to one session")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
