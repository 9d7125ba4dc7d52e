package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/exd-tools/surveil-admin/internal/models"
	"github.com/exd-tools/surveil-admin/pkg/export"
	"github.com/exd-tools/surveil-admin/pkg/storage"
)

// ExportCmd returns the export command
func ExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render backend data into local files",
	}
	cmd.AddCommand(exportAssignmentsCmd(app))
	cmd.AddCommand(exportQuotasCmd(app))
	return cmd
}

func exportAssignmentsCmd(app *App) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "assignments [session-id]",
		Short: "Export the assignment list of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			list, err := app.Client().ListAssignments(ctx, models.AssignmentFilter{SessionID: id})
			if err != nil {
				return err
			}
			dir, err := app.Client().TeacherDirectory(ctx)
			if err != nil {
				return err
			}

			var data []byte
			var filename string
			switch format {
			case "csv":
				data, err = export.NewCSVExporter().Render(export.AssignmentsDataset(list, dir))
				filename = fmt.Sprintf("affectations_session_%d.csv", id)
			case "pdf":
				title := fmt.Sprintf("Affectations session %d", id)
				data, err = export.NewPDFExporter().Render(export.AssignmentsDataset(list, dir), title)
				filename = fmt.Sprintf("affectations_session_%d.pdf", id)
			case "json":
				data, err = export.NewJSONExporter().Render(list)
				filename = fmt.Sprintf("affectations_session_%d.json", id)
			default:
				return fmt.Errorf("unknown format %q (csv, pdf, json)", format)
			}
			if err != nil {
				return err
			}
			if output != "" {
				filename = output
			}

			store, err := storage.NewLocalStorage(app.Config.Exports.Dir)
			if err != nil {
				return err
			}
			path, err := store.Save(filename, data)
			if err != nil {
				return err
			}
			color.Green("✓ %s", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv, pdf or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, relative to the exports directory")
	return cmd
}

func exportQuotasCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quotas [session-id]",
		Short: "Export the quota accounting of a session as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			quotas, err := app.Client().ListTeacherQuotas(ctx, id)
			if err != nil {
				return err
			}
			dir, err := app.Client().TeacherDirectory(ctx)
			if err != nil {
				return err
			}

			data, err := export.NewCSVExporter().Render(export.QuotasDataset(quotas, dir))
			if err != nil {
				return err
			}
			store, err := storage.NewLocalStorage(app.Config.Exports.Dir)
			if err != nil {
				return err
			}
			path, err := store.Save(fmt.Sprintf("quotas_session_%d.csv", id), data)
			if err != nil {
				return err
			}
			color.Green("✓ %s", path)
			return nil
		},
	}
}
