package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// OptimizeCmd returns the optimize command
func OptimizeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Drive the server-side assignment solver",
	}
	cmd.AddCommand(optimizeRunCmd(app))
	cmd.AddCommand(optimizeStatusCmd(app))
	return cmd
}

func optimizeRunCmd(app *App) *cobra.Command {
	var noSave, noClear, noFiles, noStats bool

	cmd := &cobra.Command{
		Use:   "run [session-id]",
		Short: "Run the solver for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}

			req := models.DefaultOptimizationRequest(id)
			req.Save = !noSave
			req.Clear = !noClear
			req.GenerateFiles = !noFiles
			req.GenerateStats = !noStats

			res, err := app.Client().RunOptimization(context.Background(), req)
			if err != nil {
				return err
			}
			if !res.Success {
				color.Red("✗ %s", res.Message)
				return nil
			}
			color.Green("✓ %s", res.Message)
			fmt.Printf("  affectations: %d\n", res.AssignmentCount)
			if res.DurationSeconds > 0 {
				fmt.Printf("  durée: %.1fs\n", res.DurationSeconds)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the computed assignments")
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "keep existing assignments of the session")
	cmd.Flags().BoolVar(&noFiles, "no-files", false, "skip server-side document generation")
	cmd.Flags().BoolVar(&noStats, "no-stats", false, "skip server-side statistics generation")
	return cmd
}

func optimizeStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status [session-id]",
		Short: "Report whether a session already has assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}
			status, err := app.Client().OptimizationStatus(context.Background(), id)
			if err != nil {
				return err
			}
			if status.HasAssignments {
				fmt.Printf("Session %d: %d affectations\n", id, status.AssignmentCount)
			} else {
				fmt.Printf("Session %d: aucune affectation\n", id)
			}
			return nil
		},
	}
}
