package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// QuotasCmd returns the quotas command
func QuotasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotas",
		Short: "Browse grades and quota accounting",
	}
	cmd.AddCommand(quotasGradesCmd(app))
	cmd.AddCommand(quotasListCmd(app))
	cmd.AddCommand(quotasResetCmd(app))
	cmd.AddCommand(quotasSetGradeCmd(app))
	return cmd
}

func quotasSetGradeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-grade [grade-code] [quota]",
		Short: "Change the surveillance quota of a grade",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quota, err := strconv.Atoi(args[1])
			if err != nil || quota < 0 {
				return fmt.Errorf("invalid quota %q", args[1])
			}
			if err := app.Client().UpdateGradeQuota(context.Background(), args[0], quota); err != nil {
				return err
			}
			color.Green("✓ Quota mis à jour.")
			return nil
		},
	}
}

func quotasResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset [session-id]",
		Short: "Reset the realised quota counters of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}
			if !yes && !confirm(os.Stdin, os.Stdout, fmt.Sprintf("Réinitialiser les quotas de la session %d ?", id)) {
				return nil
			}
			return app.Client().ResetSessionQuotas(context.Background(), id)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func quotasGradesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "List grades and their surveillance quotas",
		RunE: func(cmd *cobra.Command, args []string) error {
			grades, err := app.Client().ListGrades(context.Background())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tGRADE\tQUOTA")
			for _, g := range grades {
				fmt.Fprintf(w, "%s\t%s\t%d\n", g.Code, g.Label, g.Quota)
			}
			return w.Flush()
		},
	}
}

func quotasListCmd(app *App) *cobra.Command {
	var sessionID int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List per-teacher quota accounting",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			quotas, err := app.Client().ListTeacherQuotas(ctx, sessionID)
			if err != nil {
				return err
			}
			if len(quotas) == 0 {
				fmt.Println("No quota rows found.")
				return nil
			}
			dir, err := app.Client().TeacherDirectory(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ENSEIGNANT\tGRADE\tQUOTA\tRÉALISÉ\tÉCART")
			for _, q := range quotas {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
					dir.NameOf(q.TeacherCode), q.GradeCode, q.GradeQuota, q.Realised, q.DiffGrade)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&sessionID, "session", 0, "filter by session id")
	return cmd
}
