package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// SessionsCmd returns the sessions command
func SessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage exam sessions",
	}
	cmd.AddCommand(sessionsListCmd(app))
	cmd.AddCommand(sessionsShowCmd(app))
	cmd.AddCommand(sessionsCheckCmd(app))
	cmd.AddCommand(sessionsCreateCmd(app))
	cmd.AddCommand(sessionsUpdateCmd(app))
	cmd.AddCommand(sessionsDeleteCmd(app))
	return cmd
}

func sessionFlags(cmd *cobra.Command, s *models.Session) {
	cmd.Flags().StringVar(&s.Label, "label", "", "session label")
	cmd.Flags().StringVar(&s.StartDate, "start", "", "start date (jj/mm/aaaa)")
	cmd.Flags().StringVar(&s.EndDate, "end", "", "end date (jj/mm/aaaa)")
	cmd.Flags().StringVar(&s.AcademicYear, "year", "", "academic year")
	cmd.Flags().StringVar(&s.Semester, "semester", "", "semester")
	cmd.Flags().StringVar(&s.Type, "type", "principale", "session type")
}

func sessionsCreateCmd(app *App) *cobra.Command {
	var s models.Session

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client().CreateSession(context.Background(), s); err != nil {
				return err
			}
			color.Green("✓ Session créée.")
			return nil
		},
	}
	sessionFlags(cmd, &s)
	return cmd
}

func sessionsUpdateCmd(app *App) *cobra.Command {
	var s models.Session

	cmd := &cobra.Command{
		Use:   "update [session-id]",
		Short: "Update a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}
			s.ID = id
			if err := app.Client().UpdateSession(context.Background(), s); err != nil {
				return err
			}
			color.Green("✓ Session mise à jour.")
			return nil
		},
	}
	sessionFlags(cmd, &s)
	return cmd
}

func sessionsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [session-id]",
		Short: "Delete a session and its dependent data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}
			if !yes && !confirm(os.Stdin, os.Stdout, fmt.Sprintf("Supprimer la session %d ?", id)) {
				return nil
			}
			if err := app.Client().DeleteSession(context.Background(), id); err != nil {
				return err
			}
			color.Green("✓ Session supprimée.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func sessionsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [session-id]",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}
			s, err := app.Client().GetSession(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Session %d: %s\n", s.ID, s.Label)
			fmt.Printf("  période: %s - %s\n", s.StartDate, s.EndDate)
			fmt.Printf("  année: %s, semestre: %s, type: %s\n", s.AcademicYear, s.Semester, s.Type)
			return nil
		},
	}
}

func sessionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all exam sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Client().ListSessions(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLIBELLÉ\tDÉBUT\tFIN\tAU\tTYPE")
			for _, s := range sessions {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					s.ID, s.Label, s.StartDate, s.EndDate, s.AcademicYear, s.Type)
			}
			return w.Flush()
		},
	}
}

func sessionsCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check [session-id]",
		Short: "Check whether a session has the data the optimizer needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}
			check, err := app.Client().CheckSessionData(context.Background(), id)
			if err != nil {
				return err
			}

			mark := func(ok bool, label string, count int) {
				if ok {
					color.Green("✓ %s: %d", label, count)
				} else {
					color.Red("✗ %s: none", label)
				}
			}
			fmt.Printf("Session %d\n", id)
			mark(check.HasSlots, "créneaux", check.SlotCount)
			mark(check.HasTeachers, "enseignants surveillants", check.TeacherCount)
			mark(check.HasVoeux, "vœux", check.VoeuCount)
			return nil
		},
	}
}
