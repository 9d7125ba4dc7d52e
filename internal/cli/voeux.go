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

// VoeuxCmd returns the voeux command
func VoeuxCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voeux",
		Short: "Browse teacher preferences",
	}
	cmd.AddCommand(voeuxListCmd(app))
	cmd.AddCommand(voeuxOfCmd(app))
	cmd.AddCommand(voeuxCreateCmd(app))
	cmd.AddCommand(voeuxDeleteCmd(app))
	return cmd
}

func voeuxCreateCmd(app *App) *cobra.Command {
	var v models.Voeu

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a vœu",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client().CreateVoeu(context.Background(), v); err != nil {
				return err
			}
			color.Green("✓ Vœu créé.")
			return nil
		},
	}
	cmd.Flags().IntVar(&v.TeacherCode, "teacher", 0, "teacher code")
	cmd.Flags().IntVar(&v.SessionID, "session", 0, "session id")
	cmd.Flags().IntVar(&v.Day, "jour", 0, "exam day index")
	cmd.Flags().StringVar(&v.Seance, "seance", "", "period (S1, S2, ...)")
	return cmd
}

func voeuxDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [voeu-id]",
		Short: "Delete a vœu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid vœu id %q", args[0])
			}
			if !yes && !confirm(os.Stdin, os.Stdout, fmt.Sprintf("Supprimer le vœu %d ?", id)) {
				return nil
			}
			if err := app.Client().DeleteVoeu(context.Background(), id); err != nil {
				return err
			}
			color.Green("✓ Vœu supprimé.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func voeuxOfCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "of [teacher-code] [session-id]",
		Short: "List one teacher's vœux within a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid teacher code %q", args[0])
			}
			id, err := parseSessionID(args[1])
			if err != nil {
				return err
			}
			voeux, err := app.Client().ListTeacherVoeux(context.Background(), code, id)
			if err != nil {
				return err
			}
			if len(voeux) == 0 {
				fmt.Println("No vœux found.")
				return nil
			}
			for _, v := range voeux {
				fmt.Printf("jour %d, séance %s\n", v.Day, v.Seance)
			}
			return nil
		},
	}
}

func voeuxListCmd(app *App) *cobra.Command {
	var sessionID, teacherCode int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vœux",
		RunE: func(cmd *cobra.Command, args []string) error {
			voeux, err := app.Client().ListVoeux(context.Background(), models.VoeuFilter{
				SessionID:   sessionID,
				TeacherCode: teacherCode,
			})
			if err != nil {
				return err
			}
			if len(voeux) == 0 {
				fmt.Println("No vœux found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tENSEIGNANT\tSESSION\tJOUR\tSÉANCE")
			for _, v := range voeux {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\n",
					v.ID, v.TeacherCode, v.SessionID, v.Day, v.Seance)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&sessionID, "session", 0, "filter by session id")
	cmd.Flags().IntVar(&teacherCode, "teacher", 0, "filter by teacher code")
	return cmd
}
