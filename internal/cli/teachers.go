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

// TeachersCmd returns the teachers command
func TeachersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teachers",
		Short: "Browse the teacher directory",
	}
	cmd.AddCommand(teachersListCmd(app))
	cmd.AddCommand(teachersShowCmd(app))
	cmd.AddCommand(teachersCreateCmd(app))
	cmd.AddCommand(teachersUpdateCmd(app))
	cmd.AddCommand(teachersDeleteCmd(app))
	return cmd
}

func teacherFlags(cmd *cobra.Command, t *models.Teacher) {
	cmd.Flags().StringVar(&t.LastName, "nom", "", "last name")
	cmd.Flags().StringVar(&t.FirstName, "prenom", "", "first name")
	cmd.Flags().StringVar(&t.Email, "email", "", "email address")
	cmd.Flags().StringVar(&t.GradeCode, "grade", "", "grade code")
	cmd.Flags().BoolVar((*bool)(&t.Supervises), "surveillance", true, "participates in surveillance")
}

func teachersCreateCmd(app *App) *cobra.Command {
	var t models.Teacher

	cmd := &cobra.Command{
		Use:   "create [code]",
		Short: "Create a teacher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid teacher code %q", args[0])
			}
			t.Code = code
			if err := app.Client().CreateTeacher(context.Background(), t); err != nil {
				return err
			}
			color.Green("✓ Enseignant créé.")
			return nil
		},
	}
	teacherFlags(cmd, &t)
	return cmd
}

func teachersUpdateCmd(app *App) *cobra.Command {
	var t models.Teacher

	cmd := &cobra.Command{
		Use:   "update [code]",
		Short: "Update a teacher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid teacher code %q", args[0])
			}
			t.Code = code
			if err := app.Client().UpdateTeacher(context.Background(), t); err != nil {
				return err
			}
			color.Green("✓ Enseignant mis à jour.")
			return nil
		},
	}
	teacherFlags(cmd, &t)
	return cmd
}

func teachersDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [code]",
		Short: "Delete a teacher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid teacher code %q", args[0])
			}
			if !yes && !confirm(os.Stdin, os.Stdout, fmt.Sprintf("Supprimer l'enseignant %d ?", code)) {
				return nil
			}
			if err := app.Client().DeleteTeacher(context.Background(), code); err != nil {
				return err
			}
			color.Green("✓ Enseignant supprimé.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func teachersShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [code]",
		Short: "Show one teacher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid teacher code %q", args[0])
			}
			t, err := app.Client().GetTeacher(context.Background(), code)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%d)\n", t.FullName(), t.Code)
			fmt.Printf("  grade: %s\n", t.GradeCode)
			fmt.Printf("  email: %s\n", t.Email)
			if t.Supervises {
				fmt.Println("  participe à la surveillance")
			} else {
				fmt.Println("  ne participe pas à la surveillance")
			}
			return nil
		},
	}
}

func teachersListCmd(app *App) *cobra.Command {
	var onlySupervising bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teachers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var teachers []models.Teacher
			var err error
			if onlySupervising {
				teachers, err = app.Client().ListSupervisingTeachers(ctx)
			} else {
				teachers, err = app.Client().ListTeachers(ctx)
			}
			if err != nil {
				return err
			}
			if len(teachers) == 0 {
				fmt.Println("No teachers found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNOM\tGRADE\tEMAIL\tSURVEILLANCE")
			for _, t := range teachers {
				supervises := "non"
				if t.Supervises {
					supervises = "oui"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					t.Code, t.FullName(), t.GradeCode, t.Email, supervises)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&onlySupervising, "surveillance", false, "only teachers participating in surveillance")
	return cmd
}
