package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/exd-tools/surveil-admin/internal/models"
	"github.com/exd-tools/surveil-admin/internal/swap"
)

// AssignmentsCmd returns the assignments command
func AssignmentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assignments",
		Aliases: []string{"affectations"},
		Short:   "Browse and exchange surveillance assignments",
	}
	cmd.AddCommand(assignmentsListCmd(app))
	cmd.AddCommand(assignmentsSwapCmd(app))
	cmd.AddCommand(assignmentsDeleteAllCmd(app))
	return cmd
}

func assignmentsListCmd(app *App) *cobra.Command {
	var sessionID, teacherCode int
	var groupBy, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			list, err := app.Client().ListAssignments(ctx, models.AssignmentFilter{
				SessionID:   sessionID,
				TeacherCode: teacherCode,
			})
			if err != nil {
				return err
			}
			dir, err := app.Client().TeacherDirectory(ctx)
			if err != nil {
				return err
			}

			if search != "" {
				list = filterAssignments(list, dir, search)
			}
			if len(list) == 0 {
				fmt.Println("No assignments found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			header := "ID\tDATE\tDÉBUT\tFIN\tSALLE\tENSEIGNANT\tGRADE"
			if groupBy == "" {
				fmt.Fprintln(w, header)
				for _, a := range list {
					printAssignmentRow(w, a, dir)
				}
				return w.Flush()
			}

			keyOf, err := assignmentGroupKey(models.AssignmentGroupBy(groupBy), dir)
			if err != nil {
				return err
			}
			sort.SliceStable(list, func(i, j int) bool { return keyOf(list[i]) < keyOf(list[j]) })
			var lastKey string
			for i, a := range list {
				if key := keyOf(a); i == 0 || key != lastKey {
					if i > 0 {
						fmt.Fprintln(w)
					}
					fmt.Fprintf(w, "== %s ==\n", key)
					fmt.Fprintln(w, header)
					lastKey = key
				}
				printAssignmentRow(w, a, dir)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&sessionID, "session", 0, "filter by session id")
	cmd.Flags().IntVar(&teacherCode, "teacher", 0, "filter by teacher code")
	cmd.Flags().StringVar(&groupBy, "group-by", "", "group rows: jour, enseignant or salle")
	cmd.Flags().StringVar(&search, "search", "", "keep rows matching a name, room or date substring")
	return cmd
}

func printAssignmentRow(w *tabwriter.Writer, a models.Assignment, dir models.TeacherDirectory) {
	fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
		a.ID, a.ExamDate, a.StartTime, a.EndTime, a.RoomLabel(),
		dir.NameOf(a.TeacherCode), a.GradeCode)
}

// filterAssignments keeps rows whose teacher name, room or date contains the
// query, case-insensitively, mirroring the list screen's search box.
func filterAssignments(list []models.Assignment, dir models.TeacherDirectory, query string) []models.Assignment {
	q := strings.ToLower(query)
	out := list[:0]
	for _, a := range list {
		haystack := strings.ToLower(dir.NameOf(a.TeacherCode) + " " + a.RoomCode + " " + a.ExamDate)
		if strings.Contains(haystack, q) {
			out = append(out, a)
		}
	}
	return out
}

// assignmentGroupKey returns the key extractor of a grouping mode. The list
// is re-sorted by that key before printing so each group is contiguous.
func assignmentGroupKey(mode models.AssignmentGroupBy, dir models.TeacherDirectory) (func(models.Assignment) string, error) {
	switch mode {
	case models.GroupByDay:
		return func(a models.Assignment) string { return a.ExamDate }, nil
	case models.GroupByTeacher:
		return func(a models.Assignment) string { return dir.NameOf(a.TeacherCode) }, nil
	case models.GroupByRoom:
		return func(a models.Assignment) string { return a.RoomLabel() }, nil
	default:
		return nil, fmt.Errorf("unknown grouping %q (jour, enseignant, salle)", mode)
	}
}

func assignmentsSwapCmd(app *App) *cobra.Command {
	var sessionID int
	var yes bool

	cmd := &cobra.Command{
		Use:   "swap [assignment-id] [assignment-id]",
		Short: "Exchange the teachers of two assignments",
		Long: `Exchange the teachers of two assignments. The pair is validated
locally (self-exchange, same teacher, cross-session, identical slot) before
asking for confirmation; the backend then re-checks and commits atomically.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id1, err := parseAssignmentID(args[0])
			if err != nil {
				return err
			}
			id2, err := parseAssignmentID(args[1])
			if err != nil {
				return err
			}

			ctx := context.Background()
			dir, err := app.Client().TeacherDirectory(ctx)
			if err != nil {
				return err
			}

			notifier := &cliNotifier{toasts: swap.NewToastPresenter(app.Config.Swap.ToastTTL)}
			sess := swap.NewSession(sessionID, swap.NewValidator(dir), app.Client(), notifier, nil, app.Logger)
			if err := sess.Refresh(ctx); err != nil {
				return err
			}

			a, ok := sess.Find(id1)
			if !ok {
				return fmt.Errorf("assignment %d not found", id1)
			}
			b, ok := sess.Find(id2)
			if !ok {
				return fmt.Errorf("assignment %d not found", id2)
			}

			if _, err := sess.Click(a); err != nil {
				return err
			}
			if res, err := sess.Click(b); err != nil {
				return fmt.Errorf("échange refusé: %s", res.Detail)
			}

			src, tgt := sess.Source(), sess.Target()
			fmt.Printf("Permuter:\n")
			fmt.Printf("  %s  (%s, salle %s)\n", dir.NameOf(src.TeacherCode), src.SlotLabel(), src.RoomLabel())
			fmt.Printf("  %s  (%s, salle %s)\n", dir.NameOf(tgt.TeacherCode), tgt.SlotLabel(), tgt.RoomLabel())

			if !yes && !confirm(os.Stdin, os.Stdout, "Confirmer la permutation ?") {
				sess.Cancel()
				fmt.Println("Permutation annulée.")
				return nil
			}

			if err := sess.Confirm(ctx); err != nil {
				return err
			}
			color.Green("✓ Permutation effectuée.")
			return nil
		},
	}
	cmd.Flags().IntVar(&sessionID, "session", 0, "session the assignments belong to")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func assignmentsDeleteAllCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(os.Stdin, os.Stdout, "Supprimer toutes les affectations ?") {
				fmt.Println("Suppression annulée.")
				return nil
			}
			if err := app.Client().DeleteAllAssignments(context.Background()); err != nil {
				return err
			}
			color.Green("✓ Affectations supprimées.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// cliNotifier keeps the transient-message semantics of the toast presenter
// while also echoing each message on stderr for the one-shot command flow.
type cliNotifier struct {
	toasts *swap.ToastPresenter
}

func (n *cliNotifier) Show(msg string) {
	n.toasts.Show(msg)
	color.New(color.FgYellow).Fprintln(os.Stderr, msg)
}
