package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// StatsCmd returns the stats command
func StatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Assignment statistics",
	}
	cmd.AddCommand(statsSessionCmd(app))
	cmd.AddCommand(statsAllCmd(app))
	return cmd
}

func statsAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Show statistics across every session",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := app.Client().AllSessionStatistics(context.Background())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SESSION\tAFFECTATIONS\tENSEIGNANTS")
			for _, s := range all {
				fmt.Fprintf(w, "%d\t%d\t%d\n", s.SessionID, s.AssignmentCount, s.TeacherCount)
			}
			return w.Flush()
		},
	}
}

func statsSessionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "session [session-id]",
		Short: "Show statistics for one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}
			stats, err := app.Client().SessionStatistics(context.Background(), id)
			if err != nil {
				return err
			}

			fmt.Printf("Session %d: %d affectations, %d enseignants\n\n",
				stats.SessionID, stats.AssignmentCount, stats.TeacherCount)

			if len(stats.ByGrade) > 0 {
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "GRADE\tQUOTA\tAFFECTATIONS\tENSEIGNANTS")
				for _, g := range stats.ByGrade {
					fmt.Fprintf(w, "%s\t%d\t%d\t%d\n",
						g.GradeCode, g.Quota, g.AssignmentCount, g.TeacherCount)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Println()
			}

			if len(stats.Slots) > 0 {
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "DATE\tDÉBUT\tFIN\tSALLE\tSURVEILLANTS")
				for _, s := range stats.Slots {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
						s.ExamDate, s.StartTime, s.EndTime, s.RoomCode, s.SupervisorCount)
				}
				return w.Flush()
			}
			return nil
		},
	}
}
