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

// SlotsCmd returns the slots command
func SlotsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Browse exam time slots",
	}
	cmd.AddCommand(slotsListCmd(app))
	cmd.AddCommand(slotsRoomsCmd(app))
	cmd.AddCommand(slotsStatsCmd(app))
	cmd.AddCommand(slotsCreateCmd(app))
	cmd.AddCommand(slotsDeleteCmd(app))
	return cmd
}

func slotsCreateCmd(app *App) *cobra.Command {
	var slot models.TimeSlot

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a créneau",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client().CreateTimeSlot(context.Background(), slot); err != nil {
				return err
			}
			color.Green("✓ Créneau créé.")
			return nil
		},
	}
	cmd.Flags().IntVar(&slot.SessionID, "session", 0, "session id")
	cmd.Flags().StringVar(&slot.ExamDate, "date", "", "exam date (jj/mm/aaaa)")
	cmd.Flags().StringVar(&slot.StartTime, "start", "", "start time (hh:mm)")
	cmd.Flags().StringVar(&slot.EndTime, "end", "", "end time (hh:mm)")
	cmd.Flags().StringVar(&slot.RoomCode, "salle", "", "room code")
	cmd.Flags().StringVar(&slot.ExamType, "type", "écrit", "exam type")
	return cmd
}

func slotsDeleteCmd(app *App) *cobra.Command {
	var sessionID int
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [creneau-id]",
		Short: "Delete one créneau, or every créneau of a session with --session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if sessionID > 0 {
				if !yes && !confirm(os.Stdin, os.Stdout, fmt.Sprintf("Supprimer les créneaux de la session %d ?", sessionID)) {
					return nil
				}
				if err := app.Client().DeleteSessionTimeSlots(ctx, sessionID); err != nil {
					return err
				}
				color.Green("✓ Créneaux supprimés.")
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("a créneau id or --session is required")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid créneau id %q", args[0])
			}
			if !yes && !confirm(os.Stdin, os.Stdout, fmt.Sprintf("Supprimer le créneau %d ?", id)) {
				return nil
			}
			if err := app.Client().DeleteTimeSlot(ctx, id); err != nil {
				return err
			}
			color.Green("✓ Créneau supprimé.")
			return nil
		},
	}
	cmd.Flags().IntVar(&sessionID, "session", 0, "delete every créneau of this session")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func slotsStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [session-id]",
		Short: "Show créneau statistics of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}
			stats, err := app.Client().TimeSlotStatistics(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Session %d: %d créneaux, %d jours, %d salles\n",
				stats.SessionID, stats.SlotCount, stats.DayCount, stats.RoomCount)
			for day, n := range stats.ExamsByDay {
				fmt.Printf("  %s: %d\n", day, n)
			}
			return nil
		},
	}
}

func slotsListCmd(app *App) *cobra.Command {
	var sessionID int
	var examDate string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List créneaux",
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := app.Client().ListTimeSlots(context.Background(), models.TimeSlotFilter{
				SessionID: sessionID,
				ExamDate:  examDate,
			})
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Println("No slots found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tDÉBUT\tFIN\tSALLE\tTYPE\tSESSION")
			for _, s := range slots {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
					s.ID, s.ExamDate, s.StartTime, s.EndTime, s.RoomCode, s.ExamType, s.SessionID)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&sessionID, "session", 0, "filter by session id")
	cmd.Flags().StringVar(&examDate, "date", "", "filter by exam date")
	return cmd
}

func slotsRoomsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms [session-id]",
		Short: "Show parallel room counts per slot of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}
			counts, err := app.Client().ListRoomSlotCounts(context.Background(), id)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDÉBUT\tSALLES")
			for _, c := range counts {
				fmt.Fprintf(w, "%s\t%s\t%d\n", c.ExamDate, c.StartTime, c.RoomCount)
			}
			return w.Flush()
		},
	}
}
