package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgreer/quad/internal/calendar"
)

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Print the schedule view and exit",
	Long:  `Print all tasks and upcoming items grouped by date in a simple text format.`,
	RunE:  runAgenda,
}

func init() {
	rootCmd.AddCommand(agendaCmd)
}

func runAgenda(cmd *cobra.Command, args []string) error {
	snap, err := newSource().Load()
	if err != nil {
		return fmt.Errorf("load calendar: %w", err)
	}

	view := calendar.BuildSchedule(calendar.Inputs{
		Events:   snap.Events,
		Tasks:    snap.Tasks,
		Sections: snap.Sections,
		Filter:   calendar.DefaultFilterConfig(),
		Term:     cfg.Term,
	})

	out := cmd.OutOrStdout()

	if len(view.Tasks) > 0 {
		fmt.Fprintln(out, "Tasks:")
		for _, it := range view.Tasks {
			box := "[ ]"
			if it.Completed {
				box = "[x]"
			}
			fmt.Fprintf(out, "  %s %s %s\n", box, it.StartAt.Format(cfg.DateFormat), it.Title)
		}
		fmt.Fprintln(out)
	}

	for _, group := range view.Groups {
		fmt.Fprintf(out, "%s:\n", group.Date.Format("Monday, "+cfg.DateFormat))
		for _, entry := range group.Entries {
			line := fmt.Sprintf("  %s %s (%dm)",
				entry.Item.StartAt.Format(cfg.TimeFormat),
				entry.Item.Title,
				entry.DurationMinutes)
			if entry.Item.LocationName != "" {
				line += " @ " + entry.Item.LocationName
			}
			fmt.Fprintln(out, line)
		}
		fmt.Fprintln(out)
	}

	if len(view.Tasks) == 0 && len(view.Groups) == 0 {
		fmt.Fprintln(out, "Nothing scheduled.")
	}

	return nil
}
