package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/RoboSyntax/white-raven-webapp/internal/filter"
	"github.com/RoboSyntax/white-raven-webapp/internal/view"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.ctrl.Run(cmd.Context(), s.ctrl.LoadStats()); err != nil {
			return fmt.Errorf("loading stats: %w", err)
		}
		v := s.ctrl.Stats()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Stories:\t%s\n", v.Total)
		fmt.Fprintf(w, "Moods:\t%s\n", v.Moods)
		fmt.Fprintf(w, "Avg quality:\t%s\n", v.AvgQuality)
		if v.Updated != "" {
			fmt.Fprintf(w, "Last updated:\t%s\n", v.Updated)
		}
		return w.Flush()
	},
}

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List the mood tags accepted by search --mood",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.ctrl.Run(cmd.Context(), s.ctrl.LoadMoods()); err != nil {
			return fmt.Errorf("loading moods: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, m := range s.ctrl.Filters().Available() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", view.MoodGlyph(m), m, filter.MoodLabel(m))
		}
		return w.Flush()
	},
}
