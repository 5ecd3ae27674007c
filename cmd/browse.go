package cmd

import (
	"fmt"
	"strings"

	"github.com/RoboSyntax/white-raven-webapp/internal/dashboard"
	"github.com/spf13/cobra"
)

var (
	flagMoods      []string
	flagMinQuality int
	flagMinLength  string
	flagMaxLength  string
	flagSource     string
	flagLimit      int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search stories",
	Long: `Search stories with the same filters as the dashboard.

Filters default to the config file's filters section.`,
	Example: `  whiteraven search "lighthouse keeper" --mood dark --mood calm --min-quality 7`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.Close()

		applySearchFlags(cmd, s)
		return printBrowse(cmd, s, s.ctrl.Search(strings.Join(args, " ")))
	},
}

func init() {
	searchCmd.Flags().StringSliceVar(&flagMoods, "mood", nil, "mood tag to include (repeatable)")
	searchCmd.Flags().IntVar(&flagMinQuality, "min-quality", 0, "minimum quality score (0-10)")
	searchCmd.Flags().StringVar(&flagMinLength, "min-length", "", "minimum length in seconds")
	searchCmd.Flags().StringVar(&flagMaxLength, "max-length", "", "maximum length in seconds")
	searchCmd.Flags().StringVar(&flagSource, "source", "", "only stories from this source")
	searchCmd.Flags().IntVar(&flagLimit, "limit", 0, "maximum number of results")
}

// applySearchFlags copies the flags the user set onto the controller's filters.
func applySearchFlags(cmd *cobra.Command, s *session) {
	f := s.ctrl.Filters()
	flags := cmd.Flags()
	for _, m := range flagMoods {
		if m = strings.TrimSpace(m); m != "" && !f.MoodSelected(m) {
			f.ToggleMood(m)
		}
	}
	if flags.Changed("min-quality") {
		f.SetQuality(flagMinQuality)
	}
	if flags.Changed("min-length") {
		f.SetMinLength(flagMinLength)
	}
	if flags.Changed("max-length") {
		f.SetMaxLength(flagMaxLength)
	}
	if flags.Changed("source") {
		f.SetSource(flagSource)
	}
	if flags.Changed("limit") && flagLimit > 0 {
		s.ctrl.SetSearchLimit(flagLimit)
	}
	if f.Inverted() {
		min, max := f.LengthBounds()
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: min length %ds is greater than max length %ds\n", min, max)
	}
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recent stories",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.Close()
		return printBrowse(cmd, s, s.ctrl.BrowseRecent())
	},
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "List the highest rated stories",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.Close()
		return printBrowse(cmd, s, s.ctrl.BrowseTop())
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Read a random story",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.Close()
		return printStory(cmd, s, s.ctrl.BrowseRandom())
	},
}

var storyCmd = &cobra.Command{
	Use:   "story <id>",
	Short: "Read a story in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.Close()
		return printStory(cmd, s, s.ctrl.LoadFullStory(args[0]))
	},
}

// printBrowse runs a results task and prints the cards.
func printBrowse(cmd *cobra.Command, s *session, t dashboard.Task) error {
	if err := s.run(cmd.Context(), t); err != nil {
		return err
	}
	results, _ := s.ctrl.Results()
	fmt.Fprint(cmd.OutOrStdout(), renderResults(results, outputWidth(cmd.OutOrStdout())))
	return nil
}

// printStory runs a modal task and prints the story it opened.
func printStory(cmd *cobra.Command, s *session, t dashboard.Task) error {
	if err := s.run(cmd.Context(), t); err != nil {
		return err
	}
	d, ok := s.ctrl.Modal()
	if !ok {
		return fmt.Errorf("no story returned")
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderDetail(d, outputWidth(out), isTerminal(out)))
	return nil
}
