package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagAPIURL  string
	flagNoMouse bool
)

var rootCmd = &cobra.Command{
	Use:   "whiteraven",
	Short: "Browse White Raven Tales from the terminal",
	Long: `whiteraven is a terminal dashboard for the White Raven Tales story API:
search by mood, quality and length, browse recent and top stories and read
them in full.

Without a subcommand it opens the interactive dashboard when stdout is a
terminal and prints the most recent stories otherwise.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "story API base URL (overrides config)")
	rootCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "disable mouse support in the dashboard")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(storyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(moodsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "whiteraven %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
