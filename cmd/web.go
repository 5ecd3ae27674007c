package cmd

import (
	"fmt"

	"github.com/RoboSyntax/white-raven-webapp/internal/browser"
	"github.com/spf13/cobra"
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Open the web dashboard in a browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := browser.Open(s.cfg.APIURL); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", s.cfg.APIURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(webCmd)
}
