package cmd

import (
	"os"

	"github.com/RoboSyntax/white-raven-webapp/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	// Piped output gets the plain listing instead of the dashboard.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return printBrowse(cmd, s, s.ctrl.BrowseRecent())
	}

	// The clipboard's OSC 52 fallback must go through the program's output.
	out := tui.NewOutput(os.Stdout)
	s.clip.Out = out

	return tui.Run(s.ctrl, tui.Options{
		RequestTimeout: s.cfg.RequestTimeoutDuration(),
		Mouse:          !flagNoMouse,
		Output:         out,
	})
}
