package tui

import "github.com/RoboSyntax/white-raven-webapp/internal/dashboard"

// outcomeMsg carries a finished dashboard task back to the update loop.
type outcomeMsg struct {
	outcome dashboard.Outcome
}

type toastExpiredMsg struct {
	seq uint64
}
