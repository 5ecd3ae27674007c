package dashboard

import (
	"context"

	"github.com/RoboSyntax/white-raven-webapp/internal/api"
	"github.com/RoboSyntax/white-raven-webapp/internal/view"
)

type statsOutcome struct {
	stats api.Stats
	err   error
}

func (o statsOutcome) Err() error { return o.err }

func (o statsOutcome) apply(c *Controller) {
	if o.err != nil {
		c.log.Warn("failed to load stats", "err", o.err)
		return
	}
	c.stats = view.NewStats(o.stats, c.opts.Locale)
}

// LoadStats refreshes the header counters. Failures are only logged.
func (c *Controller) LoadStats() Task {
	storyAPI := c.api
	return func(ctx context.Context) Outcome {
		stats, err := storyAPI.Stats(ctx)
		return statsOutcome{stats: stats, err: err}
	}
}

type moodsOutcome struct {
	moods []string
	err   error
}

func (o moodsOutcome) Err() error { return o.err }

func (o moodsOutcome) apply(c *Controller) {
	if o.err != nil {
		c.log.Warn("failed to load moods", "err", o.err)
		return
	}
	c.filters.SetAvailable(o.moods)
}

// LoadMoods regenerates the mood chips from the server's list. Failures are only logged.
func (c *Controller) LoadMoods() Task {
	storyAPI := c.api
	return func(ctx context.Context) Outcome {
		moods, err := storyAPI.Moods(ctx)
		return moodsOutcome{moods: moods, err: err}
	}
}
