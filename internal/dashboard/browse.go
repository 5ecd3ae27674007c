package dashboard

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/RoboSyntax/white-raven-webapp/internal/api"
)

const (
	msgEmptyQuery   = "Please enter a search query"
	msgSearchFailed = "Search failed"
	msgLoadFailed   = "Failed to load stories"
	msgTopFailed    = "Failed to load top stories"
	msgNoStories    = "No stories found"
	msgStoryFailed  = "Failed to load story"
	msgRandomFailed = "Failed to load random story"
)

// resultsOutcome is the response to a request that fills the results area.
type resultsOutcome struct {
	seq      uint64
	stories  []api.Story
	err      error
	fallback string
	// clearOnError renders the empty placeholder when the request fails.
	clearOnError bool
}

func (o resultsOutcome) apply(c *Controller) {
	if !c.finish(resultsChannel, o.seq) {
		return
	}
	if o.err != nil {
		c.log.Warn("results request failed", "err", o.err)
		if o.clearOnError {
			c.RenderResults(nil)
		}
		c.reportError(o.err, o.fallback)
		return
	}
	c.RenderResults(o.stories)
}

func (o resultsOutcome) Err() error { return o.err }

// modalOutcome is the response to a request that opens the story modal.
// Failures never show server or transport detail.
type modalOutcome struct {
	seq     uint64
	story   *api.Story
	err     error
	missing string
	// rejected is shown when the server answers with an error status,
	// failed for every other error.
	rejected string
	failed   string
}

func (o modalOutcome) Err() error { return o.err }

func (o modalOutcome) apply(c *Controller) {
	if !c.finish(modalChannel, o.seq) {
		return
	}
	var apiErr *api.APIError
	switch {
	case errors.As(o.err, &apiErr):
		c.log.Warn("story request rejected", "status", apiErr.StatusCode, "err", o.err)
		c.ShowError(o.rejected)
	case o.err != nil:
		c.log.Warn("story request failed", "err", o.err)
		c.ShowError(o.failed)
	case o.story == nil:
		c.ShowError(o.missing)
	default:
		c.OpenStoryModal(*o.story)
	}
}

// reportError routes a failed results request to the error toast.
// Server-reported failures show the server's message, falling back to
// fallback; transport failures show "Network error: <detail>".
func (c *Controller) reportError(err error, fallback string) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		msg := fallback
		if apiErr.Message != "" {
			msg = apiErr.Message
		}
		c.ShowError(msg)
		return
	}
	c.ShowError("Network error: " + errorDetail(err))
}

func errorDetail(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}

// Search validates query and returns the search Task. An empty query shows the
// validation error and returns nil without touching the network.
func (c *Controller) Search(query string) Task {
	query = strings.TrimSpace(query)
	if query == "" {
		c.ShowError(msgEmptyQuery)
		return nil
	}

	req := api.SearchRequest{
		Query:   query,
		Filters: c.filters.Criteria(),
		Limit:   c.opts.SearchLimit,
	}
	c.lastQuery = query
	seq := c.begin(resultsChannel)
	c.log.Info("search", "query", query, "moods", req.Filters.Mood, "min_quality", req.Filters.MinQuality)

	storyAPI := c.api
	return func(ctx context.Context) Outcome {
		stories, err := storyAPI.Search(ctx, req)
		return resultsOutcome{seq: seq, stories: stories, err: err, fallback: msgSearchFailed}
	}
}

// BrowseRandom fetches one random story and opens it in the modal.
func (c *Controller) BrowseRandom() Task {
	seq := c.begin(modalChannel)
	storyAPI := c.api
	return func(ctx context.Context) Outcome {
		story, err := storyAPI.Random(ctx)
		return modalOutcome{seq: seq, story: story, err: err, missing: msgNoStories, rejected: msgNoStories, failed: msgRandomFailed}
	}
}

func (c *Controller) BrowseRecent() Task {
	return c.browse(c.api.Recent, msgLoadFailed)
}

func (c *Controller) BrowseTop() Task {
	return c.browse(c.api.Top, msgTopFailed)
}

func (c *Controller) browse(fetch func(context.Context) ([]api.Story, error), fallback string) Task {
	seq := c.begin(resultsChannel)
	return func(ctx context.Context) Outcome {
		stories, err := fetch(ctx)
		return resultsOutcome{seq: seq, stories: stories, err: err, fallback: fallback, clearOnError: true}
	}
}

// LoadFullStory fetches a story by id and opens it in the modal.
func (c *Controller) LoadFullStory(id string) Task {
	seq := c.begin(modalChannel)
	storyAPI := c.api
	return func(ctx context.Context) Outcome {
		story, err := storyAPI.Story(ctx, id)
		return modalOutcome{seq: seq, story: story, err: err, missing: msgStoryFailed, rejected: msgStoryFailed, failed: msgStoryFailed}
	}
}
