// Package dashboard is the story dashboard controller: filter state, the
// search and browse operations, toasts and the full-story modal. It owns no
// terminal or network resources itself; every network call is handed back to
// the caller as a Task whose Outcome is applied on the caller's event loop.
package dashboard

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/RoboSyntax/white-raven-webapp/internal/api"
	"github.com/RoboSyntax/white-raven-webapp/internal/filter"
	"github.com/RoboSyntax/white-raven-webapp/internal/view"
)

// StoryAPI is the subset of the story API the dashboard consumes.
type StoryAPI interface {
	Search(ctx context.Context, req api.SearchRequest) ([]api.Story, error)
	Random(ctx context.Context) (*api.Story, error)
	Recent(ctx context.Context) ([]api.Story, error)
	Top(ctx context.Context) ([]api.Story, error)
	Story(ctx context.Context, id string) (*api.Story, error)
	Stats(ctx context.Context) (api.Stats, error)
	Moods(ctx context.Context) ([]string, error)
}

type Clipboard interface {
	WriteAll(text string) error
}

// Task performs the network half of an operation. It never touches controller
// state, so it may run on any goroutine.
type Task func(ctx context.Context) Outcome

// Outcome is a finished Task, applied back with Controller.Apply. Err is the
// request's error, if any, whether or not applying it shows a toast.
type Outcome interface {
	Err() error
	apply(c *Controller)
}

const (
	DefaultSearchLimit = 12
	DefaultErrorTTL    = 3 * time.Second
	DefaultSuccessTTL  = 2 * time.Second
)

type Options struct {
	SearchLimit int
	Defaults    filter.Defaults
	Locale      view.Locale
	ErrorTTL    time.Duration
	SuccessTTL  time.Duration
	Logger      *slog.Logger
	Now         func() time.Time
}

// channel groups requests whose responses replace the same surface. Only the
// most recent request on a channel may apply its response.
type channel int

const (
	resultsChannel channel = iota
	modalChannel
	channelCount
)

type Controller struct {
	api       StoryAPI
	clipboard Clipboard
	filters   *filter.State
	opts      Options
	log       *slog.Logger

	seq     uint64
	pending [channelCount]uint64

	results       view.Results
	resultsLoaded bool
	resultsGen    uint64
	lastQuery     string

	modal *view.Detail
	stats view.Stats

	toast    Toast
	toastSeq uint64
}

func New(storyAPI StoryAPI, clipboard Clipboard, opts Options) *Controller {
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = DefaultSearchLimit
	}
	if opts.Defaults == (filter.Defaults{}) {
		opts.Defaults = filter.StandardDefaults
	}
	if opts.ErrorTTL <= 0 {
		opts.ErrorTTL = DefaultErrorTTL
	}
	if opts.SuccessTTL <= 0 {
		opts.SuccessTTL = DefaultSuccessTTL
	}
	if opts.Locale.IsZero() {
		opts.Locale = view.NewLocale("en-US")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		api:       storyAPI,
		clipboard: clipboard,
		filters:   filter.New(opts.Defaults),
		opts:      opts,
		log:       logger,
		stats:     view.EmptyStats(),
	}
}

// Filters exposes the controller's filter state for UI event handlers.
func (c *Controller) Filters() *filter.State { return c.filters }

func (c *Controller) Chips() []filter.Chip { return c.filters.Chips() }

// Apply folds a finished Task back into the controller. A nil Outcome is ignored.
func (c *Controller) Apply(o Outcome) {
	if o != nil {
		o.apply(c)
	}
}

// Run executes t synchronously, applies its outcome and returns the outcome's
// error. A nil Task is a no-op.
func (c *Controller) Run(ctx context.Context, t Task) error {
	if t == nil {
		return nil
	}
	o := t(ctx)
	c.Apply(o)
	if o == nil {
		return nil
	}
	return o.Err()
}

// Loading reports whether a results or modal request is outstanding.
func (c *Controller) Loading() bool {
	for _, p := range c.pending {
		if p != 0 {
			return true
		}
	}
	return false
}

func (c *Controller) begin(ch channel) uint64 {
	c.seq++
	c.pending[ch] = c.seq
	return c.seq
}

// finish clears the loading state for ch if seq is its latest request and
// reports whether the response is current.
func (c *Controller) finish(ch channel, seq uint64) bool {
	if c.pending[ch] != seq {
		c.log.Debug("discarding stale response", "seq", seq, "latest", c.pending[ch])
		return false
	}
	c.pending[ch] = 0
	return true
}

// Results returns the rendered results and whether anything has been rendered yet.
func (c *Controller) Results() (view.Results, bool) {
	return c.results, c.resultsLoaded
}

// LastQuery is the most recent query sent to the search endpoint.
func (c *Controller) LastQuery() string { return c.lastQuery }

// RenderResults replaces the results area with stories.
func (c *Controller) RenderResults(stories []api.Story) {
	c.results = view.NewResults(stories)
	c.resultsLoaded = true
	c.resultsGen++
}

// ResultsGeneration changes every time the results area is re-rendered.
func (c *Controller) ResultsGeneration() uint64 { return c.resultsGen }

func (c *Controller) Stats() view.Stats { return c.stats }

// SetSearchLimit changes the result cap for later searches. Non-positive values are ignored.
func (c *Controller) SetSearchLimit(n int) {
	if n > 0 {
		c.opts.SearchLimit = n
	}
}
