// Package bootstrap finds map containers in a page and renders each one from
// its JSON config. Containers are independent: a failure in one never stops
// the others.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"ggmap/internal/models"
	"ggmap/internal/renderer"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Outcomes of a container.
const (
	OutcomeRendered = "rendered"
	OutcomeSkipped  = "skipped"
	OutcomeFailed   = "failed"
)

// Fetcher loads the map config a container points at.
type Fetcher interface {
	Fetch(ctx context.Context, source string, base *url.URL) (*models.MapConfig, error)
}

// Recorder receives per-container observations.
type Recorder interface {
	IncContainer(outcome string)
	ObserveFetchDuration(d time.Duration)
}

// Page is an HTML document and the URL it was served from.
type Page struct {
	HTML io.Reader
	URL  *url.URL
}

// Result is the outcome for one container.
type Result struct {
	Container Container
	Outcome   string
	Instance  *renderer.Instance
	Err       error
}

// Options configures a Bootstrapper.
type Options struct {
	ContainerClass string
	MaxConcurrent  int
}

// Bootstrapper renders every map container on a page.
type Bootstrapper struct {
	fetcher  Fetcher
	renderer *renderer.Renderer
	recorder Recorder
	opts     Options
	logger   zerolog.Logger
}

// New creates a Bootstrapper. recorder may be nil.
func New(fetcher Fetcher, r *renderer.Renderer, recorder Recorder, opts Options, logger zerolog.Logger) *Bootstrapper {
	if opts.ContainerClass == "" {
		opts.ContainerClass = DefaultContainerClass
	}
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = 1
	}
	return &Bootstrapper{fetcher: fetcher, renderer: r, recorder: recorder, opts: opts, logger: logger}
}

// Run discovers containers in page and renders them. Results are in document
// order. Only an unparsable page is an error; container failures are reported
// in their Result.
func (b *Bootstrapper) Run(ctx context.Context, page Page) ([]Result, error) {
	containers, err := Discover(page.HTML, b.opts.ContainerClass)
	if err != nil {
		return nil, err
	}

	var query url.Values
	if page.URL != nil {
		query = page.URL.Query()
	}

	results := make([]Result, len(containers))
	var g errgroup.Group
	g.SetLimit(b.opts.MaxConcurrent)

	for i, c := range containers {
		results[i].Container = c
		if c.Dataset.JSON == "" {
			b.logger.Warn().Int("container", c.Index).Str("id", c.ID).Msg("map config path not specified")
			results[i].Outcome = OutcomeSkipped
			results[i].Err = ErrMissingSource
			b.record(OutcomeSkipped)
			continue
		}
		g.Go(func() error {
			results[i] = b.renderContainer(ctx, c, page.URL, query)
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

// renderContainer owns its slot in the results; nothing else is shared.
func (b *Bootstrapper) renderContainer(ctx context.Context, c Container, base *url.URL, query url.Values) Result {
	// Started fetches run to completion even if the caller goes away.
	fetchCtx := context.WithoutCancel(ctx)

	start := time.Now()
	cfg, err := b.fetcher.Fetch(fetchCtx, c.Dataset.JSON, base)
	if b.recorder != nil {
		b.recorder.ObserveFetchDuration(time.Since(start))
	}
	if err != nil {
		b.logger.Error().Err(err).Int("container", c.Index).Str("json", c.Dataset.JSON).Msg("failed to load map config")
		b.record(OutcomeFailed)
		return Result{Container: c, Outcome: OutcomeFailed, Err: fmt.Errorf("bootstrap: container %d: %w", c.Index, err)}
	}

	inst := b.renderer.Render(renderer.Container{ID: c.ID, Dataset: c.Dataset}, cfg, query)
	b.record(OutcomeRendered)
	return Result{Container: c, Outcome: OutcomeRendered, Instance: inst}
}

func (b *Bootstrapper) record(outcome string) {
	if b.recorder != nil {
		b.recorder.IncContainer(outcome)
	}
}
