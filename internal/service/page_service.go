package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"ggmap/internal/bootstrap"
)

// ErrInvalidPageURL is returned when the page URL cannot be parsed.
var ErrInvalidPageURL = errors.New("service: invalid page url")

// PageRunner interface for dependency injection
type PageRunner interface {
	Run(ctx context.Context, page bootstrap.Page) ([]bootstrap.Result, error)
}

// ContainerResult is the outcome for one map container of a page.
type ContainerResult struct {
	Index   int           `json:"index"`
	ID      string        `json:"id,omitempty"`
	Source  string        `json:"json,omitempty"`
	Outcome string        `json:"outcome"`
	Error   string        `json:"error,omitempty"`
	Result  *RenderResult `json:"result,omitempty"`
}

// PageService renders every map container of an HTML page
type PageService struct {
	runner PageRunner
}

// NewPageService creates a new page service
func NewPageService(runner PageRunner) *PageService {
	return &PageService{runner: runner}
}

// RenderPage bootstraps all map containers in html. pageURL resolves relative
// config paths and supplies the deep-link query string.
func (s *PageService) RenderPage(ctx context.Context, html, pageURL string) ([]ContainerResult, error) {
	var base *url.URL
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil || !u.IsAbs() {
			return nil, ErrInvalidPageURL
		}
		base = u
	}

	results, err := s.runner.Run(ctx, bootstrap.Page{HTML: strings.NewReader(html), URL: base})
	if err != nil {
		return nil, fmt.Errorf("service: failed to bootstrap page: %w", err)
	}

	out := make([]ContainerResult, 0, len(results))
	for _, r := range results {
		cr := ContainerResult{
			Index:   r.Container.Index,
			ID:      r.Container.ID,
			Source:  r.Container.Dataset.JSON,
			Outcome: r.Outcome,
		}
		if r.Err != nil {
			cr.Error = r.Err.Error()
		}
		if r.Instance != nil {
			rendered, err := NewRenderResult(r.Instance)
			if err != nil {
				return nil, err
			}
			cr.Result = rendered
		}
		out = append(out, cr)
	}

	return out, nil
}
