package ghclient

import (
	"context"

	"github.com/spiffcs/prreport/internal/model"
)

// PullLister lists a repository's open pull requests.
// This interface enables mocking the client in unit tests.
type PullLister interface {
	ListOpenPullRequests(ctx context.Context, owner, repo string, opts ListOptions) ([]model.PullRequest, error)
}

// DetailFetcher populates reviews and comments on pull requests.
type DetailFetcher interface {
	Enrich(ctx context.Context, prs []model.PullRequest, onProgress func(completed, total int)) error
}

// Ensure implementations satisfy the interfaces.
var (
	_ PullLister    = (*Client)(nil)
	_ DetailFetcher = (*Enricher)(nil)
)
