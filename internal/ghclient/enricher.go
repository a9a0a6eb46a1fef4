package ghclient

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/go-github/v57/github"
	"golang.org/x/sync/errgroup"

	"github.com/spiffcs/prreport/internal/log"
	"github.com/spiffcs/prreport/internal/model"
)

// DefaultWorkers is the bounded concurrency for per-PR detail fetching.
const DefaultWorkers = 10

// Enricher fills in reviews and comments for a batch of pull requests.
type Enricher struct {
	client  *Client
	workers int
}

// NewEnricher creates an Enricher. workers <= 0 falls back to DefaultWorkers.
func NewEnricher(client *Client, workers int) *Enricher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Enricher{client: client, workers: workers}
}

// Enrich populates Reviews, ReviewComments and IssueComments on each pull
// request in place. Individual PR failures degrade to empty slices with a
// warning; the batch never fails because one PR could not be detailed.
// onProgress may be nil.
func (e *Enricher) Enrich(ctx context.Context, prs []model.PullRequest, onProgress func(completed, total int)) error {
	total := len(prs)
	var completed int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := range prs {
		pr := &prs[i]
		g.Go(func() error {
			if err := e.enrichOne(gctx, pr); err != nil {
				log.Warn("failed to fetch details, continuing with empty state",
					"repo", pr.Repo, "pr", pr.Number, "error", err)
				pr.Reviews = []model.Review{}
				pr.ReviewComments = []model.Comment{}
				pr.IssueComments = []model.Comment{}
			}
			done := atomic.AddInt64(&completed, 1)
			if onProgress != nil {
				onProgress(int(done), total)
			}
			// Only context cancellation aborts the group.
			return gctx.Err()
		})
	}

	return g.Wait()
}

func (e *Enricher) enrichOne(ctx context.Context, pr *model.PullRequest) error {
	owner, repo, err := SplitRepo(pr.Repo)
	if err != nil {
		return err
	}

	reviews, err := e.listReviews(ctx, owner, repo, pr.Number)
	if err != nil {
		return fmt.Errorf("reviews: %w", err)
	}
	reviewComments, err := e.listReviewComments(ctx, owner, repo, pr.Number)
	if err != nil {
		return fmt.Errorf("review comments: %w", err)
	}
	issueComments, err := e.listIssueComments(ctx, owner, repo, pr.Number)
	if err != nil {
		return fmt.Errorf("issue comments: %w", err)
	}

	pr.Reviews = reviews
	pr.ReviewComments = reviewComments
	pr.IssueComments = issueComments

	log.Debug("enriched pull request",
		"repo", pr.Repo, "pr", pr.Number,
		"reviews", len(reviews),
		"reviewComments", len(reviewComments),
		"issueComments", len(issueComments))
	return nil
}

func (e *Enricher) listReviews(ctx context.Context, owner, repo string, number int) ([]model.Review, error) {
	opts := &github.ListOptions{PerPage: 100}
	var out []model.Review
	for {
		page, resp, err := e.client.client.PullRequests.ListReviews(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, err
		}
		for _, r := range page {
			out = append(out, convertReview(r))
		}
		if resp.NextPage == 0 {
			return out, nil
		}
		opts.Page = resp.NextPage
	}
}

func (e *Enricher) listReviewComments(ctx context.Context, owner, repo string, number int) ([]model.Comment, error) {
	opts := &github.PullRequestListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var out []model.Comment
	for {
		page, resp, err := e.client.client.PullRequests.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, err
		}
		for _, c := range page {
			out = append(out, convertReviewComment(c))
		}
		if resp.NextPage == 0 {
			return out, nil
		}
		opts.Page = resp.NextPage
	}
}

func (e *Enricher) listIssueComments(ctx context.Context, owner, repo string, number int) ([]model.Comment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var out []model.Comment
	for {
		page, resp, err := e.client.client.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, err
		}
		for _, c := range page {
			out = append(out, convertIssueComment(c))
		}
		if resp.NextPage == 0 {
			return out, nil
		}
		opts.Page = resp.NextPage
	}
}

// SplitRepo splits "owner/name" into its parts.
func SplitRepo(full string) (owner, repo string, err error) {
	parts := strings.Split(full, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository name: %s (want owner/name)", full)
	}
	return parts[0], parts[1], nil
}
