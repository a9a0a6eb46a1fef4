package ghclient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v57/github"

	"github.com/spiffcs/prreport/internal/log"
	"github.com/spiffcs/prreport/internal/model"
)

// ListOptions configures open pull request listing.
type ListOptions struct {
	// Since filters out pull requests created before this time. Zero
	// means no filter.
	Since time.Time
}

// ListOpenPullRequests fetches every open, non-draft pull request in the
// repository. Reviews and comments are not populated here; use Enricher.
func (c *Client) ListOpenPullRequests(ctx context.Context, owner, repo string, opts ListOptions) ([]model.PullRequest, error) {
	listOpts := &github.PullRequestListOptions{
		State:     "open",
		Sort:      "created",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var prs []model.PullRequest
	for {
		page, resp, err := c.client.PullRequests.List(ctx, owner, repo, listOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests for %s/%s: %w", owner, repo, err)
		}

		for _, pr := range page {
			// Drafts never reach the classifier.
			if pr.GetDraft() {
				continue
			}
			if !opts.Since.IsZero() && pr.GetCreatedAt().Time.Before(opts.Since) {
				continue
			}
			prs = append(prs, convertPullRequest(owner, repo, pr))
		}

		if resp.NextPage == 0 {
			break
		}
		listOpts.Page = resp.NextPage
	}

	log.Info("listed open pull requests", "repo", owner+"/"+repo, "count", len(prs))
	return prs, nil
}

// convertPullRequest converts a GitHub API pull request to our domain type.
func convertPullRequest(owner, repo string, pr *github.PullRequest) model.PullRequest {
	out := model.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		HTMLURL:   pr.GetHTMLURL(),
		Repo:      owner + "/" + repo,
		Author:    pr.GetUser().GetLogin(),
		Draft:     pr.GetDraft(),
		CreatedAt: pr.GetCreatedAt().Time,
	}

	for _, l := range pr.Labels {
		out.Labels = append(out.Labels, l.GetName())
	}
	for _, u := range pr.RequestedReviewers {
		out.RequestedReviewers = append(out.RequestedReviewers, u.GetLogin())
	}
	// Team requests are recorded but not expanded to members.
	for _, t := range pr.RequestedTeams {
		out.RequestedTeams = append(out.RequestedTeams, t.GetSlug())
	}

	return out
}

// convertReview converts a GitHub API review to our domain type.
func convertReview(r *github.PullRequestReview) model.Review {
	return model.Review{
		User:        r.GetUser().GetLogin(),
		State:       r.GetState(),
		SubmittedAt: r.GetSubmittedAt().Time,
	}
}

func authorKind(u *github.User) model.AuthorKind {
	if u.GetType() == "Bot" {
		return model.AuthorBot
	}
	return model.AuthorHuman
}

// convertReviewComment converts a diff-anchored review comment.
func convertReviewComment(c *github.PullRequestComment) model.Comment {
	return model.Comment{
		User:      c.GetUser().GetLogin(),
		Kind:      authorKind(c.GetUser()),
		Body:      c.GetBody(),
		CreatedAt: c.GetCreatedAt().Time,
	}
}

// convertIssueComment converts a conversation comment.
func convertIssueComment(c *github.IssueComment) model.Comment {
	return model.Comment{
		User:      c.GetUser().GetLogin(),
		Kind:      authorKind(c.GetUser()),
		Body:      c.GetBody(),
		CreatedAt: c.GetCreatedAt().Time,
	}
}
