// Package model contains domain types for pull request triage.
// These types are independent of any external GitHub library.
package model

import "time"

// ReviewState values from the GitHub API. Only Approved carries meaning for
// triage; everything else is treated as an opaque string.
const (
	ReviewApproved         = "APPROVED"
	ReviewChangesRequested = "CHANGES_REQUESTED"
	ReviewCommented        = "COMMENTED"
	ReviewDismissed        = "DISMISSED"
)

// Review is a single reviewer verdict at a point in time. A reviewer may
// review the same pull request multiple times; only the most recent review
// per login is authoritative.
type Review struct {
	User        string    `json:"user"`
	State       string    `json:"state"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// AuthorKind distinguishes human from bot comment authors as reported by the
// API (`user.type`).
type AuthorKind string

const (
	AuthorHuman AuthorKind = "User"
	AuthorBot   AuthorKind = "Bot"
)

// Comment is a single comment on a pull request. Comments come from two API
// surfaces (diff-anchored review comments and issue conversation comments);
// the Body is only used for rendering, never for classification.
type Comment struct {
	User      string     `json:"user"`
	Kind      AuthorKind `json:"kind"`
	Body      string     `json:"body,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// PullRequest is an immutable snapshot of an open, non-draft pull request.
// Reviews, ReviewComments and IssueComments are populated by a second fetch
// pass before classification; everything else comes from the list call.
type PullRequest struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	HTMLURL   string    `json:"htmlUrl"`
	Repo      string    `json:"repo"` // owner/name
	Author    string    `json:"author"`
	Draft     bool      `json:"draft"`
	CreatedAt time.Time `json:"createdAt"`

	Labels []string `json:"labels"`

	// Individually requested reviewers. Team review requests are recorded
	// but never expanded to members.
	RequestedReviewers []string `json:"requestedReviewers"`
	RequestedTeams     []string `json:"requestedTeams,omitempty"`

	Reviews        []Review  `json:"reviews"`
	ReviewComments []Comment `json:"reviewComments"`
	IssueComments  []Comment `json:"issueComments"`
}

// ReviewerRequested reports whether login is currently in the PR's
// individually-requested-reviewer set.
func (pr *PullRequest) ReviewerRequested(login string) bool {
	for _, r := range pr.RequestedReviewers {
		if r == login {
			return true
		}
	}
	return false
}
