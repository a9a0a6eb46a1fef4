package triage

import (
	"sort"

	"github.com/spiffcs/prreport/internal/model"
)

// Category is the triage bucket assigned to a pull request. Every open,
// non-draft pull request maps to at most one category; a fully-approved PR
// whose review owner has already signed off matches no rule and is omitted
// from the report entirely.
type Category string

const (
	CategoryHighPriority                    Category = "high-priority"
	CategoryNeedsProlificCommentersApproval Category = "needs-prolific-commenters-approval"
	CategoryHasCommentsToFix                Category = "has-comments-to-fix"
	CategoryNeedsMerging                    Category = "needs-merging"
	CategoryNeedOneMoreApproval             Category = "need-one-more-approval"
	CategoryRequiresReview                  Category = "requires-review"
)

// AllCategories lists every category in report section order.
var AllCategories = []Category{
	CategoryHighPriority,
	CategoryNeedsProlificCommentersApproval,
	CategoryHasCommentsToFix,
	CategoryNeedsMerging,
	CategoryNeedOneMoreApproval,
	CategoryRequiresReview,
}

// Display returns a human-readable category heading.
func (c Category) Display() string {
	switch c {
	case CategoryHighPriority:
		return "High Priority"
	case CategoryNeedsProlificCommentersApproval:
		return "Needs Prolific Commenters' Approval"
	case CategoryHasCommentsToFix:
		return "Has Comments To Fix"
	case CategoryNeedsMerging:
		return "Needs Merging"
	case CategoryNeedOneMoreApproval:
		return "Need One More Approval"
	case CategoryRequiresReview:
		return "Requires Review"
	default:
		return string(c)
	}
}

// Facts are the derived values the classifier rules consume and the renderer
// displays alongside each pull request.
type Facts struct {
	// Latest-review-wins approvals, keyed by reviewer login.
	Approvals map[string]model.Review `json:"approvals"`

	// Human comment counts per login, bot comments excluded.
	CommentCounts map[string]int `json:"commentCounts"`
	TotalComments int            `json:"totalComments"`

	// Non-author logins with >= threshold human comments whose latest
	// review is not an approval.
	ProlificWithoutApproval []string `json:"prolificWithoutApproval"`

	// Subset of ProlificWithoutApproval currently listed in the PR's
	// individually-requested-reviewer set.
	ProlificReRequested []string `json:"prolificReRequested"`

	// True when some non-author human commenter is not in the
	// requested-reviewer set: feedback exists that the author has not
	// asked anyone back to re-check.
	HasCommentsToFix bool `json:"hasCommentsToFix"`
}

// ApprovalCount returns the number of distinct approving reviewers.
func (f *Facts) ApprovalCount() int {
	return len(f.Approvals)
}

// Approvers returns approving logins in lexical order.
func (f *Facts) Approvers() []string {
	logins := make([]string, 0, len(f.Approvals))
	for login := range f.Approvals {
		logins = append(logins, login)
	}
	sort.Strings(logins)
	return logins
}

// Approved reports whether login's latest review is an approval.
func (f *Facts) Approved(login string) bool {
	_, ok := f.Approvals[login]
	return ok
}

// TriagedPR pairs a pull request with its facts and category assignment.
// Classified is false for the fall-through case (2+ approvals, nothing to
// fix, review owner already approved); such PRs appear in no report section.
type TriagedPR struct {
	PR         model.PullRequest `json:"pr"`
	Facts      Facts             `json:"facts"`
	Category   Category          `json:"category,omitempty"`
	Classified bool              `json:"classified"`
}

// Report is the classifier output handed to renderers: every triaged pull
// request in display order plus the per-category grouping.
type Report struct {
	Repo       string                   `json:"repo"`
	PRs        []TriagedPR              `json:"prs"`
	ByCategory map[Category][]TriagedPR `json:"byCategory"`
}
