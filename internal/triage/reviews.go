package triage

import (
	"sort"

	"github.com/spiffcs/prreport/internal/model"
)

// LatestApprovals reduces a pull request's review history to one current
// review per reviewer and keeps only those whose current state is APPROVED.
//
// Reviews are folded in submission-time order into a login-keyed map, so a
// later CHANGES_REQUESTED invalidates an earlier approval and a later
// approval supersedes earlier objections. Equal timestamps resolve
// last-write-wins in input order.
func LatestApprovals(pr *model.PullRequest) map[string]model.Review {
	ordered := make([]model.Review, len(pr.Reviews))
	copy(ordered, pr.Reviews)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SubmittedAt.Before(ordered[j].SubmittedAt)
	})

	latest := make(map[string]model.Review, len(ordered))
	for _, r := range ordered {
		latest[r.User] = r
	}

	approvals := make(map[string]model.Review, len(latest))
	for login, r := range latest {
		if r.State == model.ReviewApproved {
			approvals[login] = r
		}
	}
	return approvals
}
