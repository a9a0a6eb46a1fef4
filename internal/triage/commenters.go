package triage

import (
	"sort"

	"github.com/spiffcs/prreport/internal/model"
)

// DefaultProlificThreshold is the number of human comments at which a
// commenter is considered prolific.
const DefaultProlificThreshold = 3

// analyzeCommenters derives the commenter facts from a pull request's human
// comments and its current approval set.
//
// A prolific commenter is a non-author login with at least threshold human
// comments whose latest review is not an approval. The re-requested subset
// covers reviewers the author has pinged again after heavy commenting: those
// are treated as more urgent since the author is waiting on a re-approval.
//
// HasCommentsToFix is a proxy for unaddressed feedback: some non-author
// human left comments and is not currently re-requested, so nothing signals
// the author has asked for a follow-up look. No resolved-thread signal is
// consumed.
func analyzeCommenters(pr *model.PullRequest, comments []model.Comment, approvals map[string]model.Review, threshold int) Facts {
	if threshold <= 0 {
		threshold = DefaultProlificThreshold
	}

	counts := make(map[string]int, len(comments))
	for _, c := range comments {
		counts[c.User]++
	}

	facts := Facts{
		Approvals:     approvals,
		CommentCounts: counts,
		TotalComments: len(comments),
	}

	for login, n := range counts {
		if login == pr.Author {
			continue
		}
		if !facts.HasCommentsToFix && !pr.ReviewerRequested(login) {
			facts.HasCommentsToFix = true
		}
		if n < threshold {
			continue
		}
		if _, approved := approvals[login]; approved {
			continue
		}
		facts.ProlificWithoutApproval = append(facts.ProlificWithoutApproval, login)
		if pr.ReviewerRequested(login) {
			facts.ProlificReRequested = append(facts.ProlificReRequested, login)
		}
	}

	sort.Strings(facts.ProlificWithoutApproval)
	sort.Strings(facts.ProlificReRequested)
	return facts
}
