// Package triage classifies open pull requests into mutually-exclusive
// categories from their review, comment, label, and reviewer-request state.
package triage

import (
	"sort"
	"strings"

	"github.com/spiffcs/prreport/internal/model"
)

// DefaultPriorityLabels are the label fragments that mark a pull request as
// high priority. Matching is case-insensitive substring on the label name.
var DefaultPriorityLabels = []string{
	"high priority",
	"high-priority",
	"priority : high",
	"urgent",
	"critical",
}

// Engine applies the triage rule cascade to pull requests.
type Engine struct {
	// ReviewOwner is the login whose approval signals "ready to merge".
	// Optional; when empty the owner-has-approved check never matches.
	ReviewOwner string

	// PriorityLabels override DefaultPriorityLabels when non-empty.
	PriorityLabels []string

	// ProlificThreshold overrides DefaultProlificThreshold when positive.
	ProlificThreshold int

	// Bots overrides DefaultBotDetector when set.
	Bots *BotDetector

	rules []rule
}

// rule is one entry in the ordered classification cascade. The first rule
// whose predicate matches wins; later rules are never evaluated.
type rule struct {
	name     string
	matches  func(pr *model.PullRequest, f *Facts) bool
	category Category
}

// NewEngine creates an Engine with its rule cascade wired in evaluation
// order. The order is load-bearing: reordering changes classifications.
func NewEngine(reviewOwner string) *Engine {
	e := &Engine{ReviewOwner: reviewOwner}
	e.rules = []rule{
		{
			name: "high-priority label",
			matches: func(pr *model.PullRequest, _ *Facts) bool {
				return HasPriorityLabel(pr.Labels, e.priorityLabels())
			},
			category: CategoryHighPriority,
		},
		{
			name: "prolific commenter re-requested",
			matches: func(_ *model.PullRequest, f *Facts) bool {
				return len(f.ProlificReRequested) > 0
			},
			category: CategoryNeedsProlificCommentersApproval,
		},
		{
			name: "has comments to fix",
			matches: func(_ *model.PullRequest, f *Facts) bool {
				return f.HasCommentsToFix
			},
			category: CategoryHasCommentsToFix,
		},
		{
			name: "two approvals, owner pending",
			matches: func(_ *model.PullRequest, f *Facts) bool {
				return f.ApprovalCount() >= 2 && !f.HasCommentsToFix &&
					(e.ReviewOwner == "" || !f.Approved(e.ReviewOwner))
			},
			category: CategoryNeedsMerging,
		},
		{
			name: "prolific commenter waiting",
			matches: func(_ *model.PullRequest, f *Facts) bool {
				return len(f.ProlificWithoutApproval) > 0
			},
			category: CategoryNeedsProlificCommentersApproval,
		},
		{
			name: "single approval",
			matches: func(_ *model.PullRequest, f *Facts) bool {
				return f.ApprovalCount() == 1
			},
			category: CategoryNeedOneMoreApproval,
		},
		{
			name: "no approvals",
			matches: func(_ *model.PullRequest, f *Facts) bool {
				return f.ApprovalCount() == 0
			},
			category: CategoryRequiresReview,
		},
	}
	return e
}

func (e *Engine) priorityLabels() []string {
	if len(e.PriorityLabels) > 0 {
		return e.PriorityLabels
	}
	return DefaultPriorityLabels
}

func (e *Engine) prolificThreshold() int {
	if e.ProlificThreshold > 0 {
		return e.ProlificThreshold
	}
	return DefaultProlificThreshold
}

func (e *Engine) bots() BotDetector {
	if e.Bots != nil {
		return *e.Bots
	}
	return DefaultBotDetector()
}

// Analyze computes the facts for a single pull request without classifying.
func (e *Engine) Analyze(pr *model.PullRequest) Facts {
	approvals := LatestApprovals(pr)
	comments := HumanComments(pr, e.bots())
	return analyzeCommenters(pr, comments, approvals, e.prolificThreshold())
}

// Classify assigns exactly one category to a pull request, or none when no
// rule matches. The only unmatched state is 2+ approvals with nothing to fix
// and the review owner already approving; that PR is deliberately left out
// of the report rather than mapped to a catch-all.
func (e *Engine) Classify(pr *model.PullRequest, facts *Facts) (Category, bool) {
	for _, r := range e.rules {
		if r.matches(pr, facts) {
			return r.category, true
		}
	}
	return "", false
}

// Triage analyzes and classifies every pull request, sorts the results into
// display order, and groups them by category.
func (e *Engine) Triage(repo string, prs []model.PullRequest) *Report {
	triaged := make([]TriagedPR, 0, len(prs))
	for i := range prs {
		pr := &prs[i]
		facts := e.Analyze(pr)
		cat, ok := e.Classify(pr, &facts)
		triaged = append(triaged, TriagedPR{
			PR:         *pr,
			Facts:      facts,
			Category:   cat,
			Classified: ok,
		})
	}

	SortForDisplay(triaged, e.priorityLabels())

	byCategory := make(map[Category][]TriagedPR)
	for _, t := range triaged {
		if !t.Classified {
			continue
		}
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}

	return &Report{Repo: repo, PRs: triaged, ByCategory: byCategory}
}

// HasPriorityLabel reports whether any label contains one of the priority
// fragments, case-insensitively.
func HasPriorityLabel(labels, fragments []string) bool {
	for _, label := range labels {
		lower := strings.ToLower(label)
		for _, frag := range fragments {
			if strings.Contains(lower, strings.ToLower(frag)) {
				return true
			}
		}
	}
	return false
}

// SortForDisplay orders pull requests by high-priority flag descending, then
// creation time descending. The sort is stable, so equal timestamps keep
// their input order.
func SortForDisplay(triaged []TriagedPR, priorityFragments []string) {
	sort.SliceStable(triaged, func(i, j int) bool {
		hi := HasPriorityLabel(triaged[i].PR.Labels, priorityFragments)
		hj := HasPriorityLabel(triaged[j].PR.Labels, priorityFragments)
		if hi != hj {
			return hi
		}
		return triaged[i].PR.CreatedAt.After(triaged[j].PR.CreatedAt)
	})
}
