package triage

import (
	"reflect"
	"testing"
	"time"

	"github.com/spiffcs/prreport/internal/model"
)

// prOpts holds optional fields for building test pull requests.
type prOpts struct {
	Labels             []string
	RequestedReviewers []string
	Reviews            []model.Review
	IssueComments      []model.Comment
	CreatedAt          time.Time
}

func makePR(number int, author string, opts *prOpts) model.PullRequest {
	pr := model.PullRequest{
		Number:  number,
		Title:   "test PR",
		HTMLURL: "https://github.com/acme/widgets/pull/1",
		Repo:    "acme/widgets",
		Author:  author,
	}
	if opts != nil {
		pr.Labels = opts.Labels
		pr.RequestedReviewers = opts.RequestedReviewers
		pr.Reviews = opts.Reviews
		pr.IssueComments = opts.IssueComments
		pr.CreatedAt = opts.CreatedAt
	}
	return pr
}

func classify(t *testing.T, e *Engine, pr model.PullRequest) (Category, bool) {
	t.Helper()
	facts := e.Analyze(&pr)
	return e.Classify(&pr, &facts)
}

func TestClassifyCascade(t *testing.T) {
	approvalsTwo := []model.Review{
		review("alice", model.ReviewApproved, 1),
		review("bob", model.ReviewApproved, 2),
	}

	tests := []struct {
		name        string
		reviewOwner string
		pr          model.PullRequest
		want        Category
		wantOK      bool
	}{
		{
			name: "urgent label wins over everything",
			pr: makePR(1, "author", &prOpts{
				Labels:        []string{"URGENT-fix"},
				Reviews:       approvalsTwo,
				IssueComments: repeatComments("carol", 5),
			}),
			want:   CategoryHighPriority,
			wantOK: true,
		},
		{
			name: "priority label with spaced colon",
			pr: makePR(2, "author", &prOpts{
				Labels: []string{"Priority : High"},
			}),
			want:   CategoryHighPriority,
			wantOK: true,
		},
		{
			name: "re-requested prolific commenter",
			pr: makePR(3, "author", &prOpts{
				RequestedReviewers: []string{"carol"},
				IssueComments:      repeatComments("carol", 4),
			}),
			want:   CategoryNeedsProlificCommentersApproval,
			wantOK: true,
		},
		{
			name: "comments to fix beats prolific-waiting",
			pr: makePR(4, "charlie", &prOpts{
				IssueComments: repeatComments("bea", 5),
			}),
			want:   CategoryHasCommentsToFix,
			wantOK: true,
		},
		{
			name: "two approvals without owner sign-off needs merging",
			pr: makePR(5, "author", &prOpts{
				Reviews: approvalsTwo,
			}),
			reviewOwner: "owner",
			want:        CategoryNeedsMerging,
			wantOK:      true,
		},
		{
			name: "two approvals including owner falls through unclassified",
			pr: makePR(6, "author", &prOpts{
				Reviews: []model.Review{
					review("owner", model.ReviewApproved, 1),
					review("bob", model.ReviewApproved, 2),
				},
			}),
			reviewOwner: "owner",
			wantOK:      false,
		},
		{
			name: "no review owner configured means owner never approved",
			pr: makePR(7, "author", &prOpts{
				Reviews: approvalsTwo,
			}),
			want:   CategoryNeedsMerging,
			wantOK: true,
		},
		{
			name: "single approval",
			pr: makePR(8, "author", &prOpts{
				Reviews: []model.Review{review("alice", model.ReviewApproved, 1)},
			}),
			want:   CategoryNeedOneMoreApproval,
			wantOK: true,
		},
		{
			name:   "nothing at all requires review",
			pr:     makePR(9, "author", nil),
			want:   CategoryRequiresReview,
			wantOK: true,
		},
		{
			name: "rescinded approval requires review",
			pr: makePR(10, "author", &prOpts{
				Reviews: []model.Review{
					review("alice", model.ReviewApproved, 1),
					review("alice", model.ReviewChangesRequested, 2),
				},
			}),
			want:   CategoryRequiresReview,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(tt.reviewOwner)
			got, ok := classify(t, e, tt.pr)
			if ok != tt.wantOK {
				t.Fatalf("Classify() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	e := NewEngine("owner")
	pr := makePR(1, "author", &prOpts{
		RequestedReviewers: []string{"carol"},
		Reviews:            []model.Review{review("alice", model.ReviewApproved, 1)},
		IssueComments:      repeatComments("carol", 4),
	})

	facts1 := e.Analyze(&pr)
	cat1, ok1 := e.Classify(&pr, &facts1)
	facts2 := e.Analyze(&pr)
	cat2, ok2 := e.Classify(&pr, &facts2)

	if cat1 != cat2 || ok1 != ok2 {
		t.Errorf("Classify() not deterministic: (%q, %v) then (%q, %v)", cat1, ok1, cat2, ok2)
	}
	if !reflect.DeepEqual(facts1, facts2) {
		t.Errorf("Analyze() not deterministic:\n  first:  %+v\n  second: %+v", facts1, facts2)
	}
}

func TestSortForDisplay(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	tests := []struct {
		name string
		prs  []model.PullRequest
		want []int // PR numbers in expected order
	}{
		{
			name: "newest first",
			prs: []model.PullRequest{
				makePR(1, "a", &prOpts{CreatedAt: t1}),
				makePR(2, "b", &prOpts{CreatedAt: t2}),
			},
			want: []int{2, 1},
		},
		{
			name: "high priority beats recency",
			prs: []model.PullRequest{
				makePR(1, "a", &prOpts{CreatedAt: t2}),
				makePR(2, "b", &prOpts{CreatedAt: t1, Labels: []string{"critical"}}),
			},
			want: []int{2, 1},
		},
		{
			name: "equal timestamps keep input order",
			prs: []model.PullRequest{
				makePR(1, "a", &prOpts{CreatedAt: t1}),
				makePR(2, "b", &prOpts{CreatedAt: t1}),
				makePR(3, "c", &prOpts{CreatedAt: t1}),
			},
			want: []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triaged := make([]TriagedPR, len(tt.prs))
			for i, pr := range tt.prs {
				triaged[i] = TriagedPR{PR: pr}
			}
			SortForDisplay(triaged, DefaultPriorityLabels)

			got := make([]int, len(triaged))
			for i, tr := range triaged {
				got[i] = tr.PR.Number
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortForDisplay() order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriageGroupsAndOmitsUnclassified(t *testing.T) {
	e := NewEngine("owner")
	prs := []model.PullRequest{
		makePR(1, "author", &prOpts{Labels: []string{"urgent"}}),
		makePR(2, "author", &prOpts{
			Reviews: []model.Review{
				review("owner", model.ReviewApproved, 1),
				review("bob", model.ReviewApproved, 2),
			},
		}),
		makePR(3, "author", nil),
	}

	report := e.Triage("acme/widgets", prs)

	if len(report.PRs) != 3 {
		t.Fatalf("Report.PRs has %d entries, want 3", len(report.PRs))
	}
	if got := len(report.ByCategory[CategoryHighPriority]); got != 1 {
		t.Errorf("high priority section has %d PRs, want 1", got)
	}
	if got := len(report.ByCategory[CategoryRequiresReview]); got != 1 {
		t.Errorf("requires review section has %d PRs, want 1", got)
	}

	// PR 2 is fully approved including the owner: present in PRs but in no
	// category section.
	total := 0
	for _, cat := range AllCategories {
		total += len(report.ByCategory[cat])
	}
	if total != 2 {
		t.Errorf("categorized %d PRs, want 2 (fully-approved PR omitted)", total)
	}
}

func TestHasPriorityLabel(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"URGENT-fix", true},
		{"High Priority", true},
		{"high-priority", true},
		{"Priority : High", true},
		{"critical-path", true},
		{"bug", false},
		{"priority:low", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := HasPriorityLabel([]string{tt.label}, DefaultPriorityLabels)
			if got != tt.want {
				t.Errorf("HasPriorityLabel(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}
