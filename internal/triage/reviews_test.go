package triage

import (
	"testing"
	"time"

	"github.com/spiffcs/prreport/internal/model"
)

func ts(sec int) time.Time {
	return time.Date(2026, 8, 1, 12, 0, sec, 0, time.UTC)
}

func review(user, state string, sec int) model.Review {
	return model.Review{User: user, State: state, SubmittedAt: ts(sec)}
}

func TestLatestApprovals(t *testing.T) {
	tests := []struct {
		name    string
		reviews []model.Review
		want    []string
	}{
		{
			name: "later approval supersedes changes requested",
			reviews: []model.Review{
				review("alice", model.ReviewChangesRequested, 1),
				review("alice", model.ReviewApproved, 2),
			},
			want: []string{"alice"},
		},
		{
			name: "later changes requested invalidates earlier approval",
			reviews: []model.Review{
				review("alice", model.ReviewApproved, 1),
				review("alice", model.ReviewChangesRequested, 2),
			},
			want: []string{},
		},
		{
			name: "out of order input is sorted by submission time",
			reviews: []model.Review{
				review("alice", model.ReviewApproved, 5),
				review("alice", model.ReviewChangesRequested, 1),
			},
			want: []string{"alice"},
		},
		{
			name: "one entry per reviewer",
			reviews: []model.Review{
				review("alice", model.ReviewApproved, 1),
				review("bob", model.ReviewApproved, 2),
				review("carol", model.ReviewCommented, 3),
			},
			want: []string{"alice", "bob"},
		},
		{
			name: "equal timestamps last write wins",
			reviews: []model.Review{
				review("alice", model.ReviewApproved, 1),
				review("alice", model.ReviewDismissed, 1),
			},
			want: []string{},
		},
		{
			name: "equal timestamps last write wins approved",
			reviews: []model.Review{
				review("alice", model.ReviewChangesRequested, 1),
				review("alice", model.ReviewApproved, 1),
			},
			want: []string{"alice"},
		},
		{
			name:    "no reviews",
			reviews: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := &model.PullRequest{Reviews: tt.reviews}
			got := LatestApprovals(pr)
			if len(got) != len(tt.want) {
				t.Fatalf("LatestApprovals() has %d entries, want %d", len(got), len(tt.want))
			}
			for _, login := range tt.want {
				r, ok := got[login]
				if !ok {
					t.Errorf("LatestApprovals() missing %q", login)
					continue
				}
				if r.State != model.ReviewApproved {
					t.Errorf("LatestApprovals()[%q].State = %q, want APPROVED", login, r.State)
				}
			}
		})
	}
}
