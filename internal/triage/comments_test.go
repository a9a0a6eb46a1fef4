package triage

import (
	"testing"

	"github.com/spiffcs/prreport/internal/model"
)

func TestBotDetector(t *testing.T) {
	d := DefaultBotDetector()

	tests := []struct {
		name    string
		comment model.Comment
		want    bool
	}{
		{
			name:    "explicit bot kind",
			comment: model.Comment{User: "ci-runner", Kind: model.AuthorBot},
			want:    true,
		},
		{
			name:    "login contains bot substring",
			comment: model.Comment{User: "dependabot[bot]", Kind: model.AuthorHuman},
			want:    true,
		},
		{
			name:    "substring match is case sensitive",
			comment: model.Comment{User: "Botond", Kind: model.AuthorHuman},
			want:    false,
		},
		{
			name:    "known automation login",
			comment: model.Comment{User: "github-actions", Kind: model.AuthorHuman},
			want:    true,
		},
		{
			name:    "regular human",
			comment: model.Comment{User: "alice", Kind: model.AuthorHuman},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsBot(tt.comment); got != tt.want {
				t.Errorf("IsBot(%q) = %v, want %v", tt.comment.User, got, tt.want)
			}
		})
	}
}

func TestBotDetectorCustomLogins(t *testing.T) {
	d := BotDetector{KnownLogins: []string{"release-automation"}}

	if !d.IsBot(model.Comment{User: "release-automation", Kind: model.AuthorHuman}) {
		t.Error("IsBot() = false for configured automation login, want true")
	}
	if d.IsBot(model.Comment{User: "github-actions", Kind: model.AuthorHuman}) {
		t.Error("IsBot() = true for login outside the configured list, want false")
	}
}

func TestHumanComments(t *testing.T) {
	pr := &model.PullRequest{
		ReviewComments: []model.Comment{
			{User: "alice", Kind: model.AuthorHuman, Body: "first"},
			{User: "dependabot[bot]", Kind: model.AuthorBot, Body: "bump"},
			{User: "bob", Kind: model.AuthorHuman, Body: "second"},
		},
		IssueComments: []model.Comment{
			{User: "github-actions", Kind: model.AuthorHuman, Body: "ci"},
			{User: "carol", Kind: model.AuthorHuman, Body: "third"},
		},
	}

	got := HumanComments(pr, DefaultBotDetector())

	wantUsers := []string{"alice", "bob", "carol"}
	if len(got) != len(wantUsers) {
		t.Fatalf("HumanComments() returned %d comments, want %d", len(got), len(wantUsers))
	}
	// Review comments come first, then issue comments, in input order.
	for i, user := range wantUsers {
		if got[i].User != user {
			t.Errorf("HumanComments()[%d].User = %q, want %q", i, got[i].User, user)
		}
	}
}

func TestHumanCommentsEmpty(t *testing.T) {
	got := HumanComments(&model.PullRequest{}, DefaultBotDetector())
	if len(got) != 0 {
		t.Errorf("HumanComments() on empty PR returned %d comments, want 0", len(got))
	}
}
