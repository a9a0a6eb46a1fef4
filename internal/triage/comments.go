package triage

import (
	"strings"

	"github.com/spiffcs/prreport/internal/model"
)

// BotDetector decides whether a comment was written by automation rather
// than a person. It is a heuristic: a human with "bot" in their login is a
// known false positive, and a bot account without the substring slips
// through unless listed in KnownLogins.
type BotDetector struct {
	// KnownLogins are automation accounts matched exactly.
	KnownLogins []string
}

// DefaultBotDetector returns the detector used when no bot accounts are
// configured.
func DefaultBotDetector() BotDetector {
	return BotDetector{KnownLogins: []string{"github-actions"}}
}

// IsBot reports whether the comment author looks like automation: the API
// flagged the account as a Bot, the login contains the literal substring
// "bot" (case-sensitive), or the login exactly matches a known account.
func (d BotDetector) IsBot(c model.Comment) bool {
	if c.Kind == model.AuthorBot {
		return true
	}
	if strings.Contains(c.User, "bot") {
		return true
	}
	for _, known := range d.KnownLogins {
		if c.User == known {
			return true
		}
	}
	return false
}

// HumanComments concatenates a pull request's review comments and issue
// comments, preserving order within and across the two sources, with
// bot-authored comments removed.
func HumanComments(pr *model.PullRequest, detector BotDetector) []model.Comment {
	human := make([]model.Comment, 0, len(pr.ReviewComments)+len(pr.IssueComments))
	for _, c := range pr.ReviewComments {
		if !detector.IsBot(c) {
			human = append(human, c)
		}
	}
	for _, c := range pr.IssueComments {
		if !detector.IsBot(c) {
			human = append(human, c)
		}
	}
	return human
}
