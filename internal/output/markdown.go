package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spiffcs/prreport/internal/format"
	"github.com/spiffcs/prreport/internal/triage"
)

// MarkdownFormatter renders the triage report as a markdown document: one
// heading per non-empty category in cascade order, one bullet per pull
// request.
type MarkdownFormatter struct {
	// Now overrides the clock in tests. Nil means time.Now.
	Now func() time.Time
}

func (f *MarkdownFormatter) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// Format writes the report.
func (f *MarkdownFormatter) Format(report *triage.Report, w io.Writer) error {
	if len(report.PRs) == 0 {
		fmt.Fprintln(w, "No open pull requests found.")
		return nil
	}

	fmt.Fprintf(w, "# Pull Request Triage: %s\n", report.Repo)
	fmt.Fprintf(w, "\n*Generated: %s*\n", f.now().Format("2006-01-02 15:04"))

	for _, cat := range triage.AllCategories {
		prs := report.ByCategory[cat]
		if len(prs) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n## %s (%d)\n\n", cat.Display(), len(prs))
		for _, t := range prs {
			fmt.Fprintf(w, "- [%s](%s) — %s\n", t.PR.Title, t.PR.HTMLURL, f.annotate(t))
		}
	}

	return nil
}

// annotate builds the category-specific supporting text for one bullet.
func (f *MarkdownFormatter) annotate(t triage.TriagedPR) string {
	facts := &t.Facts

	switch t.Category {
	case triage.CategoryHighPriority:
		return fmt.Sprintf("labels: %s", joinLabels(t.PR.Labels))

	case triage.CategoryNeedsProlificCommentersApproval:
		if len(facts.ProlificReRequested) > 0 {
			return fmt.Sprintf("waiting on re-requested %s (%s)",
				reviewerNoun(len(facts.ProlificReRequested)),
				commenterSummary(facts.ProlificReRequested, facts.CommentCounts))
		}
		return fmt.Sprintf("%s commented heavily but never approved (%s)",
			reviewerNoun(len(facts.ProlificWithoutApproval)),
			commenterSummary(facts.ProlificWithoutApproval, facts.CommentCounts))

	case triage.CategoryHasCommentsToFix:
		return fmt.Sprintf("%d comments to address", facts.TotalComments)

	case triage.CategoryNeedsMerging:
		return fmt.Sprintf("%d approvals (%s), ready to merge",
			facts.ApprovalCount(), strings.Join(facts.Approvers(), ", "))

	case triage.CategoryNeedOneMoreApproval:
		return fmt.Sprintf("approved by %s, needs one more",
			strings.Join(facts.Approvers(), ", "))

	case triage.CategoryRequiresReview:
		return fmt.Sprintf("no reviews yet, opened %s ago",
			format.AgeLong(f.now().Sub(t.PR.CreatedAt)))
	}
	return ""
}

// commenterSummary renders "alice (4 comments), bob (3 comments)".
func commenterSummary(logins []string, counts map[string]int) string {
	parts := make([]string, len(logins))
	for i, login := range logins {
		parts[i] = fmt.Sprintf("%s: %d comments", login, counts[login])
	}
	return strings.Join(parts, ", ")
}

func reviewerNoun(n int) string {
	if n == 1 {
		return "reviewer"
	}
	return "reviewers"
}

func joinLabels(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = "`" + l + "`"
	}
	return strings.Join(quoted, " ")
}
