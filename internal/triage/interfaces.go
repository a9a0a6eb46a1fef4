package triage

import "github.com/spiffcs/prreport/internal/model"

// Classifier defines the interface for pull request classification.
// This interface enables mocking the engine in unit tests.
type Classifier interface {
	// Analyze computes the derived facts for a pull request.
	Analyze(pr *model.PullRequest) Facts

	// Classify assigns at most one category to a pull request.
	Classify(pr *model.PullRequest, facts *Facts) (Category, bool)

	// Triage classifies a full set of pull requests into a report.
	Triage(repo string, prs []model.PullRequest) *Report
}

// Ensure Engine implements Classifier.
var _ Classifier = (*Engine)(nil)
