package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spiffcs/prreport/config"
	"github.com/spiffcs/prreport/internal/duration"
	"github.com/spiffcs/prreport/internal/ghclient"
	"github.com/spiffcs/prreport/internal/log"
	"github.com/spiffcs/prreport/internal/output"
	"github.com/spiffcs/prreport/internal/triage"
)

// addReportFlags adds the report flags to a command.
func addReportFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Repo, "repo", "r", "", "Repository to triage (owner/name)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write the report to a file (default: stdout)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format (markdown, json, table)")
	cmd.Flags().StringVarP(&opts.Since, "since", "s", "", "Only include PRs created within the window (e.g., 2w, 30d)")
	cmd.Flags().StringVar(&opts.ReviewOwner, "review-owner", "", "Login whose approval means ready to merge")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Concurrent detail fetchers (default 10)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug)")
}

func runReport(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()
	log.Initialize(opts.Verbosity, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repo := opts.Repo
	if repo == "" {
		repo = cfg.Repo
	}
	if repo == "" {
		return fmt.Errorf("no repository given: pass --repo owner/name or set repo in %s", config.ConfigPath())
	}
	owner, name, err := ghclient.SplitRepo(repo)
	if err != nil {
		return err
	}

	var since time.Time
	if opts.Since != "" {
		since, err = duration.Parse(opts.Since)
		if err != nil {
			return err
		}
	}

	client, err := ghclient.NewClient(ctx, cfg.GetGitHubToken())
	if err != nil {
		return err
	}

	log.Progress("Fetching open pull requests for %s...", repo)
	prs, err := client.ListOpenPullRequests(ctx, owner, name, ghclient.ListOptions{Since: since})
	if err != nil {
		return err
	}
	log.ProgressDone()

	workers := opts.Workers
	if workers == 0 {
		workers = cfg.Workers
	}
	enricher := ghclient.NewEnricher(client, workers)
	if err := enricher.Enrich(ctx, prs, func(completed, total int) {
		log.Progress("Fetching reviews and comments (%d/%d)...", completed, total)
	}); err != nil {
		return fmt.Errorf("failed to fetch pull request details: %w", err)
	}
	log.ProgressDone()

	engine := cfg.Engine(opts.ReviewOwner)
	report := engine.Triage(repo, prs)
	logCategoryCounts(report)

	formatName := opts.Format
	if formatName == "" {
		formatName = cfg.DefaultFormat
	}
	formatter, err := output.NewFormatter(output.Format(formatName))
	if err != nil {
		return err
	}

	w := os.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return formatter.Format(report, w)
}

func logCategoryCounts(report *triage.Report) {
	unclassified := 0
	for _, t := range report.PRs {
		if !t.Classified {
			unclassified++
		}
	}
	log.Info("classified pull requests",
		"total", len(report.PRs),
		"highPriority", len(report.ByCategory[triage.CategoryHighPriority]),
		"prolificApproval", len(report.ByCategory[triage.CategoryNeedsProlificCommentersApproval]),
		"commentsToFix", len(report.ByCategory[triage.CategoryHasCommentsToFix]),
		"needsMerging", len(report.ByCategory[triage.CategoryNeedsMerging]),
		"oneMoreApproval", len(report.ByCategory[triage.CategoryNeedOneMoreApproval]),
		"requiresReview", len(report.ByCategory[triage.CategoryRequiresReview]),
		"unclassified", unclassified)
}
