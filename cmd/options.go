package cmd

// Options holds the shared command-line options for prreport.
type Options struct {
	Repo        string // owner/name
	Output      string // report file path; empty means stdout
	Format      string // markdown, json, table
	Since       string // creation-time window, e.g. "2w"
	ReviewOwner string
	Workers     int
	Verbosity   int
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		Workers: 10,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRepo sets the repository to triage (owner/name).
func WithRepo(repo string) Option {
	return func(o *Options) {
		o.Repo = repo
	}
}

// WithOutput sets the report output path.
func WithOutput(path string) Option {
	return func(o *Options) {
		o.Output = path
	}
}

// WithFormat sets the output format (markdown, json, table).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithSince restricts the report to PRs created within the window.
func WithSince(since string) Option {
	return func(o *Options) {
		o.Since = since
	}
}

// WithReviewOwner sets the review-owner login.
func WithReviewOwner(login string) Option {
	return func(o *Options) {
		o.ReviewOwner = login
	}
}

// WithWorkers sets the number of concurrent detail fetchers.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		o.Workers = workers
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}
