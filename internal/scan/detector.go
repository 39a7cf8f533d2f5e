package scan

import "context"

// IssueDetector is the capability contract for one issue category (security
// or performance). Implementations must tolerate any input; an error return
// is absorbed by the analyzer and degrades to an empty finding list for that
// file, never aborting the scan.
type IssueDetector interface {
	Detect(ctx context.Context, content string, lang Language) ([]Issue, error)
}

// IssueDetectorFunc adapts a function to the IssueDetector interface.
type IssueDetectorFunc func(ctx context.Context, content string, lang Language) ([]Issue, error)

// Detect calls f.
func (f IssueDetectorFunc) Detect(ctx context.Context, content string, lang Language) ([]Issue, error) {
	return f(ctx, content, lang)
}
