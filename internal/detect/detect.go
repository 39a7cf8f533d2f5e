// Package detect holds the built-in issue-detection collaborators. The
// contract they implement (scan.IssueDetector) is owned by the scanner core;
// callers may substitute richer backends, these pattern matchers are the
// defaults.
package detect
