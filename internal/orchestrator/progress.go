package orchestrator

import "fmt"

// Stage identifies one phase of a scan.
type Stage int

const (
	StageCollect Stage = iota
	StageAnalyze
	StageRelationships
	StageDuplicates
	StageCoverage
	StageScore
)

func (s Stage) String() string {
	switch s {
	case StageCollect:
		return "collect"
	case StageAnalyze:
		return "analyze"
	case StageRelationships:
		return "relationships"
	case StageDuplicates:
		return "duplicates"
	case StageCoverage:
		return "coverage"
	case StageScore:
		return "score"
	default:
		return "unknown"
	}
}

// ProgressStatus is the lifecycle state carried by a progress event.
type ProgressStatus int

const (
	ProgressWorking ProgressStatus = iota
	ProgressComplete
	ProgressFailed
)

// ProgressEvent reports scan progress for one stage or one file.
type ProgressEvent struct {
	Stage   Stage
	Path    string // file path for per-file events, empty for stage events
	Status  ProgressStatus
	Message string
}

// ProgressReporter emits progress events through a buffered channel.
type ProgressReporter struct {
	ch chan ProgressEvent
}

// NewProgressReporter creates a ProgressReporter with a buffered channel of size 64.
func NewProgressReporter() *ProgressReporter {
	return &ProgressReporter{
		ch: make(chan ProgressEvent, 64),
	}
}

// Emit sends a progress event in a non-blocking fashion.
// If the channel is full, the event is silently dropped.
func (pr *ProgressReporter) Emit(event ProgressEvent) {
	select {
	case pr.ch <- event:
	default:
		// Drop the event if the channel is full.
	}
}

// Subscribe returns a read-only channel for consuming progress events.
func (pr *ProgressReporter) Subscribe() <-chan ProgressEvent {
	return pr.ch
}

// Close closes the progress event channel.
func (pr *ProgressReporter) Close() {
	close(pr.ch)
}

// FormatProgress formats a ProgressEvent as a human-readable status line.
func FormatProgress(event ProgressEvent) string {
	subject := event.Stage.String()
	if event.Path != "" {
		subject = event.Path
	}
	switch event.Status {
	case ProgressWorking:
		return fmt.Sprintf("  ● %s...", subject)
	case ProgressComplete:
		return fmt.Sprintf("  ✓ %s complete", subject)
	case ProgressFailed:
		return fmt.Sprintf("  ✗ %s failed: %s", subject, event.Message)
	default:
		return fmt.Sprintf("  ? %s (unknown status)", subject)
	}
}
