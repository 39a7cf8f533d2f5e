// Package orchestrator sequences one scan: collection, bounded per-file
// analysis, cross-file stages, and score aggregation. It is the only
// component aware of concurrency and ordering.
package orchestrator

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/dusk-indust/codescan/internal/config"
	"github.com/dusk-indust/codescan/internal/coverage"
	"github.com/dusk-indust/codescan/internal/dup"
	"github.com/dusk-indust/codescan/internal/graph"
	"github.com/dusk-indust/codescan/internal/scan"
	"github.com/dusk-indust/codescan/internal/score"
)

// Scanner is the entry point of the codebase scanner. Construct with New,
// then call Scan once per repository; all state is scoped to one invocation.
type Scanner struct {
	cfg        *config.Config
	registry   *scan.Registry
	collector  *scan.Collector
	analyzer   *scan.Analyzer
	structural scan.StructuralAnalyzer
	duplicates *dup.Detector
	store      graph.Store
	progress   *ProgressReporter
}

// New wires a Scanner. cfg may be nil (defaults apply). security and
// performance are the external issue-detection collaborators; either may be
// nil, degrading that category to zero findings. store may be nil, in which
// case the relationship graph is held in memory only.
func New(cfg *config.Config, security, performance scan.IssueDetector, store graph.Store) *Scanner {
	if cfg == nil {
		cfg = &config.Config{}
	}
	cfg.Normalize()

	registry := scan.NewRegistry()
	structural := scan.NewTreeSitterAnalyzer()
	if store == nil {
		store = graph.NewMemStore()
	}

	return &Scanner{
		cfg:        cfg,
		registry:   registry,
		collector:  scan.NewCollector(registry, cfg.ExcludeDirs),
		analyzer:   scan.NewAnalyzer(registry, structural, security, performance),
		structural: structural,
		duplicates: dup.NewDetector(cfg.MinDuplicateBlock, cfg.MaxDuplicateFileLines),
		store:      store,
		progress:   NewProgressReporter(),
	}
}

// Progress returns a channel that emits progress events.
func (s *Scanner) Progress() <-chan ProgressEvent {
	return s.progress.Subscribe()
}

// Close releases the structural parser, the graph store, and the progress
// reporter. Callers should invoke this when the scanner is no longer needed.
func (s *Scanner) Close() error {
	s.progress.Close()
	if err := s.structural.Close(); err != nil {
		return err
	}
	return s.store.Close()
}

// Scan analyzes the repository rooted at root and returns the complete
// analysis. Only input-level errors (bad root) fail the scan; every per-file
// anomaly is absorbed into the result. When ctx is canceled the scan aborts
// at the next stage boundary and returns the partial result with Incomplete
// set, together with the context error.
func (s *Scanner) Scan(ctx context.Context, root string) (*scan.CodebaseAnalysis, error) {
	s.progress.Emit(ProgressEvent{Stage: StageCollect, Status: ProgressWorking})
	paths, err := s.collector.Collect(root)
	if err != nil {
		s.progress.Emit(ProgressEvent{Stage: StageCollect, Status: ProgressFailed, Message: err.Error()})
		return nil, err
	}
	s.progress.Emit(ProgressEvent{Stage: StageCollect, Status: ProgressComplete})

	result := &scan.CodebaseAnalysis{
		TotalFiles:    len(paths),
		Languages:     make(map[scan.Language]int),
		FileAnalyses:  make(map[string]scan.FileAnalysis, len(paths)),
		Relationships: make(map[string][]string),
		Scores:        map[string]float64{},
	}
	if len(paths) == 0 {
		// Degenerate but well-formed: zero counts, empty score map.
		return result, nil
	}

	contents := s.analyzeFiles(ctx, root, paths, result)
	if ctx.Err() != nil {
		result.Incomplete = true
		return result, ctx.Err()
	}

	s.crossFileStages(ctx, result, contents, paths)
	if ctx.Err() != nil {
		result.Incomplete = true
		return result, ctx.Err()
	}

	s.progress.Emit(ProgressEvent{Stage: StageScore, Status: ProgressWorking})
	result.Scores = score.Aggregate(result.FileAnalyses, result.ArchitectureIssues, result.TestingGaps)
	s.progress.Emit(ProgressEvent{Stage: StageScore, Status: ProgressComplete})

	return result, nil
}

// analyzeFiles runs the per-file analyzer over all paths with a bounded
// worker pool and fills result.FileAnalyses and result.Languages. It returns
// the raw contents for the duplicate detector. A failing file degrades to a
// critical finding; it never cancels sibling analyses.
func (s *Scanner) analyzeFiles(ctx context.Context, root string, paths []string, result *scan.CodebaseAnalysis) map[string]string {
	analyses := make([]scan.FileAnalysis, len(paths))
	rawContents := make([]string, len(paths))

	var g errgroup.Group
	g.SetLimit(s.cfg.Workers)

	for i, rel := range paths {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			s.progress.Emit(ProgressEvent{Stage: StageAnalyze, Path: rel, Status: ProgressWorking})

			data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				log.Printf("WARNING: could not read %s: %v", rel, err)
				analyses[i] = unreadableAnalysis(rel)
				s.progress.Emit(ProgressEvent{Stage: StageAnalyze, Path: rel, Status: ProgressFailed, Message: err.Error()})
				return nil
			}

			content := string(data)
			rawContents[i] = content
			lang := s.registry.Detect(rel, content)
			analyses[i] = s.analyzer.Analyze(ctx, rel, content, lang)

			s.progress.Emit(ProgressEvent{Stage: StageAnalyze, Path: rel, Status: ProgressComplete})
			return nil
		})
	}
	_ = g.Wait() // workers absorb their own failures

	contents := make(map[string]string, len(paths))
	for i, fa := range analyses {
		if fa.Path == "" {
			continue // worker never ran (canceled before start)
		}
		result.FileAnalyses[fa.Path] = fa
		result.Languages[fa.Language]++
		contents[fa.Path] = rawContents[i]
	}
	return contents
}

// crossFileStages runs relationship/cycle analysis, duplicate detection, and
// testing-gap analysis concurrently; they read disjoint inputs.
func (s *Scanner) crossFileStages(ctx context.Context, result *scan.CodebaseAnalysis, contents map[string]string, paths []string) {
	var g errgroup.Group

	g.Go(func() error {
		s.progress.Emit(ProgressEvent{Stage: StageRelationships, Status: ProgressWorking})
		result.Relationships = graph.Build(result.FileAnalyses)
		result.ArchitectureIssues = graph.Analyze(result.Relationships, s.cfg.FanOutThreshold)
		if err := graph.Persist(ctx, s.store, result.FileAnalyses, result.Relationships); err != nil {
			// Persistence is optional; the in-process result is authoritative.
			log.Printf("WARNING: graph persistence failed: %v", err)
		}
		s.progress.Emit(ProgressEvent{Stage: StageRelationships, Status: ProgressComplete})
		return nil
	})

	g.Go(func() error {
		s.progress.Emit(ProgressEvent{Stage: StageDuplicates, Status: ProgressWorking})
		result.DuplicateBlocks = s.duplicates.FindDuplicates(contents)
		s.progress.Emit(ProgressEvent{Stage: StageDuplicates, Status: ProgressComplete})
		return nil
	})

	g.Go(func() error {
		s.progress.Emit(ProgressEvent{Stage: StageCoverage, Status: ProgressWorking})
		result.TestingGaps = coverage.Analyze(paths, s.cfg.MinCoverageRatio)
		s.progress.Emit(ProgressEvent{Stage: StageCoverage, Status: ProgressComplete})
		return nil
	})

	_ = g.Wait()
}

// unreadableAnalysis is the degraded result for a file that could not be read.
func unreadableAnalysis(rel string) scan.FileAnalysis {
	return scan.FileAnalysis{
		Path:     rel,
		Language: scan.LangUnknown,
		QualityIssues: []scan.Issue{{
			Severity: scan.SeverityCritical,
			Category: scan.CategoryQuality,
			Line:     1,
			Message:  "file could not be read",
			Rule:     "unreadable-file",
		}},
	}
}
