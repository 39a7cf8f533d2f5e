package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dusk-indust/codescan/internal/config"
	"github.com/dusk-indust/codescan/internal/detect"
	"github.com/dusk-indust/codescan/internal/export"
	"github.com/dusk-indust/codescan/internal/orchestrator"
)

// CLI flags parsed from command line.
type cliFlags struct {
	Root        string
	Output      string
	MermaidPath string
	Workers     int
	GraphDB     string
	Verbose     bool
	Version     bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("codescan", flag.ContinueOnError)
	fs.StringVar(&flags.Root, "root", ".", "path to the codebase to scan")
	fs.StringVar(&flags.Output, "out", "", "write the JSON report to this path (default: stdout)")
	fs.StringVar(&flags.MermaidPath, "mermaid", "", "write a Mermaid dependency diagram to this path")
	fs.IntVar(&flags.Workers, "workers", 0, "per-file analysis concurrency (0: config or default)")
	fs.StringVar(&flags.GraphDB, "graph-db", "", "persist the relationship graph to a KuzuDB at this path")
	fs.BoolVar(&flags.Verbose, "verbose", false, "print per-stage progress")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	cfg, err := config.Load(flags.Root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}
	if flags.GraphDB != "" {
		cfg.GraphDBPath = flags.GraphDB
	}

	store, err := openStore(cfg.GraphDBPath)
	if err != nil {
		return fmt.Errorf("open graph store: %w", err)
	}

	scanner := orchestrator.New(cfg, detect.NewSecurityDetector(), detect.NewPerformanceDetector(), store)

	done := make(chan struct{})
	// Close ends the progress stream; wait for the consumer to drain it.
	defer func() { <-done }()
	defer scanner.Close()
	go func() {
		defer close(done)
		for event := range scanner.Progress() {
			if flags.Verbose {
				fmt.Fprintln(os.Stderr, orchestrator.FormatProgress(event))
			}
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analysis, scanErr := scanner.Scan(ctx, flags.Root)
	if analysis == nil {
		return scanErr
	}
	if scanErr != nil {
		fmt.Fprintf(os.Stderr, "warning: scan incomplete: %v\n", scanErr)
	}

	if flags.Output != "" {
		if err := export.WriteAnalysis(flags.Output, flags.Root, analysis); err != nil {
			return err
		}
	} else {
		data, err := export.MarshalAnalysis(flags.Root, analysis)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	}

	if flags.MermaidPath != "" {
		diagram := export.GenerateMermaid(analysis)
		if err := os.WriteFile(flags.MermaidPath, []byte(diagram), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", flags.MermaidPath, err)
		}
	}

	return nil
}
