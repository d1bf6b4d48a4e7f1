package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	docsnap "github.com/alnah/go-docsnap"
	"github.com/alnah/go-docsnap/internal/config"
	"github.com/alnah/go-docsnap/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingRepo    = errors.New("--repo is required")
	ErrMissingRef     = errors.New("--ref is required")
	ErrMissingNote    = errors.New("--note is required")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrGitNotFound    = errors.New("git not found on PATH")
	ErrPandocNotFound = errors.New("pandoc not found on PATH")
)

// Snapshotter is the interface for the snapshot service.
type Snapshotter interface {
	Snapshot(ctx context.Context, input docsnap.Input) (*docsnap.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Snapshotter = (*docsnap.Service)(nil)

// settings are the effective run parameters after merging defaults,
// config file values, and flags (flags win).
type settings struct {
	logPath    string
	outDir     string
	document   string
	stylesheet string
	renderer   string
	timeout    time.Duration
}

// resolveSettings merges the config file (if any) and CLI flags.
func resolveSettings(flags *snapshotFlags) (*settings, error) {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	s := &settings{
		logPath:    firstNonEmpty(flags.logPath, cfg.Log.Path),
		outDir:     firstNonEmpty(flags.out, cfg.Output.Dir),
		document:   cfg.Document.File,
		stylesheet: cfg.Document.Stylesheet,
		renderer:   firstNonEmpty(flags.renderer, cfg.Render.Engine),
	}

	if raw := firstNonEmpty(flags.timeout, cfg.Render.Timeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, raw)
		}
		s.timeout = d
	}

	return s, nil
}

// validateRequired checks the three mandatory snapshot flags.
func validateRequired(flags *snapshotFlags) error {
	if flags.repo == "" {
		return ErrMissingRepo
	}
	if flags.ref == "" {
		return ErrMissingRef
	}
	if flags.note == "" {
		return ErrMissingNote
	}
	return nil
}

// checkTools verifies the external binaries the run will need. Git is
// always required; pandoc only when explicitly selected as renderer.
func checkTools(renderer string, env *Environment) error {
	if _, err := env.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	if renderer == docsnap.RendererPandoc {
		if _, err := env.LookPath("pandoc"); err != nil {
			return ErrPandocNotFound
		}
	}
	return nil
}

// runSnapshotCmd parses flags, builds the service, and executes the run.
func runSnapshotCmd(args []string, env *Environment) int {
	flags, err := parseSnapshotFlags(args)
	if err != nil {
		return ExitUsage
	}

	if err := validateRequired(flags); err != nil {
		fmt.Fprintln(env.Stderr, err)
		printSnapshotUsage(env.Stderr)
		return ExitUsage
	}

	set, err := resolveSettings(flags)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	if err := checkTools(set.renderer, env); err != nil {
		reportError(env, err)
		return exitCodeFor(err)
	}

	opts := []docsnap.Option{docsnap.WithRenderer(set.renderer)}
	if set.timeout > 0 {
		opts = append(opts, docsnap.WithTimeout(set.timeout))
	}
	if !flags.common.quiet {
		opts = append(opts, docsnap.WithProgress(env.Stderr))
	}

	svc := docsnap.New(opts...)
	defer svc.Close()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runSnapshot(ctx, flags, set, svc, env); err != nil {
		reportError(env, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runSnapshot executes the pipeline through the injected service and
// prints the result summary.
func runSnapshot(ctx context.Context, flags *snapshotFlags, set *settings, svc Snapshotter, env *Environment) error {
	res, err := svc.Snapshot(ctx, docsnap.Input{
		RepoPath:       flags.repo,
		Ref:            flags.ref,
		Note:           flags.note,
		LogPath:        set.logPath,
		OutputDir:      set.outDir,
		DocumentFile:   set.document,
		StylesheetFile: set.stylesheet,
	})
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Snapshot %s at %s\n", res.ID, res.CommitHash)
		fmt.Fprintf(env.Stdout, "Created %s\n", res.PDFPath)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "HTML: %s\n", res.HTMLPath)
		fmt.Fprintf(env.Stdout, "CSS:  %s\n", res.CSSPath)
	}
	return nil
}

// reportError prints an error with an actionable hint when one applies.
func reportError(env *Environment, err error) {
	fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
}

// hintFor maps known failures to hints appended to the error message.
func hintFor(err error) string {
	switch {
	case errors.Is(err, docsnap.ErrDirtyWorkingTree):
		return hints.ForDirtyTree()
	case errors.Is(err, docsnap.ErrLogParse):
		return hints.ForLogParse()
	case errors.Is(err, docsnap.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, ErrGitNotFound):
		return hints.ForMissingGit()
	case errors.Is(err, ErrPandocNotFound):
		return hints.ForMissingPandoc()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	}
	return ""
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
