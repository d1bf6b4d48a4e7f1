package docsnap

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// dirPermissions for the output directory: rwxr-x---.
const dirPermissions = 0o750

// step is one fallible stage of the snapshot pipeline.
type step struct {
	name string
	run  func(ctx context.Context) error
}

// Service orchestrates the snapshot pipeline.
type Service struct {
	cfg      serviceConfig
	runner   CommandRunner
	git      *gitClient
	exporter pdfExporter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithRenderer).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:  defaultTimeout,
			renderer: RendererAuto,
			progress: io.Discard,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.runner == nil {
		s.runner = &ExecRunner{}
	}
	s.git = &gitClient{runner: s.runner}

	// Create PDF exporter if not injected (e.g., by tests)
	if s.exporter == nil {
		s.exporter = newRodExporter(s.cfg.timeout)
	}

	return s
}

// Snapshot runs the full pipeline: preflight, checkout, resolve, log
// append, render, style injection, PDF export. Steps run strictly in
// order and the first failure aborts the run; nothing is rolled back.
// The context is used for cancellation and timeout.
func (s *Service) Snapshot(ctx context.Context, input Input) (*Result, error) {
	input.applyDefaults()
	if err := input.validate(); err != nil {
		return nil, err
	}

	renderer, err := selectRenderer(s.cfg.renderer, s.runner)
	if err != nil {
		return nil, err
	}

	res := &Result{
		HTMLPath: filepath.Join(input.OutputDir, htmlFileName),
		CSSPath:  filepath.Join(input.OutputDir, input.StylesheetFile),
		PDFPath:  filepath.Join(input.OutputDir, pdfFileName),
	}

	docPath := filepath.Join(input.RepoPath, input.DocumentFile)
	stylePath := filepath.Join(input.RepoPath, input.StylesheetFile)

	steps := []step{
		{"preflight", func(ctx context.Context) error {
			return s.git.EnsureClean(ctx, input.RepoPath)
		}},
		{"checkout", func(ctx context.Context) error {
			s.progressf("Checking out %s...\n", input.Ref)
			return s.git.Checkout(ctx, input.RepoPath, input.Ref)
		}},
		{"resolve", func(ctx context.Context) error {
			hash, err := s.git.Head(ctx, input.RepoPath)
			if err != nil {
				return err
			}
			res.CommitHash = hash
			return nil
		}},
		{"log", func(context.Context) error {
			log, err := LoadLog(input.LogPath)
			if err != nil {
				return err
			}
			res.ID = log.Append(res.CommitHash, input.Note)
			if err := log.Save(input.LogPath); err != nil {
				return err
			}
			s.progressf("Added entry with ID %s to %s\n", res.ID, input.LogPath)
			return nil
		}},
		{"prepare", func(context.Context) error {
			return os.MkdirAll(input.OutputDir, dirPermissions)
		}},
		{"render", func(ctx context.Context) error {
			s.progressf("Rendering %s to HTML...\n", input.DocumentFile)
			return renderer.RenderHTML(ctx, docPath, res.HTMLPath, input.StylesheetFile)
		}},
		{"style", func(context.Context) error {
			s.progressf("Copying %s with ref-id %s\n", input.StylesheetFile, refTail(res.ID))
			return injectStylesheet(stylePath, res.CSSPath, res.ID)
		}},
		{"pdf", func(ctx context.Context) error {
			s.progressf("Generating PDF with headless Chrome...\n")
			return s.exporter.ExportPDF(ctx, res.HTMLPath, res.PDFPath)
		}},
	}

	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := st.run(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", st.name, err)
		}
	}

	s.progressf("Generated PDF: %s\n", res.PDFPath)
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.exporter != nil {
		return s.exporter.Close()
	}
	return nil
}

// progressf writes a progress message to the configured writer.
func (s *Service) progressf(format string, args ...any) {
	fmt.Fprintf(s.cfg.progress, format, args...)
}
