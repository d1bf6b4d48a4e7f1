package docsnap

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/alnah/go-docsnap/internal/fileutil"
)

// htmlRenderer abstracts document-to-HTML conversion to allow different
// backends (pandoc subprocess, built-in goldmark).
type htmlRenderer interface {
	// RenderHTML converts the document at docPath into a standalone HTML
	// file at outPath, referencing the stylesheet by cssName.
	RenderHTML(ctx context.Context, docPath, outPath, cssName string) error
}

// Compile-time interface checks.
var (
	_ htmlRenderer = (*pandocRenderer)(nil)
	_ htmlRenderer = (*goldmarkRenderer)(nil)
)

// pandocRenderer converts the document by invoking the pandoc CLI.
type pandocRenderer struct {
	runner CommandRunner
}

// RenderHTML runs pandoc in standalone mode with a stylesheet reference:
// pandoc -s <doc> -o <out> -c <cssName>.
func (p *pandocRenderer) RenderHTML(ctx context.Context, docPath, outPath, cssName string) error {
	if !fileutil.FileExists(docPath) {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, docPath)
	}

	_, stderr, err := p.runner.Run(ctx, "", "pandoc", "-s", docPath, "-o", outPath, "-c", cssName)
	if err != nil {
		return fmt.Errorf("%w: pandoc: %s", ErrRenderFailed, firstLine(stderr))
	}
	return nil
}

// pandocOnPath reports whether the pandoc binary is available.
// Overridable in tests.
var pandocOnPath = func() bool {
	_, err := exec.LookPath("pandoc")
	return err == nil
}

// selectRenderer resolves a renderer name to an implementation.
// "auto" prefers pandoc when it is on PATH and falls back to goldmark.
func selectRenderer(name string, runner CommandRunner) (htmlRenderer, error) {
	switch name {
	case RendererPandoc:
		return &pandocRenderer{runner: runner}, nil
	case RendererGoldmark:
		return newGoldmarkRenderer(), nil
	case "", RendererAuto:
		if pandocOnPath() {
			return &pandocRenderer{runner: runner}, nil
		}
		return newGoldmarkRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be auto, pandoc, or goldmark)", ErrUnknownRenderer, name)
	}
}
