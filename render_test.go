package docsnap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPandocRenderer(t *testing.T) {
	t.Parallel()

	t.Run("missing document", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{results: map[string]fakeResult{}}
		p := &pandocRenderer{runner: runner}

		err := p.RenderHTML(context.Background(), filepath.Join(t.TempDir(), "resume.md"), "out.html", "style.css")
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("RenderHTML() error = %v, want ErrDocumentNotFound", err)
		}
		if len(runner.calls) != 0 {
			t.Errorf("pandoc invoked despite missing document: %v", runner.calls)
		}
	})

	t.Run("invokes pandoc with standalone and stylesheet flags", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		doc := filepath.Join(dir, "resume.md")
		if err := os.WriteFile(doc, []byte("# Hi"), 0o644); err != nil {
			t.Fatal(err)
		}
		out := filepath.Join(dir, "resume.html")

		runner := &fakeRunner{results: map[string]fakeResult{}}
		p := &pandocRenderer{runner: runner}

		if err := p.RenderHTML(context.Background(), doc, out, "style.css"); err != nil {
			t.Fatalf("RenderHTML() error = %v", err)
		}
		want := "pandoc -s " + doc + " -o " + out + " -c style.css"
		if len(runner.calls) != 1 || runner.calls[0] != want {
			t.Errorf("calls = %v, want [%s]", runner.calls, want)
		}
	})

	t.Run("pandoc failure surfaces stderr", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		doc := filepath.Join(dir, "resume.md")
		if err := os.WriteFile(doc, []byte("# Hi"), 0o644); err != nil {
			t.Fatal(err)
		}

		runner := &fakeRunner{results: map[string]fakeResult{
			"pandoc": {stderr: "pandoc: unknown option\n", err: errors.New("exit status 2")},
		}}
		p := &pandocRenderer{runner: runner}

		err := p.RenderHTML(context.Background(), doc, filepath.Join(dir, "out.html"), "style.css")
		if !errors.Is(err, ErrRenderFailed) {
			t.Fatalf("RenderHTML() error = %v, want ErrRenderFailed", err)
		}
	})
}

func TestSelectRenderer(t *testing.T) {
	// No t.Parallel(): overrides the pandocOnPath package variable.

	origOnPath := pandocOnPath
	defer func() { pandocOnPath = origOnPath }()

	runner := &fakeRunner{}

	t.Run("explicit pandoc", func(t *testing.T) {
		r, err := selectRenderer(RendererPandoc, runner)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := r.(*pandocRenderer); !ok {
			t.Errorf("selectRenderer(pandoc) = %T", r)
		}
	})

	t.Run("explicit goldmark", func(t *testing.T) {
		r, err := selectRenderer(RendererGoldmark, runner)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := r.(*goldmarkRenderer); !ok {
			t.Errorf("selectRenderer(goldmark) = %T", r)
		}
	})

	t.Run("auto prefers pandoc when available", func(t *testing.T) {
		pandocOnPath = func() bool { return true }
		r, err := selectRenderer(RendererAuto, runner)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := r.(*pandocRenderer); !ok {
			t.Errorf("selectRenderer(auto) = %T, want pandocRenderer", r)
		}
	})

	t.Run("auto falls back to goldmark", func(t *testing.T) {
		pandocOnPath = func() bool { return false }
		r, err := selectRenderer("", runner)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := r.(*goldmarkRenderer); !ok {
			t.Errorf("selectRenderer(\"\") = %T, want goldmarkRenderer", r)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := selectRenderer("wkhtmltopdf", runner)
		if !errors.Is(err, ErrUnknownRenderer) {
			t.Fatalf("selectRenderer() error = %v, want ErrUnknownRenderer", err)
		}
	})
}
