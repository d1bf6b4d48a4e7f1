package docsnap

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-docsnap/internal/fileutil"
)

// htmlTemplate wraps goldmark's fragment output in a complete HTML5
// document that references the stylesheet by name, matching pandoc's
// standalone output shape.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document</title>
<link rel="stylesheet" href="%s" />
</head>
<body>
%s
</body>
</html>
`

// goldmarkRenderer converts the document using goldmark (pure Go).
// Used when pandoc is not installed or when explicitly selected.
type goldmarkRenderer struct {
	md goldmark.Markdown
}

// newGoldmarkRenderer creates a goldmarkRenderer with GFM extensions and
// syntax highlighting.
func newGoldmarkRenderer() *goldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so the repo stylesheet stays in control
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithXHTML(),
			// Note: WithUnsafe() intentionally NOT used for security.
		),
	)
	return &goldmarkRenderer{md: md}
}

// RenderHTML converts the document at docPath to a standalone HTML file.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *goldmarkRenderer) RenderHTML(ctx context.Context, docPath, outPath, cssName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := os.ReadFile(docPath) // #nosec G304 -- path derives from the CLI user's repo
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrDocumentNotFound, docPath)
		}
		return fmt.Errorf("%w: reading %s: %v", ErrRenderFailed, docPath, err)
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if convErr := r.md.Convert(content, &buf); convErr != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRenderFailed, convErr)}
			return
		}
		doc := fmt.Sprintf(htmlTemplate, html.EscapeString(cssName), buf.String())
		done <- result{html: doc}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-done:
		if res.err != nil {
			return res.err
		}
		if err := os.WriteFile(outPath, []byte(res.html), fileutil.FilePermissions); err != nil {
			return fmt.Errorf("%w: writing %s: %v", ErrRenderFailed, outPath, err)
		}
		return nil
	}
}
