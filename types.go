package docsnap

import (
	"io"
	"os"
	"time"
)

// Fixed-convention filenames shared with the target repository and the
// output directory.
const (
	DefaultDocumentFile   = "resume.md"
	DefaultStylesheetFile = "style.css"
	DefaultLogPath        = "data.json"
	DefaultOutputDir      = "temp"

	htmlFileName = "resume.html"
	pdfFileName  = "output.pdf"
)

// Renderer names accepted by Input.Renderer and config files.
const (
	RendererAuto     = "auto"
	RendererPandoc   = "pandoc"
	RendererGoldmark = "goldmark"
)

// Input contains snapshot parameters.
type Input struct {
	RepoPath string // Path to the git repository (required)
	Ref      string // Commit hash, tag, or branch to pin (required)
	Note     string // Freeform note recorded in the log (required)

	LogPath        string // Snapshot log path (default "data.json")
	OutputDir      string // Artifact directory (default "temp")
	DocumentFile   string // Document name inside the repo (default "resume.md")
	StylesheetFile string // Stylesheet name inside the repo (default "style.css")
}

// applyDefaults fills zero-valued optional fields.
func (in *Input) applyDefaults() {
	if in.LogPath == "" {
		in.LogPath = DefaultLogPath
	}
	if in.OutputDir == "" {
		in.OutputDir = DefaultOutputDir
	}
	if in.DocumentFile == "" {
		in.DocumentFile = DefaultDocumentFile
	}
	if in.StylesheetFile == "" {
		in.StylesheetFile = DefaultStylesheetFile
	}
}

// validate checks required fields and that the repository path is a directory.
func (in *Input) validate() error {
	if in.RepoPath == "" {
		return ErrEmptyRepoPath
	}
	if in.Ref == "" {
		return ErrEmptyRef
	}
	if in.Note == "" {
		return ErrEmptyNote
	}
	info, err := os.Stat(in.RepoPath)
	if err != nil || !info.IsDir() {
		return ErrRepoNotFound
	}
	return nil
}

// Result holds the artifacts of a successful snapshot.
type Result struct {
	ID         string // UUID key of the new log entry
	CommitHash string // Resolved 40-hex commit hash
	HTMLPath   string // Rendered HTML file
	CSSPath    string // Stylesheet copy with the ID stamped in
	PDFPath    string // Exported PDF
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout  time.Duration
	renderer string
	progress io.Writer
}

// defaultTimeout bounds PDF generation when no timeout is specified.
const defaultTimeout = 2 * time.Minute

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("docsnap: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithRenderer selects the HTML renderer: "auto", "pandoc", or "goldmark".
// Validation happens at Snapshot time.
func WithRenderer(name string) Option {
	return func(s *Service) {
		s.cfg.renderer = name
	}
}

// WithProgress directs per-step progress messages to w.
func WithProgress(w io.Writer) Option {
	return func(s *Service) {
		s.cfg.progress = w
	}
}

// WithRunner injects a command runner (e.g., a fake in tests).
func WithRunner(r CommandRunner) Option {
	return func(s *Service) {
		s.runner = r
	}
}

// withExporter injects a PDF exporter. Used by tests to avoid a browser.
func withExporter(e pdfExporter) Option {
	return func(s *Service) {
		s.exporter = e
	}
}
