package docsnap

import "errors"

// Sentinel errors for library operations.
var (
	// Input validation errors.
	ErrEmptyRepoPath = errors.New("repository path cannot be empty")
	ErrEmptyRef      = errors.New("ref cannot be empty")
	ErrEmptyNote     = errors.New("note cannot be empty")
	ErrRepoNotFound  = errors.New("repository path is not a directory")

	// Git errors.
	ErrGitCommand       = errors.New("git command failed")
	ErrDirtyWorkingTree = errors.New("working tree is not clean")

	// Snapshot log errors.
	ErrLogParse = errors.New("snapshot log is not valid JSON")
	ErrLogWrite = errors.New("failed to write snapshot log")

	// Render errors.
	ErrDocumentNotFound = errors.New("document not found in repository")
	ErrRenderFailed     = errors.New("HTML rendering failed")
	ErrUnknownRenderer  = errors.New("unknown renderer")

	// Style injection errors.
	ErrStylesheetNotFound = errors.New("stylesheet not found in repository")

	// PDF export errors.
	ErrHTMLNotFound   = errors.New("rendered HTML not found")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
