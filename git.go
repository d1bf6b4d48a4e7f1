package docsnap

import (
	"context"
	"fmt"
	"strings"
)

// gitClient wraps the git CLI for the three operations the pipeline needs.
type gitClient struct {
	runner CommandRunner
}

// Status returns the porcelain status output for the repository.
// Empty output means the working tree is clean.
func (g *gitClient) Status(ctx context.Context, repoPath string) (string, error) {
	out, stderr, err := g.runner.Run(ctx, repoPath, "git", "status", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("%w: status: %s", ErrGitCommand, firstLine(stderr))
	}
	return out, nil
}

// EnsureClean fails with ErrDirtyWorkingTree if any change is pending.
func (g *gitClient) EnsureClean(ctx context.Context, repoPath string) error {
	status, err := g.Status(ctx, repoPath)
	if err != nil {
		return err
	}
	if status != "" {
		return fmt.Errorf("%w: commit or stash your changes", ErrDirtyWorkingTree)
	}
	return nil
}

// Checkout moves the working tree to the given ref.
func (g *gitClient) Checkout(ctx context.Context, repoPath, ref string) error {
	_, stderr, err := g.runner.Run(ctx, repoPath, "git", "checkout", ref)
	if err != nil {
		return fmt.Errorf("%w: checkout %s: %s", ErrGitCommand, ref, firstLine(stderr))
	}
	return nil
}

// Head resolves the full commit hash of the current working tree state.
func (g *gitClient) Head(ctx context.Context, repoPath string) (string, error) {
	out, stderr, err := g.runner.Run(ctx, repoPath, "git", "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("%w: rev-parse HEAD: %s", ErrGitCommand, firstLine(stderr))
	}
	return strings.TrimSpace(out), nil
}

// firstLine trims stderr down to its first non-empty line for error messages.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
