package main

import (
	"errors"

	docsnap "github.com/alnah/go-docsnap"
	"github.com/alnah/go-docsnap/internal/config"
)

// Exit codes for the docsnap CLI. Pipeline failures exit uniformly with 1;
// only errors caught before the pipeline starts (bad flags, bad config)
// get the conventional usage code.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// exitCodeFor returns the exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrMissingRepo) ||
		errors.Is(err, ErrMissingRef) ||
		errors.Is(err, ErrMissingNote) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidEngine) ||
		errors.Is(err, docsnap.ErrUnknownRenderer) {
		return ExitUsage
	}

	return ExitFailure
}
