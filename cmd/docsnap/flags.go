package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// snapshotFlags holds all flags for the snapshot command.
type snapshotFlags struct {
	common   commonFlags
	repo     string
	ref      string
	note     string
	logPath  string
	out      string
	renderer string
	timeout  string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-step progress")
}

// parseSnapshotFlags parses snapshot command flags.
func parseSnapshotFlags(args []string) (*snapshotFlags, error) {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	f := &snapshotFlags{}

	fs.StringVar(&f.repo, "repo", "", "path to the git repository")
	fs.StringVar(&f.ref, "ref", "", "commit hash, tag, or branch to pin")
	fs.StringVar(&f.note, "note", "", "freeform note recorded in the log")
	fs.StringVar(&f.logPath, "json", "", "snapshot log path (default data.json)")
	fs.StringVarP(&f.out, "out", "o", "", "output directory (default temp)")
	fs.StringVar(&f.renderer, "renderer", "", "HTML renderer: auto, pandoc, goldmark")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printSnapshotUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}
