package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docsnap <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  snapshot   Pin a repo to a ref and export a versioned PDF (default)")
	fmt.Fprintln(w, "  doctor     Diagnose external tools (git, pandoc, Chrome)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docsnap help <command>' for details on a specific command.")
}

// printSnapshotUsage prints usage for the snapshot command.
func printSnapshotUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docsnap snapshot --repo <path> --ref <ref> --note <text> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pin the repository to a ref, record the snapshot in a JSON log, render")
	fmt.Fprintln(w, "resume.md to HTML, stamp style.css with the snapshot ID, and export a PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Required:")
	fmt.Fprintln(w, "      --repo <path>       Path to the git repository")
	fmt.Fprintln(w, "      --ref <ref>         Commit hash, tag, or branch to pin")
	fmt.Fprintln(w, "      --note <text>       Freeform note recorded in the log")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Optional:")
	fmt.Fprintln(w, "      --json <path>       Snapshot log path (default: data.json)")
	fmt.Fprintln(w, "  -o, --out <dir>         Output directory (default: temp)")
	fmt.Fprintln(w, "  -c, --config <path>     YAML config file")
	fmt.Fprintln(w, "      --renderer <name>   HTML renderer: auto, pandoc, goldmark (default: auto)")
	fmt.Fprintln(w, "  -t, --timeout <dur>     PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show artifact paths")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docsnap doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that git, pandoc, and Chrome/Chromium are available and that the")
	fmt.Fprintln(w, "environment is ready for headless PDF export.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json    Output machine-readable JSON")
}

// runHelp shows help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "snapshot":
		printSnapshotUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: docsnap version")
	case "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command %q\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
