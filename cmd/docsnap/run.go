package main

import (
	"fmt"
	"strings"
)

// runMain dispatches to a subcommand and returns the process exit code.
// A leading flag (or no recognizable command) falls through to snapshot,
// which is the default command.
func runMain(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "snapshot":
		return runSnapshotCmd(args[1:], env)
	case "doctor":
		return runDoctorCmd(args[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "docsnap %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(args[1:], env)
	case "-h", "--help":
		printUsage(env.Stdout)
		return ExitSuccess
	}

	if strings.HasPrefix(args[0], "-") {
		return runSnapshotCmd(args, env)
	}

	fmt.Fprintf(env.Stderr, "unknown command %q\n\n", args[0])
	printUsage(env.Stderr)
	return ExitUsage
}
