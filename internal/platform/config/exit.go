package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Exit codes of the calculator CLIs.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(ExitError)
}

// ExitOnParseError exits after a failed flag parse: silently with 0 when help
// was requested, with the usage code otherwise. The flag package has already
// printed usage by then.
func ExitOnParseError(err error) {
	os.Exit(ReportParseError(os.Stderr, err))
}

// ReportParseError writes err to w unless it is a help request and returns
// the exit code for it.
func ReportParseError(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return ExitUsage
}
