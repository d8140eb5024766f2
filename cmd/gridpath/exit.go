package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/internal/runner"
)

// Process exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitUnreachable = 3
)

// ExitError carries a process exit code with the message printed for it.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func usageError(format string, args ...any) error {
	return &ExitError{Code: exitUsage, Message: fmt.Sprintf(format, args...)}
}

// exitCode prints err, if any, and maps it to an exit code.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	fmt.Fprintln(stderr, "gridpath:", err)

	var exit *ExitError
	switch {
	case errors.As(err, &exit):
		return exit.Code
	case errors.Is(err, runner.ErrUnreachable):
		return exitUnreachable
	case errors.Is(err, runner.ErrUnknownPolicy), errors.Is(err, runner.ErrUnknownParam),
		errors.Is(err, runner.ErrBadParam):
		return exitUsage
	}
	return exitFailure
}
