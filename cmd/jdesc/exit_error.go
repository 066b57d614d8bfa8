// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/invowk/jdesc/pkg/descriptor"
)

// Process exit codes.
const (
	ExitOK            ExitCode = 0
	ExitFailure       ExitCode = 1
	ExitUsage         ExitCode = 2
	ExitMalformed     ExitCode = 3
	ExitPrecondition  ExitCode = 4
	ExitUndefinedSize ExitCode = 5
)

type (
	// ExitCode represents a process exit status code.
	// The zero value (0) means success.
	ExitCode int

	// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
	ExitError struct {
		Code ExitCode
		Err  error
	}
)

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeFor maps an error returned by a command to the process exit code.
// An explicit ExitError wins; codec errors map by kind.
func exitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	kind, ok := descriptor.KindOf(err)
	if !ok {
		return ExitFailure
	}
	switch kind {
	case descriptor.KindMalformed:
		return ExitMalformed
	case descriptor.KindPrecondition:
		return ExitPrecondition
	case descriptor.KindUndefinedSize:
		return ExitUndefinedSize
	default:
		return ExitFailure
	}
}
