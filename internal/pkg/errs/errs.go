// Package errs wraps cockroachdb/errors so the rest of the codebase
// depends on one error surface: stack-carrying wraps plus sentinel
// marking for errors.Is matching across layers.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark makes err match markErr under errors.Is. The sentinel is joined
// into the unwrap chain, so both the standard library matcher and
// cockroachdb's see it.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Join(err, markErr)
}

// ExtractStackLines renders the verbose form of err and returns at most
// maxLines of it, for structured log output.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
