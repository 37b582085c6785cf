// Package bnerr wraps the core bignum.Error/Status taxonomy with the
// ambient error types a CLI or harness layer needs: configuration
// problems, cross-reducer mismatches, and generic context wrapping,
// each carrying enough structure for callers to branch on with
// errors.As instead of parsing strings.
package bnerr

import (
	"errors"
	"fmt"
)

// Exit codes the CLI reports to the OS, distinguishing "the harness
// itself is misconfigured" from "a self-test found a real defect".
const (
	ExitSuccess        = 0
	ExitErrorGeneric   = 1
	ExitErrorConfig    = 2
	ExitErrorMismatch  = 3
	ExitErrorCanceled  = 130
)

// ConfigError reports a harness configuration problem: a bad flag
// value, an unreadable config file, an unknown reducer name.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// MismatchError reports that two independently-computed results that
// should agree (e.g. PowMod vs. PowModSlow, or one reducer vs.
// another on the same modulus) did not, which the self-test harness
// treats as a hard failure distinct from an ordinary arithmetic error.
type MismatchError struct {
	Operation string
	Want      string
	Got       string
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("%s: mismatch: want %s, got %s", e.Operation, e.Want, e.Got)
}

// NewMismatchError builds a MismatchError.
func NewMismatchError(operation, want, got string) error {
	return MismatchError{Operation: operation, Want: want, Got: got}
}

// WrapError wraps err with additional context, preserving it for
// errors.Is/errors.As via %w. Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce ConfigError
	return errors.As(err, &ce)
}

// IsMismatchError reports whether err is (or wraps) a MismatchError.
func IsMismatchError(err error) bool {
	var me MismatchError
	return errors.As(err, &me)
}
