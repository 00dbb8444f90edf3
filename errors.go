//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

import "fmt"

// MissingError indicates that a parser's target was simply absent from
// the command line. It is recoverable: [Optional], [Many], [Some],
// [Fallback], and [Alt] all know how to handle it.
type MissingError struct {
	// Reason is a short, non-user-facing description used for debugging.
	Reason string
}

var _ error = MissingError{}

// Error implements error.
func (e MissingError) Error() string {
	return e.Reason
}

func missing(reason string) error {
	return MissingError{Reason: reason}
}

// IsMissing reports whether err is a recoverable [MissingError].
func IsMissing(err error) bool {
	_, ok := err.(MissingError)
	return ok
}

// UserError indicates that a parser's target was present but invalid.
// Unlike [MissingError], it is never swallowed by a recovery combinator;
// it always propagates to the driver.
type UserError struct {
	// Message is the diagnostic shown to the user.
	Message string
}

var _ error = UserError{}

// Error implements error.
func (e UserError) Error() string {
	return e.Message
}

func userError(format string, args ...any) error {
	return UserError{Message: fmt.Sprintf(format, args...)}
}

// IsUserError reports whether err is a plain [UserError]. The more
// specific fatal error types below ([MissingValueError],
// [ParseValueError], and the rest) are distinct types and report false.
func IsUserError(err error) bool {
	_, ok := err.(UserError)
	return ok
}

// MissingValueError indicates that a named flag requiring an argument was
// found without one, either because the command line ended or because
// another flag immediately followed it.
type MissingValueError struct {
	// Flag is the textual form of the offending flag, e.g. "--speed".
	Flag string

	// Got is the textual form of the flag found in place of the
	// argument, if any.
	Got string
}

var _ error = MissingValueError{}

// Error implements error.
func (e MissingValueError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("%s requires an argument, got flag %s", e.Flag, e.Got)
	}
	return fmt.Sprintf("%s requires an argument", e.Flag)
}

// UnexpectedFlagError indicates that a positional parser found a flag
// where it expected a free-standing value.
type UnexpectedFlagError struct {
	// Flag is the textual form of the unexpected flag.
	Flag string
}

var _ error = UnexpectedFlagError{}

// Error implements error.
func (e UnexpectedFlagError) Error() string {
	return fmt.Sprintf("expected an argument, got %s", e.Flag)
}

// RequiredError indicates that a required child of a product combinator
// did not produce a value.
type RequiredError struct {
	// Name is the best available name for the missing argument: the
	// long name, else the short name, else the placeholder.
	Name string
}

var _ error = RequiredError{}

// Error implements error.
func (e RequiredError) Error() string {
	return fmt.Sprintf("argument %s is required", e.Name)
}

// UnexpectedArgumentError indicates leftover tokens after a top-level
// parser otherwise succeeded.
type UnexpectedArgumentError struct {
	// Token is the textual form of the first leftover token.
	Token string
}

var _ error = UnexpectedArgumentError{}

// Error implements error.
func (e UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("unexpected argument %s", e.Token)
}

// ParseValueError indicates that [ParseWith] failed to convert a parsed
// value.
type ParseValueError struct {
	// Value is the raw, offending value.
	Value string

	// Reason is the conversion failure, as reported by the parse hook.
	Reason string
}

var _ error = ParseValueError{}

// Error implements error.
func (e ParseValueError) Error() string {
	return fmt.Sprintf("failed to parse value %q: %s", e.Value, e.Reason)
}

// GuardError indicates that [Guard] rejected an otherwise valid value.
type GuardError struct {
	// Message is the diagnostic supplied to [Guard].
	Message string
}

var _ error = GuardError{}

// Error implements error.
func (e GuardError) Error() string {
	return e.Message
}
