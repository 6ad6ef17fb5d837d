package grouping

import "errors"

// ErrInvalidArgument reports a non-positive group or draw count.
// Callers are expected to validate before calling in; reaching it is a bug.
var ErrInvalidArgument = errors.New("invalid argument")
