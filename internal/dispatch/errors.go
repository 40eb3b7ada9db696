// SPDX-License-Identifier: MIT

package dispatch

import "errors"

// Sentinel errors for malformed streams.
var (
	// ErrBadHeader indicates a missing or invalid "N K" header.
	ErrBadHeader = errors.New("dispatch: bad header")

	// ErrMalformedNumber indicates a token that is not a non-negative integer.
	ErrMalformedNumber = errors.New("dispatch: malformed number")

	// ErrTruncatedMatrix indicates the stream ended inside a submission matrix.
	ErrTruncatedMatrix = errors.New("dispatch: truncated matrix")

	// ErrUnknownCommand indicates a command line that is neither submit nor report.
	ErrUnknownCommand = errors.New("dispatch: unknown command")
)

// errorKind labels err for the input error metric.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrBadHeader):
		return "header"
	case errors.Is(err, ErrMalformedNumber):
		return "number"
	case errors.Is(err, ErrTruncatedMatrix):
		return "truncated"
	case errors.Is(err, ErrUnknownCommand):
		return "command"
	default:
		return "other"
	}
}
