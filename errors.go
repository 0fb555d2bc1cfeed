package gridrender

import (
	"fmt"

	"github.com/olekukonko/errors"
)

// Kind classifies a gridrender error, matching the error families the
// engine distinguishes between for callers that need to branch on failure
// mode rather than match error text.
type Kind int

const (
	// KindShape: rows of uneven length, empty data, zero columns.
	KindShape Kind = iota
	// KindConfig: unknown border preset, non-positive width, or a
	// padding+truncation combination that resolves to zero content space.
	KindConfig
	// KindSpan: overlapping spans, out-of-bounds spans, a span whose
	// covered cells disagree with the grid shape.
	KindSpan
	// KindStreamingState: a streaming driver method called out of order.
	KindStreamingState
	// KindInternal: an invariant the engine itself should have prevented.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindConfig:
		return "config"
	case KindSpan:
		return "span"
	case KindStreamingState:
		return "streaming_state"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// Error is the structured failure value every exported gridrender
// operation returns on failure; none of the engine's error paths are
// swallowed or logged on the caller's behalf.
type Error struct {
	Kind Kind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("gridrender: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.err }

func newError(kind Kind, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: kind, Msg: msg, err: errors.New(msg)}
}

// Warning is a non-fatal condition surfaced alongside a successful render
// when the caller opts into strict reporting (see TableConfig.Strict).
type Warning struct {
	Row, Col int
	Message  string
}
