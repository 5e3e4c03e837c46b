package cwt

import "errors"

// Error taxonomy. Every error returned by this package wraps exactly one of these.
var (
	// ErrMissingPrerequisite is returned when an artifact is queried before it was computed.
	ErrMissingPrerequisite = errors.New("missing prerequisite")
	// ErrInvalidParameters is returned when caller-supplied values violate a precondition.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrDimensionMismatch is returned when two artifacts expected to share a dimension do not.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInvalidLayout is returned when a transform buffer is inconsistent with its declared dimensions.
	ErrInvalidLayout = errors.New("invalid layout")
)

// Specific failure modes.
var (
	ErrNotComputed         = kindError(ErrMissingPrerequisite, "transform result not computed")
	ErrResultNotReady      = kindError(ErrMissingPrerequisite, "transform result not ready")
	ErrAxisNotReady        = kindError(ErrMissingPrerequisite, "frequency axis not ready")
	ErrTimeAxisNotReady    = kindError(ErrMissingPrerequisite, "time axis not ready")
	ErrMissingSamplingRate = kindError(ErrMissingPrerequisite, "sampling rate not supplied")

	ErrInvalidSamplingRate = kindError(ErrInvalidParameters, "invalid sampling rate")
	ErrBelowRange          = kindError(ErrInvalidParameters, "frequency below axis range")
	ErrAboveRange          = kindError(ErrInvalidParameters, "frequency above axis range")
	ErrInvertedRange       = kindError(ErrInvalidParameters, "inverted frequency range")
	ErrInvalidWidth        = kindError(ErrInvalidParameters, "invalid width")
	ErrInvertedWindow      = kindError(ErrInvalidParameters, "inverted time window")
	ErrOutOfRange          = kindError(ErrInvalidParameters, "time window out of range")

	ErrAxisLengthMismatch = kindError(ErrDimensionMismatch, "axis length mismatch")
)

type taxonomyError struct {
	kind error
	msg  string
}

func kindError(kind error, msg string) error {
	return &taxonomyError{kind: kind, msg: msg}
}

func (e *taxonomyError) Error() string { return e.msg }

func (e *taxonomyError) Unwrap() error { return e.kind }
