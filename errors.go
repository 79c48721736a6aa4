package tga

import (
	"errors"
	"strconv"
)

// Standard error types for TGA decoding.
// None of them are worth retrying with the same input.
var (
	ErrMalformedHeader       = errors.New("tga: malformed header")
	ErrUnsupportedFormat     = errors.New("tga: unsupported format")
	ErrUnsupportedColorDepth = errors.New("tga: unsupported color depth")
	ErrTruncatedData         = errors.New("tga: truncated data")
	ErrEmptyResult           = errors.New("tga: empty result")
)

// Stage names the decode step that failed.
type Stage string

// Decode stages that can fail, in pipeline order.
// Channel and orientation normalization cannot fail.
const (
	StageHeader   Stage = "header"
	StageValidate Stage = "validate"
	StageData     Stage = "data"
)

// DecodeError describes a failed decode. It wraps one of the Err* sentinels,
// so callers can match it with errors.Is.
type DecodeError struct {
	Stage Stage  // Step that failed.
	Name  string // Source identifier from Options.Name, may be empty.
	Depth int    // Offending bits per pixel, set for ErrUnsupportedColorDepth.
	Err   error
}

func (e *DecodeError) Error() string {
	msg := e.Err.Error()
	if errors.Is(e.Err, ErrUnsupportedColorDepth) {
		msg += ": " + strconv.Itoa(e.Depth)
	}

	if e.Name != "" {
		msg += " in file: " + e.Name
	}

	return msg + " (" + string(e.Stage) + ")"
}

func (e *DecodeError) Unwrap() error { return e.Err }
