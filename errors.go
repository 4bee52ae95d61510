package vamrgb

import "errors"

// Sentinel errors for the composition pipeline.
// These errors enable reliable error classification using errors.Is().

// Input validation errors.
var (
	// ErrInvalidOffset indicates deltaT is not a positive number.
	// Caller error; not retryable without correcting the input.
	ErrInvalidOffset = errors.New("delta-t must be positive")

	// ErrInvalidChannelCount indicates a raster has the wrong channel
	// depth for the requested operation.
	ErrInvalidChannelCount = errors.New("invalid channel count")
)

// Collaborator errors.
var (
	// ErrFrameUnavailable indicates the FrameSource failed to produce a
	// frame at an in-range timestamp. May be transient; the core does
	// not retry, leaving retry policy to the caller.
	ErrFrameUnavailable = errors.New("frame unavailable")

	// ErrRasterMismatch indicates rasters that must share dimensions do
	// not. A FrameSource contract violation; fatal for the invocation.
	ErrRasterMismatch = errors.New("raster dimensions mismatch")

	// ErrOutOfRange indicates a timestamp outside [0, duration]. The
	// sampler's boundary clamping keeps the core from ever triggering
	// this; it exists for direct FrameSource callers.
	ErrOutOfRange = errors.New("timestamp out of range")
)
