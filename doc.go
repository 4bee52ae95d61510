// Package vamrgb implements the Temporal RGB Composition transform: it
// encodes three moments of a video into a single still image by mapping
// per-pixel luminance from three sampled frames onto the red, green, and
// blue channels.
//
// # Architecture Overview
//
// The transform is a pipeline of small pure stages composed by a thin
// stateless orchestrator:
//
//	FrameSource → TemporalSampler → Luminance ×3 → Compose → CompositeImage
//
// Each stage is usable on its own and carries no state between calls, so
// every stage is independently testable and the pipeline as a whole is
// safe for concurrent use against a concurrently-readable FrameSource.
//
// # Rasters
//
// Image data is represented as a Raster, a row-major interleaved grid of
// 8-bit samples with one channel (luminance) or three channels (RGB):
//
//	frame := vamrgb.NewRGB(640, 480)
//	lum, err := vamrgb.Luminance(frame)
//	if err != nil {
//	    return fmt.Errorf("luminance conversion failed: %w", err)
//	}
//
// # Temporal Sampling
//
// A TemporalTriple holds the three timestamps derived from a reference
// time and a positive offset deltaT: past = reference-deltaT, present =
// reference, future = reference+deltaT. Candidate timestamps falling
// outside [0, duration] are clamped to the nearest bound rather than
// rejected, trading a degenerate zero-displacement sample for usable
// output at the edges of the video. The clamp is a success path, never
// an error.
//
// # Channel Composition
//
// Compose merges three luminance rasters into one RGB raster with a
// fixed channel assignment: past→R, present→G, future→B. The assignment
// is a protocol invariant; downstream motion-direction inference reads
// channel divergence against exactly this ordering.
//
// # Pipeline
//
// Pipeline ties the stages together:
//
//	p := vamrgb.New()
//	img, err := p.Generate(ctx, source, 12.5)
//	if err != nil {
//	    return fmt.Errorf("composite generation failed: %w", err)
//	}
//
// The three frame acquisitions run concurrently with fail-fast
// semantics: the first fetch error cancels the remaining fetches and is
// surfaced; no partial triple is ever returned.
//
// # Errors
//
// Failures are classified with sentinel errors (ErrInvalidOffset,
// ErrInvalidChannelCount, ErrFrameUnavailable, ErrRasterMismatch,
// ErrOutOfRange) and wrapped with context, so callers can branch with
// errors.Is while still seeing what went wrong:
//
//	if errors.Is(err, vamrgb.ErrFrameUnavailable) {
//	    // possibly transient; retrying is the caller's choice
//	}
//
// The core never retries internally and never returns a composite built
// from mismatched inputs.
package vamrgb
