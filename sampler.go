package vamrgb

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// FrameSource supplies decoded video frames by timestamp.
//
// Implementations must return a three-channel raster for any timestamp
// within [0, Duration()] and fail with ErrOutOfRange outside it. The
// sampler's boundary clamping keeps the core from ever requesting an
// out-of-range timestamp, but the contract stands for direct callers.
//
// Frame acquisition may block on I/O, so FrameAt takes a context. A
// FrameSource that is safe for concurrent reads may serve concurrent
// pipeline invocations; that safety is the implementation's to document.
type FrameSource interface {
	// Duration returns the length of the video in seconds.
	Duration() float64

	// FrameAt returns the decoded frame at the given timestamp.
	FrameAt(ctx context.Context, timestamp float64) (*Raster, error)
}

// TemporalTriple holds the three timestamps of one composition:
// past = reference−deltaT, present = reference, future = reference+deltaT,
// each clamped into the valid range of the source video.
type TemporalTriple struct {
	Past    float64
	Present float64
	Future  float64
}

// NewTemporalTriple derives the sampling timestamps from a reference
// time and offset for a video of the given duration.
//
// Boundary policy: a candidate timestamp outside [0, duration] is
// clamped to the nearest bound rather than rejected. This is a
// deliberate robustness choice for the edges of the video: the clamped
// sample degenerates to zero displacement, which downstream reads as
// absence of motion, and that is preferable to refusing to compose at
// all. A deltaT large enough to clamp both candidates yields a
// degenerate but valid triple, not an error.
//
// Fails with ErrInvalidOffset when deltaT is zero, negative, or NaN.
func NewTemporalTriple(reference, deltaT, duration float64) (TemporalTriple, error) {
	if !(deltaT > 0) {
		return TemporalTriple{}, fmt.Errorf("%w: got %v", ErrInvalidOffset, deltaT)
	}

	return TemporalTriple{
		Past:    clampTimestamp(reference-deltaT, duration),
		Present: clampTimestamp(reference, duration),
		Future:  clampTimestamp(reference+deltaT, duration),
	}, nil
}

func clampTimestamp(ts, duration float64) float64 {
	return math.Min(math.Max(ts, 0), duration)
}

// FrameTriple holds the three frames fetched for one composition.
type FrameTriple struct {
	Past    *Raster
	Present *Raster
	Future  *Raster
}

// Sampler fetches the past, present, and future frames for a reference
// time from a FrameSource. The sampler itself is stateless and safe for
// concurrent use.
type Sampler struct{}

// NewSampler creates a new temporal sampler.
func NewSampler() *Sampler {
	return &Sampler{}
}

// Sample computes the temporal triple for (referenceTime, deltaT) and
// fetches the three frames from the source.
//
// The three acquisitions have no data dependency and run concurrently.
// Joining is fail-fast: the first error observed cancels the remaining
// fetches via context and is surfaced; no partial triple is returned.
//
// A source failure at an in-range timestamp surfaces as
// ErrFrameUnavailable. Frames disagreeing on dimensions surface as
// ErrRasterMismatch, which indicates a FrameSource contract violation
// and is not recoverable for this invocation.
func (s *Sampler) Sample(ctx context.Context, source FrameSource, referenceTime, deltaT float64) (*FrameTriple, error) {
	if source == nil {
		return nil, fmt.Errorf("frame source cannot be nil")
	}

	triple, err := NewTemporalTriple(referenceTime, deltaT, source.Duration())
	if err != nil {
		return nil, err
	}

	if triple.Past != referenceTime-deltaT || triple.Future != referenceTime+deltaT {
		logrus.WithFields(logrus.Fields{
			"function":  "Sampler.Sample",
			"reference": referenceTime,
			"delta_t":   deltaT,
			"past":      triple.Past,
			"present":   triple.Present,
			"future":    triple.Future,
		}).Debug("Candidate timestamp clamped to video bounds")
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type fetchResult struct {
		slot  int
		frame *Raster
		err   error
	}

	timestamps := [3]float64{triple.Past, triple.Present, triple.Future}
	results := make(chan fetchResult, len(timestamps))
	for i, ts := range timestamps {
		go func(slot int, ts float64) {
			frame, err := source.FrameAt(fetchCtx, ts)
			results <- fetchResult{slot: slot, frame: frame, err: err}
		}(i, ts)
	}

	var frames [3]*Raster
	for range timestamps {
		res := <-results
		if res.err != nil {
			cancel()
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: fetch at t=%.3fs: %v", ErrFrameUnavailable, timestamps[res.slot], res.err)
		}
		if err := res.frame.validate(); err != nil {
			cancel()
			return nil, fmt.Errorf("frame at t=%.3fs: %w", timestamps[res.slot], err)
		}
		if res.frame.Channels != RGBChannels {
			cancel()
			return nil, fmt.Errorf("frame at t=%.3fs: %w: got %d, expected %d",
				timestamps[res.slot], ErrInvalidChannelCount, res.frame.Channels, RGBChannels)
		}
		frames[res.slot] = res.frame
	}

	for i, frame := range frames {
		if !frames[0].SameSize(frame) {
			return nil, fmt.Errorf("%w: frame at t=%.3fs is %dx%d, frame at t=%.3fs is %dx%d",
				ErrRasterMismatch,
				timestamps[0], frames[0].Width, frames[0].Height,
				timestamps[i], frame.Width, frame.Height)
		}
	}

	return &FrameTriple{
		Past:    frames[0],
		Present: frames[1],
		Future:  frames[2],
	}, nil
}
