package vamrgb

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultDeltaT is the default sampling offset in seconds.
const DefaultDeltaT = 0.5

// Pipeline orchestrates the full composition:
//
//	FrameSource → Sampler → Luminance ×3 → Compose → composite raster
//
// The pipeline is a thin composition layer: all semantics live in the
// stages, and any stage failure propagates to the caller unchanged. It
// retains no state between invocations, so a single Pipeline may serve
// concurrent Generate calls against a FrameSource that is itself safe
// for concurrent reads.
type Pipeline struct {
	sampler *Sampler
	deltaT  float64
}

// New creates a pipeline with the default sampling offset.
func New() *Pipeline {
	return NewWithOffset(DefaultDeltaT)
}

// NewWithOffset creates a pipeline with a specific sampling offset in
// seconds. The offset is validated at Generate time; a non-positive
// value fails with ErrInvalidOffset.
func NewWithOffset(deltaT float64) *Pipeline {
	logrus.WithFields(logrus.Fields{
		"function": "NewWithOffset",
		"delta_t":  deltaT,
	}).Info("Creating composition pipeline")

	return &Pipeline{
		sampler: NewSampler(),
		deltaT:  deltaT,
	}
}

// DeltaT returns the configured sampling offset in seconds.
func (p *Pipeline) DeltaT() float64 {
	return p.deltaT
}

// Generate produces the composite image for the given reference time.
//
// The R channel carries the luminance of the frame at
// referenceTime−deltaT, the G channel the frame at referenceTime, and
// the B channel the frame at referenceTime+deltaT, with candidate
// timestamps clamped to the video bounds. The returned raster is owned
// exclusively by the caller.
//
// Errors from the sampler, the luminance conversion, and the composer
// propagate unchanged; there is no recovery or retry at this layer.
func (p *Pipeline) Generate(ctx context.Context, source FrameSource, referenceTime float64) (*Raster, error) {
	genID := uuid.New().String()

	logrus.WithFields(logrus.Fields{
		"function":  "Pipeline.Generate",
		"gen_id":    genID,
		"reference": referenceTime,
		"delta_t":   p.deltaT,
	}).Debug("Generating temporal composite")

	frames, err := p.sampler.Sample(ctx, source, referenceTime, p.deltaT)
	if err != nil {
		return nil, err
	}

	past, err := Luminance(frames.Past)
	if err != nil {
		return nil, err
	}
	present, err := Luminance(frames.Present)
	if err != nil {
		return nil, err
	}
	future, err := Luminance(frames.Future)
	if err != nil {
		return nil, err
	}

	composite, err := Compose(past, present, future)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function": "Pipeline.Generate",
		"gen_id":   genID,
		"width":    composite.Width,
		"height":   composite.Height,
	}).Debug("Temporal composite generated")

	return composite, nil
}
