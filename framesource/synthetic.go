package framesource

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/vamrgb"
)

// PixelFunc computes the RGB value of one pixel of a procedural video
// at timestamp t. It must be a pure function for the source to be
// deterministic.
type PixelFunc func(t float64, x, y int) (r, g, b uint8)

// Synthetic is a procedural FrameSource: every frame is rendered on
// demand from a PixelFunc. Immutable after construction and safe for
// concurrent reads.
type Synthetic struct {
	id       string
	width    int
	height   int
	duration float64
	pixel    PixelFunc
}

// NewSynthetic creates a procedural video of the given geometry and
// duration in seconds.
func NewSynthetic(width, height int, duration float64, pixel PixelFunc) (*Synthetic, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("invalid duration: %v", duration)
	}
	if pixel == nil {
		return nil, fmt.Errorf("pixel function cannot be nil")
	}

	s := &Synthetic{
		id:       uuid.New().String(),
		width:    width,
		height:   height,
		duration: duration,
		pixel:    pixel,
	}

	logrus.WithFields(logrus.Fields{
		"function":  "NewSynthetic",
		"source_id": s.id,
		"width":     width,
		"height":    height,
		"duration":  duration,
	}).Info("Synthetic frame source created")

	return s, nil
}

// Duration returns the length of the procedural video in seconds.
func (s *Synthetic) Duration() float64 {
	return s.duration
}

// FrameAt renders the frame at the given timestamp. Fails with
// vamrgb.ErrOutOfRange for timestamps outside [0, Duration()].
func (s *Synthetic) FrameAt(ctx context.Context, timestamp float64) (*vamrgb.Raster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if timestamp < 0 || timestamp > s.duration {
		return nil, fmt.Errorf("%w: t=%.3fs, duration %.3fs", vamrgb.ErrOutOfRange, timestamp, s.duration)
	}

	frame := vamrgb.NewRGB(s.width, s.height)
	i := 0
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			r, g, b := s.pixel(timestamp, x, y)
			frame.Pix[i] = r
			frame.Pix[i+1] = g
			frame.Pix[i+2] = b
			i += vamrgb.RGBChannels
		}
	}

	return frame, nil
}
