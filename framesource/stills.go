package framesource

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/vamrgb"
)

// Still is one keyframe of a Stills source.
type Still struct {
	At    float64 // timestamp in seconds
	Frame *vamrgb.Raster
}

// Stills is a FrameSource backed by an explicit keyframe list. A lookup
// returns the keyframe nearest at or before the requested timestamp;
// requests earlier than the first keyframe return the first keyframe.
// Immutable after construction and safe for concurrent reads.
type Stills struct {
	id       string
	duration float64
	stills   []Still
}

// NewStills creates a keyframe-backed video of the given duration in
// seconds. Keyframes are copied and sorted by timestamp; every keyframe
// must carry a valid three-channel raster with a timestamp inside
// [0, duration].
func NewStills(duration float64, stills []Still) (*Stills, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("invalid duration: %v", duration)
	}
	if len(stills) == 0 {
		return nil, fmt.Errorf("at least one keyframe is required")
	}

	sorted := append([]Still(nil), stills...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })

	for _, still := range sorted {
		if still.Frame == nil {
			return nil, fmt.Errorf("keyframe at t=%.3fs has no frame", still.At)
		}
		if still.Frame.Channels != vamrgb.RGBChannels {
			return nil, fmt.Errorf("keyframe at t=%.3fs: %w: got %d, expected %d",
				still.At, vamrgb.ErrInvalidChannelCount, still.Frame.Channels, vamrgb.RGBChannels)
		}
		if still.At < 0 || still.At > duration {
			return nil, fmt.Errorf("%w: keyframe at t=%.3fs, duration %.3fs",
				vamrgb.ErrOutOfRange, still.At, duration)
		}
	}

	s := &Stills{
		id:       uuid.New().String(),
		duration: duration,
		stills:   sorted,
	}

	logrus.WithFields(logrus.Fields{
		"function":  "NewStills",
		"source_id": s.id,
		"keyframes": len(sorted),
		"duration":  duration,
	}).Info("Stills frame source created")

	return s, nil
}

// Duration returns the length of the video in seconds.
func (s *Stills) Duration() float64 {
	return s.duration
}

// FrameAt returns a copy of the keyframe nearest at or before the
// timestamp. Fails with vamrgb.ErrOutOfRange outside [0, Duration()].
func (s *Stills) FrameAt(ctx context.Context, timestamp float64) (*vamrgb.Raster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if timestamp < 0 || timestamp > s.duration {
		return nil, fmt.Errorf("%w: t=%.3fs, duration %.3fs", vamrgb.ErrOutOfRange, timestamp, s.duration)
	}

	// First keyframe with At > timestamp; the one before it is ours.
	idx := sort.Search(len(s.stills), func(i int) bool { return s.stills[i].At > timestamp })
	if idx > 0 {
		idx--
	}

	// Copy so callers cannot alias the shared keyframe storage.
	return s.stills[idx].Frame.Clone(), nil
}
