package framesource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/vamrgb"
)

// Image extensions recognized when scanning a sequence directory.
var sequenceExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// ImageSequence is a FrameSource backed by a directory of still images
// interpreted as a fixed-rate clip: the file sorted to position n covers
// timestamps [n/fps, (n+1)/fps). Frames are decoded on demand; decoding
// holds no shared state, so concurrent reads are safe.
type ImageSequence struct {
	id    string
	fps   float64
	paths []string
}

// OpenImageSequence scans dir for image files (sorted by name) and
// wraps them as a clip at the given frame rate.
func OpenImageSequence(dir string, fps float64) (*ImageSequence, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("invalid frame rate: %v", fps)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading sequence directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if sequenceExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no image files in %s", dir)
	}
	sort.Strings(paths)

	seq := &ImageSequence{
		id:    uuid.New().String(),
		fps:   fps,
		paths: paths,
	}

	logrus.WithFields(logrus.Fields{
		"function":  "OpenImageSequence",
		"source_id": seq.id,
		"dir":       dir,
		"frames":    len(paths),
		"fps":       fps,
	}).Info("Image sequence frame source opened")

	return seq, nil
}

// Duration returns the length of the clip in seconds.
func (s *ImageSequence) Duration() float64 {
	return float64(len(s.paths)) / s.fps
}

// FrameAt decodes and returns the frame covering the timestamp. Fails
// with vamrgb.ErrOutOfRange outside [0, Duration()] and with
// vamrgb.ErrFrameUnavailable when the backing file cannot be decoded.
func (s *ImageSequence) FrameAt(ctx context.Context, timestamp float64) (*vamrgb.Raster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	duration := s.Duration()
	if timestamp < 0 || timestamp > duration {
		return nil, fmt.Errorf("%w: t=%.3fs, duration %.3fs", vamrgb.ErrOutOfRange, timestamp, duration)
	}

	idx := int(timestamp * s.fps)
	if idx >= len(s.paths) { // t == duration lands past the last frame
		idx = len(s.paths) - 1
	}

	img, err := imaging.Open(s.paths[idx])
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", vamrgb.ErrFrameUnavailable, s.paths[idx], err)
	}

	return vamrgb.FromImage(img), nil
}
