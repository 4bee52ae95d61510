package vamrgb

import "fmt"

// Compose merges three luminance rasters into one RGB composite.
//
// The channel assignment is fixed: past→R, present→G, future→B. This
// ordering is a protocol invariant. Downstream motion-direction
// inference reads per-pixel channel divergence against exactly this
// mapping, so it is deliberately not configurable.
//
// All three inputs must be single-channel and share width and height.
// Fails with ErrInvalidChannelCount for a non-luminance input and
// ErrRasterMismatch for disagreeing dimensions; rasters are never
// silently cropped or stretched. Pure function, deterministic.
func Compose(past, present, future *Raster) (*Raster, error) {
	planes := []struct {
		name   string
		raster *Raster
	}{
		{"past", past},
		{"present", present},
		{"future", future},
	}

	for _, p := range planes {
		if err := p.raster.validate(); err != nil {
			return nil, fmt.Errorf("%s raster: %w", p.name, err)
		}
		if p.raster.Channels != GrayChannels {
			return nil, fmt.Errorf("%s raster: %w: got %d, expected %d",
				p.name, ErrInvalidChannelCount, p.raster.Channels, GrayChannels)
		}
		if !past.SameSize(p.raster) {
			return nil, fmt.Errorf("%w: past is %dx%d, %s is %dx%d",
				ErrRasterMismatch, past.Width, past.Height, p.name, p.raster.Width, p.raster.Height)
		}
	}

	out := NewRGB(past.Width, past.Height)
	for i, j := 0, 0; i < len(out.Pix); i, j = i+RGBChannels, j+1 {
		out.Pix[i] = past.Pix[j]
		out.Pix[i+1] = present.Pix[j]
		out.Pix[i+2] = future.Pix[j]
	}

	return out, nil
}
