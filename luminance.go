package vamrgb

import (
	"fmt"
	"math"
)

// Rec.709 luma coefficients.
const (
	lumaRed   = 0.2126
	lumaGreen = 0.7152
	lumaBlue  = 0.0722
)

// Luminance converts a three-channel RGB raster into a single-channel
// luminance raster using Rec.709 weights:
//
//	Y = 0.2126*R + 0.7152*G + 0.0722*B
//
// The conversion is computed in float64 and stays in the input's [0,255]
// sample range; no rescaling takes place. Results are rounded
// half-to-even to the 8-bit output type. Luminance is a pure function:
// the input raster is never modified.
//
// Fails with ErrInvalidChannelCount if the input is not three-channel.
func Luminance(frame *Raster) (*Raster, error) {
	if err := frame.validate(); err != nil {
		return nil, err
	}
	if frame.Channels != RGBChannels {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrInvalidChannelCount, frame.Channels, RGBChannels)
	}

	out := NewGray(frame.Width, frame.Height)
	for i, j := 0, 0; i < len(frame.Pix); i, j = i+RGBChannels, j+1 {
		y := lumaRed*float64(frame.Pix[i]) +
			lumaGreen*float64(frame.Pix[i+1]) +
			lumaBlue*float64(frame.Pix[i+2])

		rounded := math.RoundToEven(y)
		// Guard against float overshoot at the top of the range.
		if rounded > 255 {
			rounded = 255
		}
		out.Pix[j] = uint8(rounded)
	}

	return out, nil
}
