package vamrgb

import (
	"fmt"
	"image"
	"image/color"
)

// Channel depths understood by the pipeline.
const (
	// GrayChannels is the channel depth of a luminance raster.
	GrayChannels = 1
	// RGBChannels is the channel depth of a color raster.
	RGBChannels = 3
)

// Raster is a 2D grid of 8-bit pixel samples.
//
// Samples are stored row-major and interleaved: the pixel at (x, y)
// occupies Pix[(y*Width+x)*Channels : (y*Width+x+1)*Channels]. A raster
// is treated as immutable once built; every transform in this package
// allocates a fresh output rather than mutating its input.
type Raster struct {
	Width    int
	Height   int
	Channels int // GrayChannels or RGBChannels
	Pix      []uint8
}

// NewRGB allocates a zeroed three-channel raster.
func NewRGB(width, height int) *Raster {
	return &Raster{
		Width:    width,
		Height:   height,
		Channels: RGBChannels,
		Pix:      make([]uint8, width*height*RGBChannels),
	}
}

// NewGray allocates a zeroed single-channel raster.
func NewGray(width, height int) *Raster {
	return &Raster{
		Width:    width,
		Height:   height,
		Channels: GrayChannels,
		Pix:      make([]uint8, width*height*GrayChannels),
	}
}

// validate checks that the raster is structurally sound: positive
// dimensions, a known channel depth, and a sample buffer that matches.
func (r *Raster) validate() error {
	if r == nil {
		return fmt.Errorf("raster cannot be nil")
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("invalid raster dimensions: %dx%d", r.Width, r.Height)
	}
	if r.Channels != GrayChannels && r.Channels != RGBChannels {
		return fmt.Errorf("%w: %d", ErrInvalidChannelCount, r.Channels)
	}
	if expected := r.Width * r.Height * r.Channels; len(r.Pix) != expected {
		return fmt.Errorf("sample buffer size mismatch: got %d, expected %d", len(r.Pix), expected)
	}
	return nil
}

// SameSize reports whether two rasters share width and height. Channel
// depth is not compared.
func (r *Raster) SameSize(other *Raster) bool {
	return other != nil && r.Width == other.Width && r.Height == other.Height
}

// PixelOffset returns the index of the first sample of the pixel at
// (x, y) within Pix.
func (r *Raster) PixelOffset(x, y int) int {
	return (y*r.Width + x) * r.Channels
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	return &Raster{
		Width:    r.Width,
		Height:   r.Height,
		Channels: r.Channels,
		Pix:      append([]uint8(nil), r.Pix...),
	}
}

// FromImage converts a decoded image into a three-channel raster.
// Color values are reduced from the 16-bit range of the image.Color
// interface to 8-bit samples. Alpha is discarded.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	out := NewRGB(bounds.Dx(), bounds.Dy())

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			out.Pix[i] = uint8(cr >> 8)
			out.Pix[i+1] = uint8(cg >> 8)
			out.Pix[i+2] = uint8(cb >> 8)
			i += RGBChannels
		}
	}

	return out
}

// Image converts the raster into a standard library image for encoding
// or display. Three-channel rasters become *image.NRGBA with full
// opacity; single-channel rasters become *image.Gray.
func (r *Raster) Image() image.Image {
	if r.Channels == GrayChannels {
		img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				img.SetGray(x, y, color.Gray{Y: r.Pix[r.PixelOffset(x, y)]})
			}
		}
		return img
	}

	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			off := r.PixelOffset(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: r.Pix[off],
				G: r.Pix[off+1],
				B: r.Pix[off+2],
				A: 255,
			})
		}
	}
	return img
}
