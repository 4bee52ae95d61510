package vamrgb

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestFrame builds a deterministic RGB raster with a gradient
// pattern for use across the package tests.
func createTestFrame(width, height int) *Raster {
	frame := NewRGB(width, height)
	for i := range frame.Pix {
		frame.Pix[i] = uint8(i % 251)
	}
	return frame
}

func TestNewRGB(t *testing.T) {
	r := NewRGB(4, 3)
	assert.Equal(t, 4, r.Width)
	assert.Equal(t, 3, r.Height)
	assert.Equal(t, RGBChannels, r.Channels)
	assert.Len(t, r.Pix, 4*3*3)
}

func TestNewGray(t *testing.T) {
	r := NewGray(4, 3)
	assert.Equal(t, GrayChannels, r.Channels)
	assert.Len(t, r.Pix, 4*3)
}

func TestRaster_Validate(t *testing.T) {
	tests := []struct {
		name        string
		raster      *Raster
		expectedErr string
	}{
		{
			name:        "nil raster",
			raster:      nil,
			expectedErr: "raster cannot be nil",
		},
		{
			name:        "zero width",
			raster:      &Raster{Width: 0, Height: 2, Channels: 3},
			expectedErr: "invalid raster dimensions",
		},
		{
			name:        "negative height",
			raster:      &Raster{Width: 2, Height: -1, Channels: 3},
			expectedErr: "invalid raster dimensions",
		},
		{
			name:        "unknown channel depth",
			raster:      &Raster{Width: 2, Height: 2, Channels: 4, Pix: make([]uint8, 16)},
			expectedErr: "invalid channel count",
		},
		{
			name:        "short sample buffer",
			raster:      &Raster{Width: 2, Height: 2, Channels: 3, Pix: make([]uint8, 11)},
			expectedErr: "sample buffer size mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.raster.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestRaster_Clone_Independent(t *testing.T) {
	original := createTestFrame(4, 4)
	clone := original.Clone()

	require.Equal(t, original.Pix, clone.Pix)

	clone.Pix[0] = 250
	assert.NotEqual(t, original.Pix[0], clone.Pix[0])
}

func TestRaster_SameSize(t *testing.T) {
	a := NewRGB(4, 3)
	assert.True(t, a.SameSize(NewGray(4, 3)))
	assert.False(t, a.SameSize(NewRGB(3, 4)))
	assert.False(t, a.SameSize(nil))
}

func TestFromImage_RoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 255, B: 0, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{R: 0, G: 0, B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 12, G: 34, B: 56, A: 255})

	raster := FromImage(img)
	require.Equal(t, 2, raster.Width)
	require.Equal(t, 2, raster.Height)
	assert.Equal(t, []uint8{255, 0, 0}, raster.Pix[0:3])
	assert.Equal(t, []uint8{0, 255, 0}, raster.Pix[3:6])
	assert.Equal(t, []uint8{0, 0, 255}, raster.Pix[6:9])
	assert.Equal(t, []uint8{12, 34, 56}, raster.Pix[9:12])

	back := FromImage(raster.Image())
	assert.Equal(t, raster.Pix, back.Pix)
}

func TestRaster_Image_Gray(t *testing.T) {
	r := NewGray(2, 1)
	r.Pix[0] = 7
	r.Pix[1] = 200

	img, ok := r.Image().(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, uint8(7), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(200), img.GrayAt(1, 0).Y)
}

func TestFromImage_NonZeroOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	img.SetNRGBA(5, 5, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	raster := FromImage(img)
	require.Equal(t, 2, raster.Width)
	require.Equal(t, 1, raster.Height)
	assert.Equal(t, []uint8{9, 8, 7}, raster.Pix[0:3])
}
