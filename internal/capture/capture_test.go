package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	frame image.Image
	err   error
}

func (s *stubSource) Frame() (image.Image, error) {
	return s.frame, s.err
}

func testFrame(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func TestCaptureNotReadySource(t *testing.T) {
	c := NewCapturer()

	out, err := c.Capture(&stubSource{frame: nil}, "original")
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = c.Capture(&stubSource{frame: image.NewNRGBA(image.Rect(0, 0, 0, 0))}, "original")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProcessDownscalesLargeFrame(t *testing.T) {
	c := NewCapturer()

	out, err := c.Process(testFrame(1920, 1080), "original")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 1280, out.Width)
	assert.Equal(t, 720, out.Height)

	decoded, err := jpeg.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 1280, decoded.Bounds().Dx())
}

func TestProcessKeepsSmallFrame(t *testing.T) {
	c := NewCapturer()

	out, err := c.Process(testFrame(640, 480), "noir")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 640, out.Width)
	assert.Equal(t, 480, out.Height)
	assert.Equal(t, "noir", out.FilterID)
}

func TestProcessUnknownFilterFallsBack(t *testing.T) {
	c := NewCapturer()

	out, err := c.Process(testFrame(100, 100), "does-not-exist")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "original", out.FilterID)
}

func TestNoirProducesGrayscale(t *testing.T) {
	c := NewCapturer()

	out, err := c.Process(testFrame(64, 64), "noir")
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)

	// В центре кадра каналы должны быть почти равны
	r, g, b, _ := decoded.At(32, 32).RGBA()
	assert.InDelta(t, float64(r), float64(g), 2600)
	assert.InDelta(t, float64(g), float64(b), 2600)
}

func TestFilterCatalog(t *testing.T) {
	ids := make(map[string]struct{})
	for _, f := range Filters() {
		assert.NotEmpty(t, f.Name)
		assert.NotNil(t, f.Apply)
		ids[f.ID] = struct{}{}
	}
	for _, id := range []string{"original", "sepia", "noir", "faded", "vibrant", "arctic"} {
		assert.Contains(t, ids, id)
	}
}
