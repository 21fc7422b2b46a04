package rasterbuilder

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("single layer builds an inverted grayscale image", func(t *testing.T) {
		t.Parallel()
		ls, err := NewLayerSet([][][]float64{{{10, 20}, {30, 40}}})
		require.NoError(t, err)

		img, err := Build(ls)
		require.NoError(t, err)

		gray, ok := img.(*image.Gray)
		require.True(t, ok, "expected a grayscale image, got %T", img)
		assert.Equal(t, []uint8{255, 170, 85, 0}, gray.Pix)
	})

	t.Run("identical constant layers build a uniform color image", func(t *testing.T) {
		t.Parallel()
		plane := [][]float64{{100, 100}, {100, 100}}
		ls, err := NewLayerSet([][][]float64{plane, plane, plane})
		require.NoError(t, err)

		img, err := Build(ls)
		require.NoError(t, err)

		rgba, ok := img.(*image.RGBA)
		require.True(t, ok, "expected a color image, got %T", img)

		// A constant plane normalizes to 255, so y=255 and cb'=cr'=127.
		// r = 255 + 1.402*127 clips to 255, b likewise,
		// g = 255 - (0.344136+0.714136)*127 = 120.599 truncates to 120.
		want := color.RGBA{R: 255, G: 120, B: 255, A: 255}
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				assert.Equal(t, want, rgba.RGBAAt(x, y), "pixel (%d,%d)", x, y)
			}
		}
	})

	t.Run("unknown profile tag fails", func(t *testing.T) {
		t.Parallel()
		ls := &LayerSet{
			Profile: Profile(9),
			Layers:  []*mat.Dense{mat.NewDense(1, 1, []float64{1})},
			Rows:    1,
			Cols:    1,
		}

		_, err := Build(ls)
		var upe *UnsupportedProfileError
		require.ErrorAs(t, err, &upe)
	})
}

func TestLoadBuildWriteRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "layers.json")
	out := filepath.Join(dir, "out.png")
	require.NoError(t, os.WriteFile(in, []byte(`[[[10, 20], [30, 40]]]`), 0o644))

	ls, err := Load(in)
	require.NoError(t, err)
	img, err := Build(ls)
	require.NoError(t, err)
	require.NoError(t, WriteImage(img, out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	decoded, format, err := image.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 2, decoded.Bounds().Dx())
	assert.Equal(t, 2, decoded.Bounds().Dy())

	r, g, b, _ := decoded.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r, "minimum sample must decode as the brightest pixel")
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}
