package rasterbuilder

import (
	"image"

	"gonum.org/v1/gonum/mat"
)

// Output intensity range. Fixed to the inverted 8-bit scale: the smallest
// input sample maps to newMax, the largest to newMin.
const (
	newMin = 0.0
	newMax = 255.0
)

// InvertNormalize rescales a layer into [newMin, newMax] with the scale
// inverted and truncates each sample to uint8. A constant layer maps every
// sample to newMax rather than dividing by zero. Pure; the input matrix is
// not modified.
func InvertNormalize(layer *mat.Dense) *image.Gray {
	rows, cols := layer.Dims()
	out := image.NewGray(image.Rect(0, 0, cols, rows))

	raw := layer.RawMatrix()
	oldMin, oldMax := raw.Data[0], raw.Data[0]
	for r := 0; r < rows; r++ {
		row := raw.Data[r*raw.Stride : r*raw.Stride+cols]
		for _, v := range row {
			oldMin = min(oldMin, v)
			oldMax = max(oldMax, v)
		}
	}

	if oldMax == oldMin {
		for i := range out.Pix {
			out.Pix[i] = uint8(newMax)
		}
		return out
	}

	scale := (newMax - newMin) / (oldMax - oldMin)
	for r := 0; r < rows; r++ {
		row := raw.Data[r*raw.Stride : r*raw.Stride+cols]
		outRow := out.Pix[r*out.Stride : r*out.Stride+cols]
		for c, v := range row {
			normalized := (v-oldMin)*scale + newMin
			inverted := newMax - normalized + newMin
			// The formula keeps results in range; the clamp guards
			// against floating-point overshoot at the endpoints.
			outRow[c] = uint8(max(newMin, min(newMax, inverted)))
		}
	}
	return out
}
