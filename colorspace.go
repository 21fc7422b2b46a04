package rasterbuilder

import (
	"image"
	"image/color"
)

// BT.601 YCbCr to RGB coefficients.
const (
	crToR = 1.402
	cbToG = 0.344136
	crToG = 0.714136
	cbToB = 1.772
)

// YCbCrToRGB converts three equally sized planes to an opaque RGBA image.
// Each channel is clipped to [0,255] before truncation; clipping after
// truncation would wrap negative or overshooting intermediates.
func YCbCrToRGB(y, cb, cr *image.Gray) *image.RGBA {
	bounds := y.Bounds()
	out := image.NewRGBA(bounds)
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			yv := float64(y.GrayAt(px, py).Y)
			cbv := float64(cb.GrayAt(px, py).Y) - 128
			crv := float64(cr.GrayAt(px, py).Y) - 128

			r := yv + crToR*crv
			g := yv - cbToG*cbv - crToG*crv
			b := yv + cbToB*cbv

			out.SetRGBA(px, py, color.RGBA{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: 255})
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	return uint8(max(0, min(255, v)))
}
