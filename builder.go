package rasterbuilder

import "image"

// Build runs the forward pipeline on a loaded layer set: each plane is
// invert-normalized, and a YCbCr triple is converted to RGB. The result is a
// grayscale image for a single layer, an opaque RGBA image for three.
func Build(ls *LayerSet) (image.Image, error) {
	switch ls.Profile {
	case ProfileGray:
		return InvertNormalize(ls.Layers[0]), nil
	case ProfileYCbCr:
		y := InvertNormalize(ls.Layers[0])
		cb := InvertNormalize(ls.Layers[1])
		cr := InvertNormalize(ls.Layers[2])
		return YCbCrToRGB(y, cb, cr), nil
	default:
		return nil, &UnsupportedProfileError{Layers: len(ls.Layers)}
	}
}
