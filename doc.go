// Package rasterbuilder converts nested numeric layer arrays into raster images.
//
// The input is a JSON file holding one or three equally sized 2-D layers of
// arbitrary-range numeric samples. Each layer is rescaled into the 8-bit
// intensity range with the scale inverted, so the smallest sample becomes the
// brightest pixel. A single layer produces a grayscale image; three layers are
// interpreted as Y, Cb, Cr planes and converted to RGB with the BT.601 matrix.
package rasterbuilder
