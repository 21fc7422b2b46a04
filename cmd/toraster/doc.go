// Command toraster converts a JSON layer file to a raster image.
//
// The input file holds a nested numeric array of one or three equally sized
// 2-D layers. Each layer is invert-normalized into the 8-bit range; a single
// layer is written as a grayscale image, three layers are treated as Y, Cb,
// Cr and converted to RGB before writing.
//
// Usage:
//
//	toraster <input.json> <output image>
//
// The output encoding follows the output path's extension (.png, .jpg, .bmp,
// .tif); unknown extensions are written as PNG.
package main
