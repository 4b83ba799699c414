package steg

import "image"

// ChannelsPerPixel is the number of channels carrying one bit each (R, G, B).
const ChannelsPerPixel = 3

// Capacity returns how many payload bytes img can carry, header excluded.
func Capacity(img image.Image) int {
	b := img.Bounds()
	return CapacityFor(b.Dx(), b.Dy())
}

// CapacityFor is Capacity over raw dimensions. Images too small to hold a
// header report 0.
func CapacityFor(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	totalBytes := width * height * ChannelsPerPixel / 8
	if totalBytes <= HeaderBytes {
		return 0
	}
	return totalBytes - HeaderBytes
}
