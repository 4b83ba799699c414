package steg

import "image"

// Channel walker: pixels in row-major order (y, then x), and inside a pixel
// the R, G, B channels. Alpha is never visited.

// writeLSB stores bits in the LSBs of img in canonical order and stops as
// soon as they are all placed. It returns the number of bits written, which
// is less than len(bits) only if the image runs out of channels.
func writeLSB(img *image.NRGBA, bits []byte) int {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	n := 0
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			for ch := 0; ch < ChannelsPerPixel; ch++ {
				if n >= len(bits) {
					return n
				}
				i := x*4 + ch
				row[i] = (row[i] &^ 1) | (bits[n] & 1)
				n++
			}
		}
	}
	return n
}

// readLSB collects the LSB of every R, G, B channel of img in canonical
// order. The result always has 3*w*h entries.
func readLSB(img *image.NRGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	bits := make([]byte, 0, w*h*ChannelsPerPixel)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+ChannelsPerPixel]
			bits = append(bits, px[0]&1, px[1]&1, px[2]&1)
		}
	}
	return bits
}
