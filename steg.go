// Package steg hides a byte payload in the least-significant bits of an
// image's R, G and B channels and recovers it again.
//
// The embedded frame is magic(0xDE 0xAD) + uint32 big-endian length +
// payload, written one bit per channel in row-major pixel order. Alpha is
// never touched. Only lossless carriers keep the payload intact.
package steg

import (
	"image"
	"image/draw"
	"unicode/utf8"
)

// Encode returns a copy of img with payload embedded. img itself is not
// modified.
func Encode(img image.Image, payload []byte) (*image.NRGBA, error) {
	capBytes := Capacity(img)
	if len(payload) > capBytes {
		return nil, &MessageTooLargeError{
			NeededBits:   (HeaderBytes + len(payload)) * 8,
			CapacityBits: capBytes * 8,
		}
	}

	bits := PackBits(BuildFrame(payload))

	// Carriers smaller than the header report capacity 0 yet still accept an
	// empty payload above; the walker tells us the frame did not fit.
	out := toNRGBA(img)
	if n := writeLSB(out, bits); n < len(bits) {
		return nil, &MessageTooLargeError{
			NeededBits:   len(bits),
			CapacityBits: capBytes * 8,
		}
	}
	return out, nil
}

// Decode extracts the payload embedded by Encode.
func Decode(img image.Image) ([]byte, error) {
	src, ok := img.(*image.NRGBA)
	if !ok {
		src = toNRGBA(img)
	}
	return ParseFrame(readLSB(src))
}

// DecodeString is Decode for text payloads. A payload that is not valid
// UTF-8 yields a *UTF8Error.
func DecodeString(img image.Image) (string, error) {
	payload, err := Decode(img)
	if err != nil {
		return "", err
	}
	if off := invalidUTF8Offset(payload); off >= 0 {
		return "", &UTF8Error{Offset: off}
	}
	return string(payload), nil
}

// invalidUTF8Offset returns the index of the first invalid sequence in b,
// or -1 when b is valid UTF-8.
func invalidUTF8Offset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// toNRGBA copies any image.Image into an *image.NRGBA with bounds starting at
// (0,0). NRGBA sources are copied row by row so translucent pixels keep their
// exact channel values.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	if s, ok := src.(*image.NRGBA); ok {
		rowBytes := b.Dx() * 4
		for y := 0; y < b.Dy(); y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowBytes], s.Pix[y*s.Stride:y*s.Stride+rowBytes])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
