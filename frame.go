package steg

import (
	"bytes"
	"encoding/binary"
)

// Frame layout: magic(2) + length(uint32 big-endian) + payload.
const (
	HeaderBytes = 6
	HeaderBits  = HeaderBytes * 8

	magicBits  = 16
	lengthBits = 32
)

// Magic is the marker that opens every embedded frame.
var Magic = [2]byte{0xDE, 0xAD}

// BuildFrame prefixes payload with the magic marker and its big-endian
// length. Capacity is checked by Encode before calling it.
func BuildFrame(payload []byte) []byte {
	b := &bytes.Buffer{}
	b.Grow(HeaderBytes + len(payload))

	b.Write(Magic[:])
	// Writes into a bytes.Buffer do not fail.
	_ = binary.Write(b, binary.BigEndian, uint32(len(payload)))
	b.Write(payload)

	return b.Bytes()
}

// ParseFrame validates the header at the start of bits and returns the
// payload it announces.
func ParseFrame(bits []byte) ([]byte, error) {
	if len(bits) < HeaderBits {
		return nil, ErrNoMessageFound
	}

	magic := UnpackBits(bits[:magicBits])
	if !bytes.Equal(magic, Magic[:]) {
		return nil, ErrNoMessageFound
	}

	length := binary.BigEndian.Uint32(UnpackBits(bits[magicBits : magicBits+lengthBits]))

	// uint64 keeps (6+L)*8 from overflowing for any 32-bit L.
	needed := (uint64(HeaderBytes) + uint64(length)) * 8
	if needed > uint64(len(bits)) {
		return nil, ErrInvalidLength
	}

	return UnpackBits(bits[HeaderBits:needed]), nil
}
