package steg

import (
	"bytes"
	"io"
)

// -----------------------------------------------------------------------------
// BitWriter / BitReader
// -----------------------------------------------------------------------------

// BitWriter packs bits MSB-first into an underlying bytes.Buffer.
type BitWriter struct {
	buf  *bytes.Buffer
	acc  byte
	nbit uint8 // bits already taken in acc (0..7)
}

func NewBitWriter(buf *bytes.Buffer) *BitWriter {
	return &BitWriter{buf: buf}
}

// WriteBit writes a single bit.
func (bw *BitWriter) WriteBit(v bool) error {
	if v {
		bw.acc |= 1 << (7 - bw.nbit)
	}
	bw.nbit++
	if bw.nbit == 8 {
		if err := bw.buf.WriteByte(bw.acc); err != nil {
			return err
		}
		bw.acc = 0
		bw.nbit = 0
	}
	return nil
}

// BitReader reads bits MSB-first from a []byte.
type BitReader struct {
	data []byte
	pos  int   // byte index
	acc  byte  // current byte
	nbit uint8 // bits already consumed from acc (0..7)
}

func NewBitReader(b []byte) *BitReader {
	return &BitReader{data: b}
}

// ReadBit reads one bit.
func (br *BitReader) ReadBit() (bool, error) {
	if br.nbit == 0 {
		if br.pos >= len(br.data) {
			return false, io.EOF
		}
		br.acc = br.data[br.pos]
		br.pos++
	}
	bit := (br.acc & (1 << (7 - br.nbit))) != 0
	br.nbit++
	if br.nbit == 8 {
		br.nbit = 0
	}
	return bit, nil
}

// -----------------------------------------------------------------------------
// Bit streams
// -----------------------------------------------------------------------------

// PackBits expands data into a bit stream: one 0/1 value per element, each
// byte emitted from bit 7 down to bit 0.
func PackBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	br := NewBitReader(data)
	for {
		bit, err := br.ReadBit()
		if err != nil {
			break
		}
		if bit {
			bits = append(bits, 1)
		} else {
			bits = append(bits, 0)
		}
	}
	return bits
}

// UnpackBits regroups a bit stream into bytes in the order PackBits emits
// them. Only the low bit of each element is used, as the channel walker does.
// A trailing group shorter than 8 bits is dropped.
func UnpackBits(bits []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(bits) / 8)
	bw := NewBitWriter(&buf)
	for _, b := range bits {
		// bytes.Buffer.WriteByte never fails.
		_ = bw.WriteBit(b&1 == 1)
	}
	return buf.Bytes()
}
