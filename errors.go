package steg

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error kinds.
var (
	// ErrMessageTooLarge indicates the framed payload does not fit the carrier.
	ErrMessageTooLarge = errors.New("message too large")

	// ErrNoMessageFound indicates the carrier is too small for a header or the
	// magic marker does not match.
	ErrNoMessageFound = errors.New("no hidden message found (magic marker mismatch)")

	// ErrInvalidLength indicates the magic matched but the length field points
	// past the bits available in the carrier.
	ErrInvalidLength = errors.New("invalid message length encoded in header")

	// ErrInvalidUTF8 indicates a structurally valid payload that is not UTF-8.
	ErrInvalidUTF8 = errors.New("payload is not valid UTF-8")

	// ErrImageIO indicates the carrier image could not be decoded or encoded.
	ErrImageIO = errors.New("image error")

	// ErrFileIO indicates a file-system failure around the codec.
	ErrFileIO = errors.New("I/O error")
)

// MessageTooLargeError reports how many bits the frame needs against what the
// carrier offers. Both figures are in bits.
type MessageTooLargeError struct {
	NeededBits   int
	CapacityBits int
}

func (e *MessageTooLargeError) Error() string {
	return fmt.Sprintf("message too large: need %d bits but image has capacity for %d bits",
		e.NeededBits, e.CapacityBits)
}

func (e *MessageTooLargeError) Unwrap() error {
	return ErrMessageTooLarge
}

// UTF8Error is returned by DecodeString when the payload holds an invalid
// UTF-8 sequence starting at Offset.
type UTF8Error struct {
	Offset int
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("UTF-8 decode error: invalid sequence at byte %d", e.Offset)
}

func (e *UTF8Error) Unwrap() error {
	return ErrInvalidUTF8
}
