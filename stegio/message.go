package stegio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

var (
	// ErrMessageSource is returned when neither or both of an inline message
	// and a message file are given.
	ErrMessageSource = errors.New("provide either a message or a message file")

	// ErrDecompress is returned when a payload marked as compressed is not a
	// valid zstd stream.
	ErrDecompress = errors.New("payload is not a valid zstd stream")
)

// ReadMessage returns the bytes to embed: the inline text, or the contents
// of file. A nil inline means no inline message was given; an empty one is a
// valid empty message. Exactly one source must be present.
func ReadMessage(inline *string, file string) ([]byte, error) {
	switch {
	case inline != nil && file != "":
		return nil, ErrMessageSource
	case inline != nil:
		return []byte(*inline), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fileError("read", file, err)
		}
		return data, nil
	default:
		return nil, ErrMessageSource
	}
}

// WriteMessage stores a decoded payload at path.
func WriteMessage(path string, payload []byte) error {
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fileError("write", path, err)
	}
	return nil
}

// compress wraps msg in a single zstd frame.
func compress(msg []byte) ([]byte, error) {
	b := &bytes.Buffer{}
	enc, err := zstd.NewWriter(b, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, err
	}
	if _, err := enc.Write(msg); err != nil {
		enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func decompress(payload []byte) ([]byte, error) {
	// Small in-memory inputs may be decoded eagerly by NewReader.
	dec, err := zstd.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	defer dec.Close()

	plain, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	return plain, nil
}
