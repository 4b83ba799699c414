package steg

import (
	"bytes"
	"errors"
	"testing"
)

func TestBuildFrame_Layout(t *testing.T) {
	got := BuildFrame([]byte("hi"))
	want := []byte{0xDE, 0xAD, 0x00, 0x00, 0x00, 0x02, 'h', 'i'}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x want % x", got, want)
	}

	if empty := BuildFrame(nil); !bytes.Equal(empty, []byte{0xDE, 0xAD, 0, 0, 0, 0}) {
		t.Fatalf("empty frame: got % x", empty)
	}
}

func TestParseFrame(t *testing.T) {
	valid := PackBits(BuildFrame([]byte("payload")))

	for _, tc := range []struct {
		name    string
		bits    []byte
		want    []byte
		wantErr error
	}{
		{name: "exact", bits: valid, want: []byte("payload")},
		{name: "extra_bits_ignored", bits: append(append([]byte{}, valid...), 1, 0, 1, 1, 0, 0, 1, 0, 1), want: []byte("payload")},
		{name: "empty_stream", bits: nil, wantErr: ErrNoMessageFound},
		{name: "short_of_header", bits: valid[:HeaderBits-1], wantErr: ErrNoMessageFound},
		{name: "bad_magic", bits: PackBits([]byte{0xDE, 0xAC, 0, 0, 0, 0}), wantErr: ErrNoMessageFound},
		{name: "truncated_payload", bits: valid[:len(valid)-1], wantErr: ErrInvalidLength},
		{name: "huge_length", bits: PackBits([]byte{0xDE, 0xAD, 0xFF, 0xFF, 0xFF, 0xFF}), wantErr: ErrInvalidLength},
		{name: "header_only", bits: PackBits([]byte{0xDE, 0xAD, 0, 0, 0, 0}), want: []byte{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFrame(tc.bits)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFrame: %v", err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
