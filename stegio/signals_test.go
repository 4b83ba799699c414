package stegio

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/zoobzio/capitan"
	capitantesting "github.com/zoobzio/capitan/testing"
)

func TestEmitEncodeStart(_ *testing.T) {
	// Should not panic
	emitEncodeStart(context.Background(), "in.png", 21)
}

func TestEmitEncodeComplete_Success(_ *testing.T) {
	emitEncodeComplete(context.Background(), "in.png", 21, 3744, 10*time.Millisecond, nil)
}

func TestEmitEncodeComplete_Error(_ *testing.T) {
	emitEncodeComplete(context.Background(), "in.png", 0, 0, 10*time.Millisecond, errors.New("test error"))
}

func TestEmitDecodeStart(_ *testing.T) {
	emitDecodeStart(context.Background(), "out.png")
}

func TestEmitDecodeComplete_Success(_ *testing.T) {
	emitDecodeComplete(context.Background(), "out.png", 21, 10*time.Millisecond, nil)
}

func TestEmitDecodeComplete_Error(_ *testing.T) {
	emitDecodeComplete(context.Background(), "out.png", 0, 10*time.Millisecond, errors.New("test error"))
}

// waitForEvent returns the first captured event for sig whose path field is
// path. Delivery on the default instance is asynchronous.
func waitForEvent(t *testing.T, capture *capitantesting.EventCapture, sig capitan.Signal, path string) capitantesting.CapturedEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		for _, ev := range capture.Events() {
			if ev.Signal.Name() == sig.Name() && KeyPath.ExtractFromFields(ev.Fields) == path {
				return ev
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("no %s event for %s", sig.Name(), path)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPipelineCompleteSeverity(t *testing.T) {
	capture := capitantesting.NewEventCapture()
	encodeListener := capitan.Hook(SignalEncodeComplete, capture.Handler())
	defer encodeListener.Close()
	decodeListener := capitan.Hook(SignalDecodeComplete, capture.Handler())
	defer decodeListener.Close()

	ctx := context.Background()
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.png")
	if _, err := EncodeFile(ctx, missing, filepath.Join(dir, "never.png"), []byte("hi"), Options{}); err == nil {
		t.Fatalf("expected EncodeFile to fail on a missing carrier")
	}

	clean := writeCarrier(t, "clean.png", makeTestImage(30, 30, true))
	if _, err := DecodeFile(ctx, clean, Options{}); err == nil {
		t.Fatalf("expected DecodeFile to fail on a clean carrier")
	}

	good := writeCarrier(t, "good.png", makeTestImage(30, 30, true))
	if _, err := EncodeFile(ctx, good, filepath.Join(dir, "out.png"), []byte("hi"), Options{}); err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}

	for _, tc := range []struct {
		name string
		sig  capitan.Signal
		path string
		want capitan.Severity
	}{
		{name: "encode_failure", sig: SignalEncodeComplete, path: missing, want: capitan.SeverityError},
		{name: "decode_failure", sig: SignalDecodeComplete, path: clean, want: capitan.SeverityError},
		{name: "encode_success", sig: SignalEncodeComplete, path: good, want: capitan.SeverityInfo},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ev := waitForEvent(t, capture, tc.sig, tc.path)
			if ev.Severity != tc.want {
				t.Fatalf("severity = %s, want %s", ev.Severity, tc.want)
			}
		})
	}
}
