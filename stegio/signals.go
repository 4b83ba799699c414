package stegio

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for carrier pipeline events.
var (
	SignalEncodeStart    = capitan.NewSignal("steg.encode.start", "Encode pipeline beginning")
	SignalEncodeComplete = capitan.NewSignal("steg.encode.complete", "Encode pipeline finished")
	SignalDecodeStart    = capitan.NewSignal("steg.decode.start", "Decode pipeline beginning")
	SignalDecodeComplete = capitan.NewSignal("steg.decode.complete", "Decode pipeline finished")
)

// Keys for typed event data.
var (
	KeyPath     = capitan.NewStringKey("path")
	KeySize     = capitan.NewIntKey("size")
	KeyCapacity = capitan.NewIntKey("capacity")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

func emitEncodeStart(ctx context.Context, path string, size int) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyPath.Field(path),
		KeySize.Field(size),
	)
}

// emitEncodeComplete reports the outcome of EncodeFile; size is the number of
// payload bytes actually embedded.
func emitEncodeComplete(ctx context.Context, path string, size, capacity int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyPath.Field(path),
		KeySize.Field(size),
		KeyCapacity.Field(capacity),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

func emitDecodeStart(ctx context.Context, path string) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyPath.Field(path),
	)
}

func emitDecodeComplete(ctx context.Context, path string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyPath.Field(path),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
