package stegio

import (
	"context"
	"runtime"
	"time"

	"github.com/svanichkin/steg"
	"golang.org/x/sync/errgroup"
)

// Options controls the file pipelines.
type Options struct {
	// Compress zstd-compresses the message before embedding on encode and
	// decompresses the payload after extraction on decode. Both sides must
	// agree; the frame itself does not record it.
	Compress bool
}

// Result describes a finished EncodeFile call.
type Result struct {
	Width, Height int
	Capacity      int // payload bytes the carrier can hold
	MessageBytes  int // message as supplied
	EmbeddedBytes int // payload actually framed (after compression)
	Duration      time.Duration
}

// EncodeFile embeds msg in the image at in and saves the carrier to out.
func EncodeFile(ctx context.Context, in, out string, msg []byte, opts Options) (res Result, err error) {
	res.MessageBytes = len(msg)
	payload := msg

	emitEncodeStart(ctx, in, len(msg))
	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		emitEncodeComplete(ctx, in, res.EmbeddedBytes, res.Capacity, res.Duration, err)
	}()

	img, err := Load(in)
	if err != nil {
		return res, err
	}
	b := img.Bounds()
	res.Width, res.Height = b.Dx(), b.Dy()
	res.Capacity = steg.Capacity(img)

	if opts.Compress {
		if payload, err = compress(msg); err != nil {
			return res, err
		}
	}

	enc, err := steg.Encode(img, payload)
	if err != nil {
		return res, err
	}
	if err := Save(out, enc); err != nil {
		return res, err
	}
	res.EmbeddedBytes = len(payload)
	return res, nil
}

// DecodeFile extracts the payload hidden in the image at in.
func DecodeFile(ctx context.Context, in string, opts Options) (payload []byte, err error) {
	emitDecodeStart(ctx, in)
	start := time.Now()
	defer func() {
		emitDecodeComplete(ctx, in, len(payload), time.Since(start), err)
	}()

	img, err := Load(in)
	if err != nil {
		return nil, err
	}
	payload, err = steg.Decode(img)
	if err != nil {
		return nil, err
	}
	if opts.Compress {
		return decompress(payload)
	}
	return payload, nil
}

// Report is the capacity summary of one carrier.
type Report struct {
	Path          string
	Width, Height int
	Capacity      int
}

// Inspect reports the capacity of every image in paths. Only image headers
// are read; images are inspected concurrently and the reports keep the
// order of paths.
func Inspect(ctx context.Context, paths ...string) ([]Report, error) {
	reports := make([]Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w, h, err := Dimensions(p)
			if err != nil {
				return err
			}
			reports[i] = Report{Path: p, Width: w, Height: h, Capacity: steg.CapacityFor(w, h)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
