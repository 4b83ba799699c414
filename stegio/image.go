// Package stegio loads and saves carrier images and runs the steg codec over
// files. It owns everything the codec leaves to its callers: file access,
// lossless image formats, optional payload compression and event signals.
package stegio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/svanichkin/steg"
	"github.com/xfmoulet/qoi"
)

var (
	// ErrLossyFormat is returned when asked to save a carrier in a format
	// that would destroy the embedded bits.
	ErrLossyFormat = errors.New("lossy output format would destroy hidden data")

	// ErrUnsupportedFormat is returned for output extensions Save does not know.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// IOError wraps a failure of the image or file collaborators. It matches
// both its Kind (steg.ErrImageIO or steg.ErrFileIO) and the underlying error
// under errors.Is.
type IOError struct {
	Op   string // load, save, read, write
	Path string
	Kind error
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func fileError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Kind: steg.ErrFileIO, Err: err}
}

func imageError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Kind: steg.ErrImageIO, Err: err}
}

// Load decodes the image at path. PNG and QOI are the lossless carriers;
// JPEG and GIF are accepted as sources only.
func Load(path string) (image.Image, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fileError("load", path, err)
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return nil, imageError("load", path, err)
	}
	return img, nil
}

// Save writes img to path in the lossless format named by its extension
// (.png or .qoi).
func Save(path string, img image.Image) (err error) {
	var encode func(*os.File, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = func(f *os.File, m image.Image) error { return png.Encode(f, m) }
	case ".qoi":
		encode = func(f *os.File, m image.Image) error { return qoi.Encode(f, m) }
	case ".jpg", ".jpeg", ".gif":
		return imageError("save", path, fmt.Errorf("%w: %s", ErrLossyFormat, ext))
	default:
		return imageError("save", path, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext))
	}

	out, err := os.Create(path)
	if err != nil {
		return fileError("save", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fileError("save", path, cerr)
		}
	}()

	if err := encode(out, img); err != nil {
		return imageError("save", path, err)
	}
	return nil
}

// Dimensions reads only the header of the image at path.
func Dimensions(path string) (width, height int, err error) {
	in, err := os.Open(path)
	if err != nil {
		return 0, 0, fileError("load", path, err)
	}
	defer in.Close()

	cfg, _, err := image.DecodeConfig(in)
	if err != nil {
		return 0, 0, imageError("load", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
