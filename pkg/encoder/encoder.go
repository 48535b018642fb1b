// Package encoder writes rendered frames to image files.
package encoder

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for an unsupported output format
var ErrUnknownFormat = errors.New("unknown image format")

// Encoder persists a complete image
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
	Extension() string
	ContentType() string
}

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image) error { return png.Encode(w, img) }
func (pngEncoder) Extension() string                         { return ".png" }
func (pngEncoder) ContentType() string                       { return "image/png" }

type bmpEncoder struct{}

func (bmpEncoder) Encode(w io.Writer, img image.Image) error { return bmp.Encode(w, img) }
func (bmpEncoder) Extension() string                         { return ".bmp" }
func (bmpEncoder) ContentType() string                       { return "image/bmp" }

type tiffEncoder struct{}

func (tiffEncoder) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}
func (tiffEncoder) Extension() string   { return ".tiff" }
func (tiffEncoder) ContentType() string { return "image/tiff" }

var encoders = map[string]Encoder{
	"png":  pngEncoder{},
	"bmp":  bmpEncoder{},
	"tiff": tiffEncoder{},
	"tif":  tiffEncoder{},
}

// ForFormat returns the encoder for a format name such as "png"
func ForFormat(name string) (Encoder, error) {
	enc, ok := encoders[strings.ToLower(strings.TrimPrefix(name, "."))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
	return enc, nil
}

// Formats lists the supported format names
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Thumbnail scales img to the given width, preserving the aspect ratio
func Thumbnail(img image.Image, width int) *image.RGBA {
	bounds := img.Bounds()
	height := max(1, bounds.Dy()*width/max(1, bounds.Dx()))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

// WriteFile encodes img into path, creating parent directories as needed.
// The file is written to a temporary name first so readers never see a partial image.
func WriteFile(path string, img image.Image, enc Encoder) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".render-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := enc.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move image into place: %w", err)
	}
	return nil
}
