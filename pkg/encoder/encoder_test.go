package encoder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(40 * x), uint8(60 * y), 200, 255})
		}
	}
	return img
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		name        string
		extension   string
		contentType string
	}{
		{"png", ".png", "image/png"},
		{"PNG", ".png", "image/png"},
		{".bmp", ".bmp", "image/bmp"},
		{"tiff", ".tiff", "image/tiff"},
		{"tif", ".tiff", "image/tiff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := ForFormat(tt.name)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if enc.Extension() != tt.extension || enc.ContentType() != tt.contentType {
				t.Errorf("Expected %s %s, got %s %s", tt.extension, tt.contentType, enc.Extension(), enc.ContentType())
			}
		})
	}

	if _, err := ForFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestEncodersRoundTrip(t *testing.T) {
	decoders := map[string]func(*bytes.Reader) (image.Image, error){
		"png":  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		"bmp":  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		"tiff": func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}

	src := testImage()
	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			enc, err := ForFormat(format)
			if err != nil {
				t.Fatalf("ForFormat failed: %v", err)
			}

			var buf bytes.Buffer
			if err := enc.Encode(&buf, src); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			decoded, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			for y := 0; y < 4; y++ {
				for x := 0; x < 6; x++ {
					want := color.RGBAModel.Convert(src.At(x, y))
					got := color.RGBAModel.Convert(decoded.At(x, y))
					if want != got {
						t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
					}
				}
			}
		})
	}
}

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 600, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 600; x++ {
			src.SetRGBA(x, y, color.RGBA{20, 20, 40, 255})
		}
	}

	thumb := Thumbnail(src, 150)
	if thumb.Bounds().Dx() != 150 || thumb.Bounds().Dy() != 100 {
		t.Fatalf("Expected 150x100 thumbnail, got %v", thumb.Bounds())
	}
	if got := thumb.RGBAAt(75, 50); got != (color.RGBA{20, 20, 40, 255}) {
		t.Errorf("Expected uniform color preserved, got %v", got)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "render.png")

	enc, _ := ForFormat("png")
	if err := WriteFile(path, testImage(), enc); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Output file missing: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}

	// No temporary files are left behind
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Expected only the output file, found %d entries", len(entries))
	}
}
