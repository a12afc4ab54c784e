package canvas

import (
	"bytes"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{".PNG", FormatPNG, false},
		{"ppm", FormatPPM, false},
		{"bmp", FormatBMP, false},
		{"tif", FormatTIFF, false},
		{"tiff", FormatTIFF, false},
		{"gif", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := FormatFromPath("render"); err == nil {
		t.Error("Expected error for a path without extension")
	}
	if f, err := FormatFromPath("out/render.bmp"); err != nil || f != FormatBMP {
		t.Errorf("FormatFromPath() = %q, %v", f, err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	c := New(6, 4)
	c.Fill(core.NewColor(0.2, 0.4, 0.6))
	c.WritePixel(5, 3, core.White)

	for _, format := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := c.Encode(&buf, format); err != nil {
				t.Fatalf("Encode() error: %v", err)
			}

			img, name, err := image.Decode(&buf)
			if err != nil {
				t.Fatalf("image.Decode() error: %v", err)
			}
			if name != string(format) {
				t.Errorf("Decoded as %q, want %q", name, format)
			}
			if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
				t.Errorf("Expected 6x4, got %v", img.Bounds())
			}

			r, _, _, _ := img.At(5, 3).RGBA()
			if r>>8 != 255 {
				t.Errorf("Expected white corner, got red=%d", r>>8)
			}
			_, g, _, _ := img.At(0, 0).RGBA()
			if g>>8 != uint32(ToByte(0.4)) {
				t.Errorf("Expected green %d, got %d", ToByte(0.4), g>>8)
			}
		})
	}
}

func TestEncode_PPM(t *testing.T) {
	var buf bytes.Buffer
	if err := New(2, 1).Encode(&buf, FormatPPM); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "P3\n2 1\n255\n") {
		t.Errorf("Unexpected PPM output %q", buf.String())
	}

	if err := EncodeImage(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1)), FormatPPM); err == nil {
		t.Error("Expected EncodeImage to reject ppm")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := New(3, 3).WriteFile(path, FormatPNG); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("Expected a non-empty file, got %v, %v", info, err)
	}

	if err := New(3, 3).WriteFile(filepath.Join(t.TempDir(), "missing", "out.png"), FormatPNG); err == nil {
		t.Error("Expected error writing into a missing directory")
	}
}
