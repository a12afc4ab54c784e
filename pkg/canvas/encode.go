package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image format
type Format string

const (
	FormatPNG  Format = "png"
	FormatPPM  Format = "ppm"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported output format
func Formats() []Format {
	return []Format{FormatPNG, FormatPPM, FormatBMP, FormatTIFF}
}

// ParseFormat converts a format name such as "png" or ".tif" to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "ppm":
		return FormatPPM, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", name)
	}
}

// FormatFromPath picks the format matching a file's extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer image format from %q: no extension", path)
	}
	return ParseFormat(ext)
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// Encode writes the canvas in the given format
func (c *Canvas) Encode(w io.Writer, format Format) error {
	if format == FormatPPM {
		return c.WritePPM(w)
	}
	return EncodeImage(w, c.ToImage(), format)
}

// EncodeImage writes an already-quantized image in the given format. PPM
// output needs the float canvas and is not supported here.
func EncodeImage(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatPPM:
		return fmt.Errorf("ppm output requires a canvas")
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// WriteFile encodes the canvas to path, creating or truncating the file
func (c *Canvas) WriteFile(path string, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := c.Encode(f, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
