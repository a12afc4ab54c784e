package canvas

import (
	"bytes"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func ppmLines(t *testing.T, c *Canvas) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM() error: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("Expected PPM output to end with a newline")
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestWritePPM_Header(t *testing.T) {
	lines := ppmLines(t, New(5, 3))

	want := []string{"P3", "5 3", "255"}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("Header line %d = %q, want %q", i+1, lines[i], w)
		}
	}
}

func TestWritePPM_PixelData(t *testing.T) {
	c := New(5, 3)
	c.WritePixel(0, 0, core.NewColor(1.5, 0, 0))
	c.WritePixel(2, 1, core.NewColor(0, 0.5, 0))
	c.WritePixel(4, 2, core.NewColor(-0.5, 0, 1))

	lines := ppmLines(t, c)

	want := []string{
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255",
	}
	if len(lines) != 3+len(want) {
		t.Fatalf("Expected %d lines, got %d", 3+len(want), len(lines))
	}
	for i, w := range want {
		if lines[3+i] != w {
			t.Errorf("Line %d = %q, want %q", 4+i, lines[3+i], w)
		}
	}
}

func TestWritePPM_SplitsLongLines(t *testing.T) {
	c := New(10, 2)
	c.Fill(core.NewColor(1, 0.8, 0.6))

	lines := ppmLines(t, c)

	want := []string{
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
	}
	for i, w := range want {
		if lines[3+i] != w {
			t.Errorf("Line %d = %q, want %q", 4+i, lines[3+i], w)
		}
	}
	for i, line := range lines {
		if len(line) > 70 {
			t.Errorf("Line %d has %d characters", i+1, len(line))
		}
	}
}
