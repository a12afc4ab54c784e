package renderer

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"
)

func TestCalculateAverageLuminance(t *testing.T) {
	tests := []struct {
		name   string
		pixels []color.RGBA // laid out in a row
		want   float64
	}{
		// Rec. 709 weights sum to one across red, green and blue
		{"primaries and black", []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}, {0, 0, 0, 255}}, 0.25},
		{"white", []color.RGBA{{255, 255, 255, 255}}, 1},
		{"green only", []color.RGBA{{0, 255, 0, 255}, {0, 255, 0, 255}}, 0.7152},
		{"mid grey", []color.RGBA{{128, 128, 128, 255}}, 128.0 / 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, len(tt.pixels), 1))
			for x, c := range tt.pixels {
				img.SetRGBA(x, 0, c)
			}
			if got := CalculateAverageLuminance(img); math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("Expected average luminance %f, got %f", tt.want, got)
			}
		})
	}
}

func TestCalculateAverageLuminance_Empty(t *testing.T) {
	if got := CalculateAverageLuminance(image.NewRGBA(image.Rect(0, 0, 0, 0))); got != 0 {
		t.Errorf("Expected 0 for an empty image, got %f", got)
	}
}

func TestRenderStats_PixelsPerSecond(t *testing.T) {
	stats := RenderStats{TotalPixels: 1000, Duration: 2 * time.Second}
	if got := stats.PixelsPerSecond(); got != 500 {
		t.Errorf("Expected 500 pixels/s, got %f", got)
	}
	if got := (RenderStats{TotalPixels: 10}).PixelsPerSecond(); got != 0 {
		t.Errorf("Expected 0 without a duration, got %f", got)
	}
}
