package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// TileUpdate represents a single tile update sent via SSE
type TileUpdate struct {
	TileX      int    `json:"tileX"`
	TileY      int    `json:"tileY"`
	X          int    `json:"x"` // Pixel offset of the tile
	Y          int    `json:"y"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Tiles finished so far (1-based)
	TotalTiles int    `json:"totalTiles"`
}

// RenderComplete is sent once the whole image is done
type RenderComplete struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	ImageData        string  `json:"imageData"`
	TotalPixels      int     `json:"totalPixels"`
	TotalTiles       int     `json:"totalTiles"`
	NumWorkers       int     `json:"numWorkers"`
	ElapsedMs        int64   `json:"elapsedMs"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "tile", "complete", "error"
	Data string `json:"data"` // JSON-encoded data or a plain error message
}

// handleRender renders a scene and streams each finished tile via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	setSSEHeaders(w)
	ctx := r.Context()

	events := make(chan SSEEvent, 100)
	var writer sync.WaitGroup
	writer.Add(1)
	go func() {
		defer writer.Done()
		writeSSEEvents(ctx, w, events)
	}()
	defer func() {
		close(events)
		writer.Wait()
	}()

	req, err := parseRenderRequest(r)
	if err != nil {
		events <- SSEEvent{Type: "error", Data: fmt.Sprintf("Invalid request: %v", err)}
		return
	}

	sceneObj, camera, err := s.setupCamera(req)
	if err != nil {
		events <- SSEEvent{Type: "error", Data: err.Error()}
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	var console sync.WaitGroup
	console.Add(1)
	go func() {
		defer console.Done()
		streamConsoleMessages(consoleChan, events)
	}()
	webLogger := NewWebLogger(fmt.Sprintf("render-%d", time.Now().UnixNano()), consoleChan)

	raytracer := renderer.NewRaytracer(sceneObj, camera, renderer.DefaultRenderConfig(), webLogger)
	startTime := time.Now()
	img, stats, err := raytracer.Render(ctx, func(tc renderer.TileCompletion) {
		sendTileUpdate(events, tc)
	})

	// The logger is only used during Render
	close(consoleChan)
	console.Wait()

	if err != nil {
		if ctx.Err() == nil {
			events <- SSEEvent{Type: "error", Data: fmt.Sprintf("Render error: %v", err)}
		}
		return
	}

	final := img.ToImage()
	imageData, err := imageToBase64PNG(final)
	if err != nil {
		events <- SSEEvent{Type: "error", Data: fmt.Sprintf("failed to encode image: %v", err)}
		return
	}
	data, err := json.Marshal(RenderComplete{
		Width:            camera.HSize,
		Height:           camera.VSize,
		ImageData:        imageData,
		TotalPixels:      stats.TotalPixels,
		TotalTiles:       stats.TotalTiles,
		NumWorkers:       stats.NumWorkers,
		ElapsedMs:        time.Since(startTime).Milliseconds(),
		AverageLuminance: renderer.CalculateAverageLuminance(final),
	})
	if err != nil {
		log.Printf("Error marshaling completion: %v", err)
		return
	}
	events <- SSEEvent{Type: "complete", Data: string(data)}
}

// handleImage renders a scene and returns the encoded image
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	formatName := r.URL.Query().Get("format")
	if formatName == "" {
		formatName = string(canvas.FormatPNG)
	}
	format, err := canvas.ParseFormat(formatName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sceneObj, camera, err := s.setupCamera(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, camera, renderer.DefaultRenderConfig(), renderer.NewSilentLogger())
	img, stats, err := raytracer.Render(r.Context(), nil)
	if err != nil {
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := img.Encode(&buf, format); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode image: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("Rendered %s/%s %dx%d in %v", req.Scene, req.Camera, camera.HSize, camera.VSize, stats.Duration)
	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing image: %v", err)
	}
}

func contentType(format canvas.Format) string {
	switch format {
	case canvas.FormatPPM:
		return "image/x-portable-pixmap"
	case canvas.FormatBMP:
		return "image/bmp"
	case canvas.FormatTIFF:
		return "image/tiff"
	default:
		return "image/png"
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents writes every event in a single goroutine until events is
// closed. Events arriving after the client left are drained without writing.
func writeSSEEvents(ctx context.Context, w http.ResponseWriter, events <-chan SSEEvent) {
	connected := true
	for event := range events {
		if !connected || ctx.Err() != nil {
			connected = false
			continue
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			connected = false
			continue
		}
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards console messages until consoleChan is closed
func streamConsoleMessages(consoleChan <-chan ConsoleMessage, events chan<- SSEEvent) {
	for msg := range consoleChan {
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}
		events <- SSEEvent{Type: "console", Data: string(data)}
	}
}

// sendTileUpdate encodes a finished tile and queues it for the client
func sendTileUpdate(events chan<- SSEEvent, tc renderer.TileCompletion) {
	tileData, err := imageToBase64PNG(tc.TileImage)
	if err != nil {
		log.Printf("Error encoding tile image (%d, %d): %v", tc.TileX, tc.TileY, err)
		return
	}

	data, err := json.Marshal(TileUpdate{
		TileX:      tc.TileX,
		TileY:      tc.TileY,
		X:          tc.Bounds.Min.X,
		Y:          tc.Bounds.Min.Y,
		ImageData:  tileData,
		TileNumber: tc.TileNumber,
		TotalTiles: tc.TotalTiles,
	})
	if err != nil {
		log.Printf("Error marshaling tile update: %v", err)
		return
	}
	events <- SSEEvent{Type: "tile", Data: string(data)}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := canvas.EncodeImage(&buf, img, canvas.FormatPNG); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// colorHex formats a color as #rrggbb, clamping each channel
func colorHex(c core.Color) string {
	rgba := canvas.ToRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
