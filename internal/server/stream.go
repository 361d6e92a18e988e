package server

import (
	"fmt"
	"net/http"
	"time"
)

// FrameSource supplies the latest annotated preview frame as JPEG bytes
// together with a sequence number that changes when a new frame arrives.
type FrameSource interface {
	JPEG() ([]byte, uint64)
}

// StreamHandler serves the annotated preview as an MJPEG stream. It reads
// from the pipeline's preview buffer instead of the camera, so streaming
// never competes with recognition for frames.
type StreamHandler struct {
	source FrameSource
}

// NewStreamHandler creates a new StreamHandler with the given frame source.
func NewStreamHandler(source FrameSource) *StreamHandler {
	return &StreamHandler{source: source}
}

// ServeHTTP streams MJPEG frames to connected clients.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var lastSeq uint64

	for {
		select {
		case <-r.Context().Done():
			return
		default:
		}

		jpeg, seq := h.source.JPEG()
		if jpeg == nil || seq == lastSeq {
			time.Sleep(33 * time.Millisecond)
			continue
		}
		lastSeq = seq

		fmt.Fprintf(w, "--frame\r\n")
		fmt.Fprintf(w, "Content-Type: image/jpeg\r\n")
		fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(jpeg))
		w.Write(jpeg)
		fmt.Fprintf(w, "\r\n")

		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}

		time.Sleep(66 * time.Millisecond) // ~15 FPS
	}
}
