package app

import "sync"

// Preview holds the latest annotated frame as JPEG bytes. The pipeline
// writes it once per frame; the MJPEG stream handler reads it at its own
// pace, so the camera never has to be read twice.
type Preview struct {
	mu   sync.RWMutex
	jpeg []byte
	seq  uint64
}

// NewPreview returns an empty preview buffer.
func NewPreview() *Preview {
	return &Preview{}
}

// Set replaces the buffered frame. The slice is copied; the caller may
// reuse its buffer.
func (p *Preview) Set(jpeg []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.jpeg = append(p.jpeg[:0], jpeg...)
	p.seq++
}

// JPEG returns a copy of the latest frame and its sequence number.
// A nil slice means no frame has been published yet.
func (p *Preview) JPEG() ([]byte, uint64) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.jpeg == nil {
		return nil, p.seq
	}
	out := make([]byte, len(p.jpeg))
	copy(out, p.jpeg)
	return out, p.seq
}
