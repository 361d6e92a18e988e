package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MythAkaDhawal/Gesture-Smart/internal/recognizer"
)

func TestEventsHandler_PublishBroadcasts(t *testing.T) {
	h := NewEventsHandler()

	srv := httptest.NewServer(h)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial error = %v", err)
	}
	defer conn.Close()

	// Wait for the server side to register the client.
	for i := 0; i < 100 && h.ClientCount() == 0; i++ {
		time.Sleep(5 * time.Millisecond)
	}
	if h.ClientCount() != 1 {
		t.Fatalf("ClientCount() = %d, want 1", h.ClientCount())
	}

	h.Publish(recognizer.Event{
		Kind:      recognizer.KindScroll,
		Direction: recognizer.DirectionUp,
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}

	var payload struct {
		Kind      string `json:"kind"`
		Direction string `json:"direction"`
		Timestamp int64  `json:"timestamp"`
	}
	if err := json.Unmarshal(msg, &payload); err != nil {
		t.Fatalf("unmarshal broadcast: %v", err)
	}
	if payload.Kind != "SCROLL" || payload.Direction != "UP" {
		t.Errorf("broadcast = %+v, want SCROLL UP", payload)
	}
	if payload.Timestamp == 0 {
		t.Error("broadcast missing timestamp")
	}
}

func TestEventsHandler_PublishWithoutClients(t *testing.T) {
	h := NewEventsHandler()

	// Must not block or panic.
	h.Publish(recognizer.Event{Kind: recognizer.KindLeftClick})

	if h.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", h.ClientCount())
	}
}

func TestEventsHandler_ClientDisconnect(t *testing.T) {
	h := NewEventsHandler()

	srv := httptest.NewServer(h)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial error = %v", err)
	}

	for i := 0; i < 100 && h.ClientCount() == 0; i++ {
		time.Sleep(5 * time.Millisecond)
	}

	conn.Close()

	for i := 0; i < 100 && h.ClientCount() > 0; i++ {
		time.Sleep(5 * time.Millisecond)
	}
	if h.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d after disconnect, want 0", h.ClientCount())
	}
}
