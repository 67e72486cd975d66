package feed

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialHub(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial hub: %v", err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return conn
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("Expected %d connected clients, have %d", want, hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(http.HandlerFunc(hub.Serve))
	defer server.Close()

	conn := dialHub(t, server)
	defer conn.Close()
	waitForClients(t, hub, 1)

	hub.Broadcast("orderCaptured", map[string]string{"id": "order-1"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event Event
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("Failed to read broadcast event: %v", err)
	}

	if event.Event != "orderCaptured" {
		t.Errorf("Expected event orderCaptured, got %q", event.Event)
	}
	payload, ok := event.Payload.(map[string]any)
	if !ok {
		t.Fatalf("Expected an object payload, got %T", event.Payload)
	}
	if payload["id"] != "order-1" {
		t.Errorf("Expected payload id order-1, got %v", payload["id"])
	}
}

func TestHubFansOutToAllClients(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(http.HandlerFunc(hub.Serve))
	defer server.Close()

	first := dialHub(t, server)
	defer first.Close()
	second := dialHub(t, server)
	defer second.Close()
	waitForClients(t, hub, 2)

	hub.Broadcast("orderCaptured", map[string]string{"id": "order-2"})

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var event Event
		if err := conn.ReadJSON(&event); err != nil {
			t.Fatalf("Failed to read broadcast event: %v", err)
		}
		if event.Event != "orderCaptured" {
			t.Errorf("Expected event orderCaptured, got %q", event.Event)
		}
	}
}

func TestHubDropsDisconnectedClients(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(http.HandlerFunc(hub.Serve))
	defer server.Close()

	conn := dialHub(t, server)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)

	// Broadcasting with nobody connected must not block or panic.
	hub.Broadcast("orderCaptured", map[string]string{"id": "order-3"})
}
