package feed

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is the envelope pushed to every connected dashboard client.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Hub fans captured-order events out to admin dashboards over websockets.
type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// Serve upgrades the request and keeps the connection registered until the
// client goes away. Inbound frames are discarded, the feed is one way.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Error during connection upgrade:", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}

// Broadcast sends one event to every connected client, dropping clients
// whose writes fail.
func (h *Hub) Broadcast(event string, payload any) {
	message, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		log.Println("Error marshaling feed event:", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Println("Error writing to feed client:", err)
			client.Close()
			delete(h.clients, client)
		}
	}
}

// ClientCount reports how many dashboard clients are connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
