package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub groups live connections per game id and fans messages out to them.
// Writes happen under the hub lock so concurrent broadcasts never interleave
// frames on the same connection.
type Hub struct {
	mu    sync.Mutex
	games map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		games: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.games[gameID] == nil {
		h.games[gameID] = make(map[*websocket.Conn]bool)
	}
	h.games[gameID][conn] = true
	log.Printf("ws: client connected to game %s (total: %d)", gameID, len(h.games[gameID]))
}

func (h *Hub) RemoveConnection(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.games[gameID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.games, gameID)
		}
		log.Printf("ws: client disconnected from game %s", gameID)
	}
}

// Broadcast sends the message to every connection in the game's room.
func (h *Hub) Broadcast(gameID string, message WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.send(gameID, nil, message)
}

// BroadcastExcept sends the message to every connection except origin.
func (h *Hub) BroadcastExcept(gameID string, origin *websocket.Conn, message WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.send(gameID, origin, message)
}

// Send writes to a single connection, for private acknowledgments and
// errors.
func (h *Hub) Send(conn *websocket.Conn, message WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("ws: write error: %v", err)
	}
}

func (h *Hub) send(gameID string, skip *websocket.Conn, message WSMessage) {
	conns, ok := h.games[gameID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if conn == skip {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
