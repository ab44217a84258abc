package ws

import (
	"encoding/json"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"localchat/internal/models"
	"localchat/internal/observability"
)

// PairKey canonicalizes a conversation pair so both participants land
// in the same room regardless of direction.
func PairKey(userA, userB string) string {
	names := []string{userA, userB}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// Hub maintains one room of websocket clients per conversation pair so
// an attached UI rerenders without polling.
type Hub struct {
	rooms map[string]map[*websocket.Conn]ConnInfo
	mu    sync.RWMutex
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*websocket.Conn]ConnInfo)}
}

// AddClient registers a websocket connection to a conversation room.
func (h *Hub) AddClient(pair string, conn *websocket.Conn, info ConnInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[pair]; !ok {
		h.rooms[pair] = make(map[*websocket.Conn]ConnInfo)
	}
	h.rooms[pair][conn] = info
	observability.IncWSActive()
}

// RemoveClient removes a websocket connection from its room.
func (h *Hub) RemoveClient(pair string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.rooms[pair]; ok {
		if _, present := conns[conn]; present {
			delete(conns, conn)
			observability.DecWSActive()
		}
		if len(conns) == 0 {
			delete(h.rooms, pair)
		}
	}
}

// BroadcastMessage notifies a conversation's clients of a new message.
func (h *Hub) BroadcastMessage(pair string, msg models.Message) {
	h.broadcast(pair, models.ChatEvent{Type: "message", Message: &msg})
	observability.IncWSEvent("message")
}

// BroadcastEdit notifies a conversation's clients of an edited message.
func (h *Hub) BroadcastEdit(pair string, msg models.Message) {
	h.broadcast(pair, models.ChatEvent{Type: "edit", Message: &msg})
	observability.IncWSEvent("edit")
}

// BroadcastDeletion notifies a conversation's clients of a bulk delete.
func (h *Hub) BroadcastDeletion(pair string, messageIDs []int64) {
	h.broadcast(pair, models.ChatEvent{Type: "delete", MessageIDs: messageIDs})
	observability.IncWSEvent("delete")
}

func (h *Hub) broadcast(pair string, event models.ChatEvent) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.rooms[pair]))
	for conn := range h.rooms[pair] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	payload, _ := json.Marshal(event)
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("websocket write error: %v", err)
			conn.Close()
			h.RemoveClient(pair, conn)
		}
	}
}
