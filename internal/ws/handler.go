package ws

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"localchat/internal/session"
)

var upgrader = websocket.Upgrader{
	// Local single-device app; the UI connects from the same host.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades UI clients onto a conversation's event feed.
type Handler struct {
	hub      *Hub
	sessions *session.Manager
}

// NewHandler builds a websocket Handler.
func NewHandler(hub *Hub, sessions *session.Manager) *Handler {
	return &Handler{hub: hub, sessions: sessions}
}

// Handle authenticates via the token query parameter, joins the room
// for the (session user, peer) pair and blocks until the client
// disconnects. The feed is one-way; client frames are drained and
// discarded.
func (h *Handler) Handle(c *gin.Context) {
	token := c.Query("token")
	username, err := h.sessions.Validate(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	peer := c.Param("peer")
	if peer == "" || peer == username {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid peer"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	pair := PairKey(username, peer)
	h.hub.AddClient(pair, conn, ConnInfo{
		ConnID:      uuid.NewString(),
		Username:    username,
		ConnectedAt: time.Now(),
	})
	defer func() {
		h.hub.RemoveClient(pair, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
