package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"localchat/internal/chat"
)

// ContactsHandler serves the conversation list.
type ContactsHandler struct {
	conversations *chat.ConversationService
}

// NewContactsHandler builds a ContactsHandler.
func NewContactsHandler(conversations *chat.ConversationService) *ContactsHandler {
	return &ContactsHandler{conversations: conversations}
}

// List returns every known user except the session's own, most
// recently active first, each with a last-message preview.
func (h *ContactsHandler) List(c *gin.Context) {
	username := c.GetString("username")

	conversations, err := h.conversations.List(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load contacts"})
		return
	}

	type contactResponse struct {
		Partner       string `json:"partner"`
		Preview       string `json:"preview,omitempty"`
		LastTimestamp int64  `json:"last_timestamp,omitempty"`
	}

	responses := make([]contactResponse, 0, len(conversations))
	for _, conv := range conversations {
		resp := contactResponse{Partner: conv.Partner}
		if conv.LastTimestamp > 0 {
			resp.Preview = chat.PreviewLabel(conv.LastMessage)
			resp.LastTimestamp = conv.LastTimestamp
		}
		responses = append(responses, resp)
	}

	c.JSON(http.StatusOK, gin.H{"contacts": responses})
}
