package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"localchat/internal/chat"
	"localchat/internal/models"
	"localchat/internal/repositories"
	"localchat/internal/ws"
)

// MessagesHandler manages one conversation pair's messages.
type MessagesHandler struct {
	messages repositories.MessageRepository
	hub      *ws.Hub
}

// NewMessagesHandler builds a MessagesHandler.
func NewMessagesHandler(messages repositories.MessageRepository, hub *ws.Hub) *MessagesHandler {
	return &MessagesHandler{messages: messages, hub: hub}
}

// List returns the conversation with the peer, oldest first. The
// optional q parameter applies the case-insensitive search filter.
func (h *MessagesHandler) List(c *gin.Context) {
	username := c.GetString("username")
	peer := c.Param("peer")

	msgs, err := h.messages.ListConversation(c.Request.Context(), username, peer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}

	if q := c.Query("q"); q != "" {
		msgs = chat.FilterMessages(msgs, q)
	}

	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// Post stores a new message and broadcasts it to the conversation.
func (h *MessagesHandler) Post(c *gin.Context) {
	username := c.GetString("username")
	peer := c.Param("peer")

	var req struct {
		Content string `json:"content" binding:"required"`
		Type    string `json:"type"`
		Caption string `json:"caption"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msgType := models.MessageType(req.Type)
	if req.Type == "" {
		msgType = models.MessageTypeText
	}
	if msgType != models.MessageTypeText && msgType != models.MessageTypeImage {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message type"})
		return
	}

	msg := models.Message{
		Content:   req.Content,
		Sender:    username,
		Receiver:  peer,
		Timestamp: time.Now().UnixMilli(),
		Type:      msgType,
	}
	if msgType == models.MessageTypeImage && req.Caption != "" {
		msg.Caption = &req.Caption
	}

	if err := h.messages.AddMessage(c.Request.Context(), &msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store message"})
		return
	}

	h.hub.BroadcastMessage(ws.PairKey(username, peer), msg)
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// Edit rewrites a message's content, or its caption for image
// messages, and broadcasts the edit.
func (h *MessagesHandler) Edit(c *gin.Context) {
	username := c.GetString("username")
	peer := c.Param("peer")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.messages.GetMessage(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrMessageNotFound) || (err == nil && !belongsToPair(msg, username, peer)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load message"})
		return
	}

	if msg.Type == models.MessageTypeImage {
		// captions may be cleared, so an empty text is fine here
		if err := h.messages.UpdateCaptionByID(c.Request.Context(), id, req.Text); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update caption"})
			return
		}
		msg.Caption = &req.Text
	} else {
		if req.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}
		if err := h.messages.UpdateContentByID(c.Request.Context(), id, req.Text); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update message"})
			return
		}
		msg.Content = req.Text
	}

	h.hub.BroadcastEdit(ws.PairKey(username, peer), *msg)
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Delete removes a set of messages by id and broadcasts the deletion.
// An empty set is a no-op.
func (h *MessagesHandler) Delete(c *gin.Context) {
	username := c.GetString("username")
	peer := c.Param("peer")

	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.messages.DeleteMessagesByID(c.Request.Context(), req.IDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete messages"})
		return
	}

	if len(req.IDs) > 0 {
		h.hub.BroadcastDeletion(ws.PairKey(username, peer), req.IDs)
	}
	c.JSON(http.StatusOK, gin.H{"deleted": req.IDs})
}

// Share returns the shareable form of one message.
func (h *MessagesHandler) Share(c *gin.Context) {
	username := c.GetString("username")
	peer := c.Param("peer")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	msg, err := h.messages.GetMessage(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrMessageNotFound) || (err == nil && !belongsToPair(msg, username, peer)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"share": chat.BuildSharePayload(*msg)})
}

func belongsToPair(msg *models.Message, userA, userB string) bool {
	return (msg.Sender == userA && msg.Receiver == userB) ||
		(msg.Sender == userB && msg.Receiver == userA)
}
