package models

// MessageType distinguishes plain text from image messages. For image
// messages the content column holds a path or URI string.
type MessageType string

const (
	MessageTypeText  MessageType = "TEXT"
	MessageTypeImage MessageType = "IMAGE"
)

// Message is a single chat message between two users. Timestamp is
// milliseconds since epoch assigned once at send time and used as the
// sort key; ID is the unique identifier for edits and deletes.
type Message struct {
	ID        int64       `db:"id" json:"id"`
	Content   string      `db:"content" json:"content"`
	Sender    string      `db:"sender" json:"sender"`
	Receiver  string      `db:"receiver" json:"receiver"`
	Timestamp int64       `db:"timestamp" json:"timestamp"`
	Type      MessageType `db:"type" json:"type"`
	Caption   *string     `db:"caption" json:"caption,omitempty"`
}

// ChatEvent is broadcast to websocket clients attached to a conversation.
type ChatEvent struct {
	Type       string   `json:"type"`
	Message    *Message `json:"message,omitempty"`
	MessageIDs []int64  `json:"message_ids,omitempty"`
}
