package models

// Conversation is the derived contact-list entry: a partner plus the
// most recent message exchanged with them. LastTimestamp is zero when
// no conversation exists yet, which sorts such partners last.
type Conversation struct {
	Partner       string      `json:"partner"`
	LastMessage   string      `json:"last_message,omitempty"`
	LastType      MessageType `json:"last_type,omitempty"`
	LastTimestamp int64       `json:"last_timestamp,omitempty"`
}
