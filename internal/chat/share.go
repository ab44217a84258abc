package chat

import "localchat/internal/models"

// SharePayload is what a caller hands to the platform share sheet for
// a single selected message.
type SharePayload struct {
	Kind      string `json:"kind"` // "text" or "image"
	Text      string `json:"text,omitempty"`
	ImagePath string `json:"image_path,omitempty"`
	Caption   string `json:"caption,omitempty"`
}

// BuildSharePayload converts one message into its shareable form. Text
// messages share their content; image messages share the file path
// plus the caption when present.
func BuildSharePayload(msg models.Message) SharePayload {
	if msg.Type == models.MessageTypeImage {
		p := SharePayload{Kind: "image", ImagePath: msg.Content}
		if msg.Caption != nil {
			p.Caption = *msg.Caption
		}
		return p
	}
	return SharePayload{Kind: "text", Text: msg.Content}
}
