package chat

import (
	"strings"

	"localchat/internal/models"
)

// FilterMessages returns the messages matching the query by
// case-insensitive substring: text messages match on content, image
// messages on caption. An empty query returns the full list. The input
// slice is never mutated; callers reapply the filter from the full
// list on every query change.
func FilterMessages(msgs []models.Message, query string) []models.Message {
	if query == "" {
		out := make([]models.Message, len(msgs))
		copy(out, msgs)
		return out
	}

	query = strings.ToLower(query)
	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		switch m.Type {
		case models.MessageTypeText:
			if strings.Contains(strings.ToLower(m.Content), query) {
				out = append(out, m)
			}
		case models.MessageTypeImage:
			if m.Caption != nil && strings.Contains(strings.ToLower(*m.Caption), query) {
				out = append(out, m)
			}
		}
	}
	return out
}
