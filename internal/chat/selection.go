package chat

import "localchat/internal/models"

// Selection is the transient set of messages marked during one UI
// session for bulk edit, share or delete. It is never persisted.
type Selection struct {
	members map[int64]models.Message
	order   []int64
}

// NewSelection builds an empty selection.
func NewSelection() *Selection {
	return &Selection{members: make(map[int64]models.Message)}
}

// Toggle flips membership for the message and reports whether it is
// now selected.
func (s *Selection) Toggle(msg models.Message) bool {
	if _, ok := s.members[msg.ID]; ok {
		delete(s.members, msg.ID)
		for i, id := range s.order {
			if id == msg.ID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.members[msg.ID] = msg
	s.order = append(s.order, msg.ID)
	return true
}

// Contains reports whether the message id is selected.
func (s *Selection) Contains(id int64) bool {
	_, ok := s.members[id]
	return ok
}

// Count returns the number of selected messages.
func (s *Selection) Count() int {
	return len(s.members)
}

// Active reports whether selection mode is on, i.e. anything is selected.
func (s *Selection) Active() bool {
	return len(s.members) > 0
}

// Single returns the sole selected message. Single-item operations
// like edit and share are gated on exactly one selection.
func (s *Selection) Single() (models.Message, bool) {
	if len(s.members) != 1 {
		return models.Message{}, false
	}
	return s.members[s.order[0]], true
}

// IDs returns the selected message ids in selection order.
func (s *Selection) IDs() []int64 {
	ids := make([]int64, len(s.order))
	copy(ids, s.order)
	return ids
}

// Timestamps returns the timestamps of the selected messages in
// selection order.
func (s *Selection) Timestamps() []int64 {
	ts := make([]int64, 0, len(s.order))
	for _, id := range s.order {
		ts = append(ts, s.members[id].Timestamp)
	}
	return ts
}

// Clear exits selection mode.
func (s *Selection) Clear() {
	s.members = make(map[int64]models.Message)
	s.order = nil
}
