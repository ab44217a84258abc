package chat

import (
	"context"
	"sort"

	"localchat/internal/models"
	"localchat/internal/repositories"
)

// ConversationService builds the contact list: every known user except
// the current one, annotated with the most recent message exchanged
// with them.
type ConversationService struct {
	users    repositories.UserRepository
	messages repositories.MessageRepository
}

// NewConversationService builds a ConversationService.
func NewConversationService(users repositories.UserRepository, messages repositories.MessageRepository) *ConversationService {
	return &ConversationService{users: users, messages: messages}
}

// List returns the contact list for currentUser, most recently active
// partner first. Partners with no conversation yet keep a zero
// timestamp and therefore land at the end.
func (s *ConversationService) List(ctx context.Context, currentUser string) ([]models.Conversation, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	conversations := make([]models.Conversation, 0, len(users))
	for _, u := range users {
		if u.Name == "" || u.Name == currentUser {
			continue
		}

		conv := models.Conversation{Partner: u.Name}
		last, err := s.messages.LastMessage(ctx, currentUser, u.Name)
		if err != nil {
			return nil, err
		}
		if last != nil {
			conv.LastMessage = last.Content
			conv.LastType = last.Type
			conv.LastTimestamp = last.Timestamp
		}
		conversations = append(conversations, conv)
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastTimestamp > conversations[j].LastTimestamp
	})
	return conversations, nil
}
