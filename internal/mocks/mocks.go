package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"localchat/internal/models"
)

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) CreateUser(ctx context.Context, name, email, password string) error {
	args := m.Called(ctx, name, email, password)
	return args.Error(0)
}

func (m *UserRepositoryMock) GetUser(ctx context.Context, name string) (*models.User, error) {
	args := m.Called(ctx, name)
	var u *models.User
	if val := args.Get(0); val != nil {
		u = val.(*models.User)
	}
	return u, args.Error(1)
}

func (m *UserRepositoryMock) UserExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepositoryMock) CredentialsMatch(ctx context.Context, name, password string) (bool, error) {
	args := m.Called(ctx, name, password)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepositoryMock) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	var users []models.User
	if val := args.Get(0); val != nil {
		users = val.([]models.User)
	}
	return users, args.Error(1)
}

type MessageRepositoryMock struct {
	mock.Mock
}

func (m *MessageRepositoryMock) AddMessage(ctx context.Context, msg *models.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessageRepositoryMock) GetMessage(ctx context.Context, id int64) (*models.Message, error) {
	args := m.Called(ctx, id)
	var msg *models.Message
	if val := args.Get(0); val != nil {
		msg = val.(*models.Message)
	}
	return msg, args.Error(1)
}

func (m *MessageRepositoryMock) ListConversation(ctx context.Context, userA, userB string) ([]models.Message, error) {
	args := m.Called(ctx, userA, userB)
	var msgs []models.Message
	if val := args.Get(0); val != nil {
		msgs = val.([]models.Message)
	}
	return msgs, args.Error(1)
}

func (m *MessageRepositoryMock) LastMessage(ctx context.Context, userA, userB string) (*models.Message, error) {
	args := m.Called(ctx, userA, userB)
	var msg *models.Message
	if val := args.Get(0); val != nil {
		msg = val.(*models.Message)
	}
	return msg, args.Error(1)
}

func (m *MessageRepositoryMock) UpdateContent(ctx context.Context, timestamp int64, newContent string) error {
	args := m.Called(ctx, timestamp, newContent)
	return args.Error(0)
}

func (m *MessageRepositoryMock) UpdateCaption(ctx context.Context, timestamp int64, newCaption string) error {
	args := m.Called(ctx, timestamp, newCaption)
	return args.Error(0)
}

func (m *MessageRepositoryMock) UpdateContentByID(ctx context.Context, id int64, newContent string) error {
	args := m.Called(ctx, id, newContent)
	return args.Error(0)
}

func (m *MessageRepositoryMock) UpdateCaptionByID(ctx context.Context, id int64, newCaption string) error {
	args := m.Called(ctx, id, newCaption)
	return args.Error(0)
}

func (m *MessageRepositoryMock) DeleteMessages(ctx context.Context, timestamps []int64) error {
	args := m.Called(ctx, timestamps)
	return args.Error(0)
}

func (m *MessageRepositoryMock) DeleteMessagesByID(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
