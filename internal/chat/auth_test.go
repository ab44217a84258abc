package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"localchat/internal/mocks"
	"localchat/internal/models"
	"localchat/internal/repositories"
)

func TestRegisterHashesPassword(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	svc := NewAuthService(users, false)

	var stored string
	users.On("CreateUser", mock.Anything, "alice", "a@x.com", mock.Anything).
		Run(func(args mock.Arguments) { stored = args.String(3) }).
		Return(nil).Once()

	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "pw1"))
	require.NotEqual(t, "pw1", stored)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("pw1")))
	users.AssertExpectations(t)
}

func TestRegisterPlaintextModeStoresAsIs(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	svc := NewAuthService(users, true)

	users.On("CreateUser", mock.Anything, "alice", "a@x.com", "pw1").Return(nil).Once()

	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "pw1"))
	users.AssertExpectations(t)
}

func TestRegisterEmptyField(t *testing.T) {
	svc := NewAuthService(new(mocks.UserRepositoryMock), false)

	err := svc.Register(context.Background(), "", "a@x.com", "pw1")
	require.ErrorIs(t, err, ErrEmptyField)
}

func TestRegisterDuplicatePropagates(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	svc := NewAuthService(users, true)

	users.On("CreateUser", mock.Anything, "alice", "a@x.com", "pw1").
		Return(repositories.ErrUserExists).Once()

	err := svc.Register(context.Background(), "alice", "a@x.com", "pw1")
	require.ErrorIs(t, err, repositories.ErrUserExists)
	users.AssertExpectations(t)
}

func TestAuthenticateAgainstHash(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	svc := NewAuthService(users, false)

	hashed, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetUser", mock.Anything, "alice").
		Return(&models.User{Name: "alice", Password: string(hashed)}, nil).Twice()

	ok, err := svc.Authenticate(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Authenticate(context.Background(), "alice", "wrong")
	require.NoError(t, err)
	require.False(t, ok)
	users.AssertExpectations(t)
}

func TestAuthenticateUnknownUserIsFalse(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	svc := NewAuthService(users, false)

	users.On("GetUser", mock.Anything, "ghost").Return(nil, nil).Once()

	ok, err := svc.Authenticate(context.Background(), "ghost", "pw")
	require.NoError(t, err)
	require.False(t, ok)
	users.AssertExpectations(t)
}

func TestAuthenticatePlaintextModeUsesExactMatch(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	svc := NewAuthService(users, true)

	users.On("CredentialsMatch", mock.Anything, "alice", "pw1").Return(true, nil).Once()

	ok, err := svc.Authenticate(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	require.True(t, ok)
	users.AssertExpectations(t)
}
