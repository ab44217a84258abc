package chat

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"localchat/internal/repositories"
)

var ErrEmptyField = errors.New("name, email and password are required")

// AuthService registers accounts and checks credentials. Passwords are
// bcrypt-hashed unless the insecure plaintext mode is enabled, which
// reproduces the original demo behavior of storing them as-is.
type AuthService struct {
	users     repositories.UserRepository
	plaintext bool
}

// NewAuthService builds an AuthService.
func NewAuthService(users repositories.UserRepository, plaintext bool) *AuthService {
	return &AuthService{users: users, plaintext: plaintext}
}

// Register creates an account. Returns repositories.ErrUserExists when
// the name is taken.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return ErrEmptyField
	}

	stored := password
	if !s.plaintext {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		stored = string(hashed)
	}

	return s.users.CreateUser(ctx, name, email, stored)
}

// Authenticate reports whether the name/password pair matches a stored
// account. An unknown name or wrong password is false, not an error.
func (s *AuthService) Authenticate(ctx context.Context, name, password string) (bool, error) {
	if s.plaintext {
		return s.users.CredentialsMatch(ctx, name, password)
	}

	u, err := s.users.GetUser(ctx, name)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil, nil
}
