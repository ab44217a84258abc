package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// Manager issues and validates signed session tokens carrying the
// logged-in username. The username travels with every request instead
// of living in ambient shared state.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewManager builds a Manager.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a session token for the username.
func (m *Manager) Issue(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "localchat",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
	})
	return token.SignedString(m.secret)
}

// Validate parses a session token and returns the username it carries.
func (m *Manager) Validate(tokenString string) (string, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || c.Username == "" {
		return "", ErrInvalidToken
	}
	return c.Username, nil
}
