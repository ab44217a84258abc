package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"localchat/internal/models"
	"localchat/internal/observability"
)

var ErrUserExists = errors.New("user already exists")

// UserRepository defines interactions for registered accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, name, email, password string) error
	GetUser(ctx context.Context, name string) (*models.User, error)
	UserExists(ctx context.Context, name string) (bool, error)
	CredentialsMatch(ctx context.Context, name, password string) (bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UserRepo is a sqlx-backed repository.
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo constructs UserRepo.
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser inserts a new account. The unique index on name makes the
// insert-if-absent atomic; a duplicate name returns ErrUserExists
// instead of relying on a racy existence check beforehand.
func (r *UserRepo) CreateUser(ctx context.Context, name, email, password string) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO user (name, email, password) VALUES (?, ?, ?)`,
		name, email, password)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrUserExists
	}
	observability.IncStoreOp("create_user")
	return nil
}

// GetUser fetches an account by name, nil when absent.
func (r *UserRepo) GetUser(ctx context.Context, name string) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u,
		`SELECT id, name, email, password FROM user WHERE name=?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserExists checks for an account by exact name match.
func (r *UserRepo) UserExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM user WHERE name=?)`, name)
	return exists, err
}

// CredentialsMatch checks for an account by exact name and password
// match. Only meaningful when passwords are stored in plaintext.
func (r *UserRepo) CredentialsMatch(ctx context.Context, name, password string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM user WHERE name=? AND password=?)`, name, password)
	return exists, err
}

// ListUsers returns all accounts in storage order.
func (r *UserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.SelectContext(ctx, &users,
		`SELECT id, name, email, password FROM user`)
	return users, err
}
