package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"localchat/internal/models"
	"localchat/internal/observability"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines interactions for chat messages.
type MessageRepository interface {
	AddMessage(ctx context.Context, msg *models.Message) error
	GetMessage(ctx context.Context, id int64) (*models.Message, error)
	ListConversation(ctx context.Context, userA, userB string) ([]models.Message, error)
	LastMessage(ctx context.Context, userA, userB string) (*models.Message, error)
	UpdateContent(ctx context.Context, timestamp int64, newContent string) error
	UpdateCaption(ctx context.Context, timestamp int64, newCaption string) error
	UpdateContentByID(ctx context.Context, id int64, newContent string) error
	UpdateCaptionByID(ctx context.Context, id int64, newCaption string) error
	DeleteMessages(ctx context.Context, timestamps []int64) error
	DeleteMessagesByID(ctx context.Context, ids []int64) error
}

// MessageRepo is a sqlx-backed repository.
type MessageRepo struct {
	db *sqlx.DB
}

// NewMessageRepo constructs MessageRepo.
func NewMessageRepo(db *sqlx.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

const messageColumns = `id, content, sender, receiver, timestamp, type, caption`

// AddMessage stores one message and fills in its assigned id.
func (r *MessageRepo) AddMessage(ctx context.Context, msg *models.Message) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO message (content, sender, receiver, timestamp, type, caption)
         VALUES (?, ?, ?, ?, ?, ?)`,
		msg.Content, msg.Sender, msg.Receiver, msg.Timestamp, msg.Type, msg.Caption)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	msg.ID = id
	observability.IncStoreOp("add_message")
	return nil
}

// GetMessage retrieves a single message by id.
func (r *MessageRepo) GetMessage(ctx context.Context, id int64) (*models.Message, error) {
	var msg models.Message
	err := r.db.GetContext(ctx, &msg,
		`SELECT `+messageColumns+` FROM message WHERE id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListConversation returns every message exchanged between the pair in
// either direction, oldest first.
func (r *MessageRepo) ListConversation(ctx context.Context, userA, userB string) ([]models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM message
        WHERE (sender=? AND receiver=?) OR (sender=? AND receiver=?)
        ORDER BY timestamp ASC`
	var msgs []models.Message
	err := r.db.SelectContext(ctx, &msgs, query, userA, userB, userB, userA)
	return msgs, err
}

// LastMessage returns the most recent message between the pair, nil
// when they have never exchanged one.
func (r *MessageRepo) LastMessage(ctx context.Context, userA, userB string) (*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM message
        WHERE (sender=? AND receiver=?) OR (sender=? AND receiver=?)
        ORDER BY timestamp DESC LIMIT 1`
	var msg models.Message
	err := r.db.GetContext(ctx, &msg, query, userA, userB, userB, userA)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// UpdateContent rewrites the content of every message carrying the
// given timestamp.
func (r *MessageRepo) UpdateContent(ctx context.Context, timestamp int64, newContent string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE message SET content=? WHERE timestamp=?`, newContent, timestamp)
	if err == nil {
		observability.IncStoreOp("update_content")
	}
	return err
}

// UpdateCaption rewrites the caption of every message carrying the
// given timestamp.
func (r *MessageRepo) UpdateCaption(ctx context.Context, timestamp int64, newCaption string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE message SET caption=? WHERE timestamp=?`, newCaption, timestamp)
	if err == nil {
		observability.IncStoreOp("update_caption")
	}
	return err
}

// UpdateContentByID rewrites the content of one message.
func (r *MessageRepo) UpdateContentByID(ctx context.Context, id int64, newContent string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE message SET content=? WHERE id=?`, newContent, id)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrMessageNotFound
	}
	observability.IncStoreOp("update_content")
	return nil
}

// UpdateCaptionByID rewrites the caption of one message.
func (r *MessageRepo) UpdateCaptionByID(ctx context.Context, id int64, newCaption string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE message SET caption=? WHERE id=?`, newCaption, id)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrMessageNotFound
	}
	observability.IncStoreOp("update_caption")
	return nil
}

// DeleteMessages removes every message whose timestamp is in the set.
// No-op on an empty set.
func (r *MessageRepo) DeleteMessages(ctx context.Context, timestamps []int64) error {
	return r.deleteIn(ctx, `DELETE FROM message WHERE timestamp IN (?)`, timestamps)
}

// DeleteMessagesByID removes every message whose id is in the set.
// No-op on an empty set.
func (r *MessageRepo) DeleteMessagesByID(ctx context.Context, ids []int64) error {
	return r.deleteIn(ctx, `DELETE FROM message WHERE id IN (?)`, ids)
}

func (r *MessageRepo) deleteIn(ctx context.Context, query string, keys []int64) error {
	if len(keys) == 0 {
		return nil
	}
	q, args, err := sqlx.In(query, keys)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return err
	}
	observability.IncStoreOp("delete_messages")
	return nil
}
