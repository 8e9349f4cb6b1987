package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MessageStatus string

const (
	MessageSent   MessageStatus = "sent"
	MessageFailed MessageStatus = "failed"
)

// Message is one contact form submission that reached the relay.
type Message struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Relay     string        `json:"relay"`
	Status    MessageStatus `json:"status"`
	Error     string        `json:"error,omitempty"`
	HashedIP  string        `json:"hashed_ip,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type MessageCounts struct {
	Total  int64 `json:"total"`
	Failed int64 `json:"failed"`
}

// MessageRepository handles SQLite operations for contact messages
type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a message, assigning an id and timestamp when missing.
func (r *MessageRepository) Create(ctx context.Context, m *Message) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.CreatedAt = m.CreatedAt.UTC().Truncate(time.Second)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, subject, message, relay, status, error, hashed_ip, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Email, m.Subject, m.Message, m.Relay, string(m.Status), m.Error, m.HashedIP, formatTime(m.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// List returns the newest messages first.
func (r *MessageRepository) List(ctx context.Context, limit int) ([]Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, subject, message, relay, status, error, hashed_ip, created_at
		FROM messages
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		var status, created string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Relay,
			&status, &m.Error, &m.HashedIP, &created); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.Status = MessageStatus(status)
		m.CreatedAt = parseTime(created)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return out, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM messages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MessageRepository) Counts(ctx context.Context) (MessageCounts, error) {
	var c MessageCounts
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM messages
	`, string(MessageFailed)).Scan(&c.Total, &c.Failed)
	if err != nil {
		return c, fmt.Errorf("failed to count messages: %w", err)
	}
	return c, nil
}
