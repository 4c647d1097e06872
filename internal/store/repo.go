package store

import (
	"context"
	"fmt"
	"time"

	"github.com/starford/sitekit/internal/apperr"
)

// SubscriberRow is a row in the subscribers table.
type SubscriberRow struct {
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// InquiryRow is a row in the inquiries table.
type InquiryRow struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Topic     string    `json:"topic,omitempty"`
	Message   string    `json:"message"`
	Site      string    `json:"site,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// InsertSubscriber adds email. It returns apperr.ErrAlreadyExists when the
// address is already on the list.
func (db *DB) InsertSubscriber(ctx context.Context, email, source string) error {
	res, err := db.conn.ExecContext(ctx,
		`INSERT OR IGNORE INTO subscribers (email, source, created_at) VALUES (?, ?, ?)`,
		email, source, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store: insert subscriber: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: insert subscriber: %w", err)
	}
	if n == 0 {
		return apperr.ErrAlreadyExists
	}
	return nil
}

// ListSubscribers returns subscribers, newest first.
func (db *DB) ListSubscribers(ctx context.Context, limit int) ([]SubscriberRow, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.conn.QueryContext(ctx,
		`SELECT email, source, created_at FROM subscribers ORDER BY created_at DESC, email LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list subscribers: %w", err)
	}
	defer rows.Close()

	var out []SubscriberRow
	for rows.Next() {
		var r SubscriberRow
		if err := rows.Scan(&r.Email, &r.Source, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// InsertInquiry stores a contact inquiry.
func (db *DB) InsertInquiry(ctx context.Context, r InquiryRow) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO inquiries (id, name, email, company, topic, message, site, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Name, r.Email, r.Company, r.Topic, r.Message, r.Site, r.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("store: insert inquiry: %w", err)
	}
	return nil
}

// ListInquiries returns inquiries, newest first.
func (db *DB) ListInquiries(ctx context.Context, limit int) ([]InquiryRow, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, name, email, company, topic, message, site, created_at
		FROM inquiries
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list inquiries: %w", err)
	}
	defer rows.Close()

	var out []InquiryRow
	for rows.Next() {
		var r InquiryRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Company, &r.Topic, &r.Message, &r.Site, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
