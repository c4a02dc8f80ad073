package webhook

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"webhook-timer/internal/model"
)

var ErrWebhookNotFound = errors.New("webhook not found")

// Repository provides methods to interact with the webhooks table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new webhook repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateWebhook inserts a new webhook configuration and returns its ID.
func (r *Repository) CreateWebhook(ctx context.Context, w model.Webhook) (uuid.UUID, error) {
	query := `
		INSERT INTO webhooks (
		    name, url, mention_everyone, created_at
		) VALUES ($1, $2, $3, $4)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, w.Name, w.URL, w.MentionEveryone, w.CreatedAt,
	).Scan(&w.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create webhook: %w", err)
	}

	return w.ID, nil
}

// GetWebhookByID retrieves a single webhook configuration by its ID.
func (r *Repository) GetWebhookByID(ctx context.Context, id uuid.UUID) (model.Webhook, error) {
	query := `
		SELECT id, name, url, mention_everyone, created_at
		FROM webhooks
		WHERE id = $1;
    `

	var w model.Webhook
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.URL, &w.MentionEveryone, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Webhook{}, ErrWebhookNotFound
		}

		return model.Webhook{}, fmt.Errorf("failed to get webhook: %w", err)
	}

	return w, nil
}

// ListWebhooks retrieves all webhook configurations, newest first.
func (r *Repository) ListWebhooks(ctx context.Context) ([]model.Webhook, error) {
	query := `
		SELECT id, name, url, mention_everyone, created_at
		FROM webhooks
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}
	defer rows.Close()

	var webhooks []model.Webhook
	for rows.Next() {
		var w model.Webhook
		if err := rows.Scan(&w.ID, &w.Name, &w.URL, &w.MentionEveryone, &w.CreatedAt); err != nil {
			return nil, err
		}

		webhooks = append(webhooks, w)
	}

	return webhooks, nil
}

// DeleteWebhook removes a webhook configuration.
func (r *Repository) DeleteWebhook(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM webhooks
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrWebhookNotFound
	}

	return nil
}
