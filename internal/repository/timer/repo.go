package timer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"webhook-timer/internal/model"
)

var ErrTimerNotFound = errors.New("timer not found")

// Repository provides methods to interact with the timers table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new timer repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

const timerColumns = `
	id, description, duration_seconds, webhook_url, mention_everyone,
	max_pings, current_pings, custom_message, repeat_interval, priority,
	status, is_alarm, alarm_time, timezone, created_at, expires_at
`

// CreateTimer inserts a new timer and returns its ID.
func (r *Repository) CreateTimer(ctx context.Context, t model.Timer) (uuid.UUID, error) {
	query := `
		INSERT INTO timers (
		    description, duration_seconds, webhook_url, mention_everyone,
		    max_pings, current_pings, custom_message, repeat_interval, priority,
		    status, is_alarm, alarm_time, timezone, created_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query,
		t.Description, t.DurationSeconds, t.WebhookURL, t.MentionEveryone,
		t.MaxPings, t.CurrentPings, t.CustomMessage, t.RepeatInterval, t.Priority,
		t.Status, t.IsAlarm, t.AlarmTime, t.Timezone, t.CreatedAt, t.ExpiresAt,
	).Scan(&t.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create timer: %w", err)
	}

	return t.ID, nil
}

// GetTimerByID retrieves a single timer by its ID.
func (r *Repository) GetTimerByID(ctx context.Context, id uuid.UUID) (model.Timer, error) {
	query := `
		SELECT ` + timerColumns + `
		FROM timers
		WHERE id = $1;
    `

	var t model.Timer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Description, &t.DurationSeconds, &t.WebhookURL, &t.MentionEveryone,
		&t.MaxPings, &t.CurrentPings, &t.CustomMessage, &t.RepeatInterval, &t.Priority,
		&t.Status, &t.IsAlarm, &t.AlarmTime, &t.Timezone, &t.CreatedAt, &t.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Timer{}, ErrTimerNotFound
		}

		return model.Timer{}, fmt.Errorf("failed to get timer: %w", err)
	}

	return t, nil
}

// ListTimersByStatus retrieves all timers with the given status ordered by
// expiry, soonest first.
func (r *Repository) ListTimersByStatus(ctx context.Context, status string) ([]model.Timer, error) {
	query := `
		SELECT ` + timerColumns + `
		FROM timers
		WHERE status = $1
		ORDER BY expires_at ASC;
    `

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list timers: %w", err)
	}
	defer rows.Close()

	var timers []model.Timer
	for rows.Next() {
		var t model.Timer
		if err := rows.Scan(
			&t.ID, &t.Description, &t.DurationSeconds, &t.WebhookURL, &t.MentionEveryone,
			&t.MaxPings, &t.CurrentPings, &t.CustomMessage, &t.RepeatInterval, &t.Priority,
			&t.Status, &t.IsAlarm, &t.AlarmTime, &t.Timezone, &t.CreatedAt, &t.ExpiresAt,
		); err != nil {
			return nil, err
		}

		timers = append(timers, t)
	}

	return timers, nil
}

// GetTimerStatusByID retrieves the status of a timer by its ID.
func (r *Repository) GetTimerStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT status
		FROM timers
		WHERE id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrTimerNotFound
		}

		return "", fmt.Errorf("failed to get timer status: %w", err)
	}

	return status, nil
}

// CompleteIfActive flips an active timer to the given terminal status.
//
// It reports whether the transition happened. A false result with a nil error
// means the timer was absent or already in a terminal state, which makes
// concurrent fire/cancel race-free: exactly one caller wins.
func (r *Repository) CompleteIfActive(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	query := `
		UPDATE timers
		SET status = $1
		WHERE id = $2 AND status = 'active';
    `

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return false, fmt.Errorf("failed to update timer status: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows > 0, nil
}

// DeleteTimer removes a timer. Used only for explicit user cleanup, never by
// the lifecycle engine itself.
func (r *Repository) DeleteTimer(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM timers
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete timer: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrTimerNotFound
	}

	return nil
}
