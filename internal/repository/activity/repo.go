package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"webhook-timer/internal/model"
)

var ErrNoActivitiesFound = errors.New("no activities found")

// Repository provides methods to interact with the activities table.
//
// Activities are append-only: there is no update or delete.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new activity repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateActivity appends a new activity and returns its ID.
func (r *Repository) CreateActivity(ctx context.Context, a model.Activity) (uuid.UUID, error) {
	query := `
		INSERT INTO activities (
		    timer_id, kind, message, created_at
		) VALUES ($1, $2, $3, $4)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, a.TimerID, a.Kind, a.Message, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return a.ID, nil
}

// ListRecentActivities retrieves the most recent activities, newest first.
func (r *Repository) ListRecentActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	query := `
		SELECT id, timer_id, kind, message, created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT $1;
    `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []model.Activity
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.TimerID, &a.Kind, &a.Message, &a.CreatedAt); err != nil {
			return nil, err
		}

		activities = append(activities, a)
	}

	if len(activities) == 0 {
		return nil, ErrNoActivitiesFound
	}

	return activities, nil
}

// ListActivitiesByTimer retrieves all activities referencing a timer, newest first.
func (r *Repository) ListActivitiesByTimer(ctx context.Context, timerID uuid.UUID) ([]model.Activity, error) {
	query := `
		SELECT id, timer_id, kind, message, created_at
		FROM activities
		WHERE timer_id = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, timerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timer activities: %w", err)
	}
	defer rows.Close()

	var activities []model.Activity
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.TimerID, &a.Kind, &a.Message, &a.CreatedAt); err != nil {
			return nil, err
		}

		activities = append(activities, a)
	}

	return activities, nil
}
