package timer

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"webhook-timer/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreateTimer(t *testing.T) {
	repo, mock := setupMockDB(t)

	timerID := uuid.New()
	now := time.Now().UTC()
	tm := model.Timer{
		Description:     "tea",
		DurationSeconds: 90,
		WebhookURL:      "https://example.com/hook",
		MentionEveryone: true,
		MaxPings:        1,
		Priority:        model.PriorityNormal,
		Status:          model.StatusActive,
		Timezone:        "UTC",
		CreatedAt:       now,
		ExpiresAt:       now.Add(90 * time.Second),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO timers (
		    description, duration_seconds, webhook_url, mention_everyone,
		    max_pings, current_pings, custom_message, repeat_interval, priority,
		    status, is_alarm, alarm_time, timezone, created_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id;
    `)).
		WithArgs(
			tm.Description, tm.DurationSeconds, tm.WebhookURL, tm.MentionEveryone,
			tm.MaxPings, tm.CurrentPings, tm.CustomMessage, tm.RepeatInterval, tm.Priority,
			tm.Status, tm.IsAlarm, tm.AlarmTime, tm.Timezone, tm.CreatedAt, tm.ExpiresAt,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(timerID))

	id, err := repo.CreateTimer(context.Background(), tm)
	assert.NoError(t, err)
	assert.Equal(t, timerID, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTimerStatusByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT status
		FROM timers
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusActive))

	status, err := repo.GetTimerStatusByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusActive, status)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT status
		FROM timers
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	status, err = repo.GetTimerStatusByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrTimerNotFound)
	assert.Equal(t, "", status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteIfActive(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE timers
		SET status = $1
		WHERE id = $2 AND status = 'active';
    `)).
		WithArgs(model.StatusCompleted, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.CompleteIfActive(context.Background(), id, model.StatusCompleted)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())

	// Already terminal: zero rows affected, no error.
	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE timers
		SET status = $1
		WHERE id = $2 AND status = 'active';
    `)).
		WithArgs(model.StatusCancelled, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.CompleteIfActive(context.Background(), id, model.StatusCancelled)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTimersByStatus(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now().UTC()
	t1 := model.Timer{
		ID: uuid.New(), Description: "tea", DurationSeconds: 90,
		WebhookURL: "https://example.com/a", MentionEveryone: true, MaxPings: 1,
		Priority: model.PriorityNormal, Status: model.StatusActive,
		Timezone: "UTC", CreatedAt: now, ExpiresAt: now.Add(90 * time.Second),
	}
	t2 := model.Timer{
		ID: uuid.New(), Description: "build", DurationSeconds: 3600,
		WebhookURL: "https://example.com/b", MaxPings: 2,
		Priority: model.PriorityHigh, Status: model.StatusActive,
		Timezone: "UTC", CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}

	cols := []string{
		"id", "description", "duration_seconds", "webhook_url", "mention_everyone",
		"max_pings", "current_pings", "custom_message", "repeat_interval", "priority",
		"status", "is_alarm", "alarm_time", "timezone", "created_at", "expires_at",
	}
	rows := sqlmock.NewRows(cols).
		AddRow(
			t1.ID, t1.Description, t1.DurationSeconds, t1.WebhookURL, t1.MentionEveryone,
			t1.MaxPings, t1.CurrentPings, t1.CustomMessage, t1.RepeatInterval, t1.Priority,
			t1.Status, t1.IsAlarm, t1.AlarmTime, t1.Timezone, t1.CreatedAt, t1.ExpiresAt,
		).
		AddRow(
			t2.ID, t2.Description, t2.DurationSeconds, t2.WebhookURL, t2.MentionEveryone,
			t2.MaxPings, t2.CurrentPings, t2.CustomMessage, t2.RepeatInterval, t2.Priority,
			t2.Status, t2.IsAlarm, t2.AlarmTime, t2.Timezone, t2.CreatedAt, t2.ExpiresAt,
		)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT ` + timerColumns + `
		FROM timers
		WHERE status = $1
		ORDER BY expires_at ASC;
    `)).
		WithArgs(model.StatusActive).
		WillReturnRows(rows)

	list, err := repo.ListTimersByStatus(context.Background(), model.StatusActive)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "tea", list[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTimer(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM timers
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteTimer(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM timers
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteTimer(context.Background(), id), ErrTimerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
