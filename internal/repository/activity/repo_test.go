package activity

import (
	"context"
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

func TestCreateActivity(t *testing.T) {
	repo, mock := setupMockDB(t)

	activityID := uuid.New()
	timerID := uuid.New()
	a := model.Activity{
		TimerID:   &timerID,
		Kind:      model.ActivityCreated,
		Message:   "Timer created: tea",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO activities (
		    timer_id, kind, message, created_at
		) VALUES ($1, $2, $3, $4)
		RETURNING id;
    `)).
		WithArgs(a.TimerID, a.Kind, a.Message, a.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(activityID))

	id, err := repo.CreateActivity(context.Background(), a)
	assert.NoError(t, err)
	assert.Equal(t, activityID, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateActivity_BatchLevelHasNilTimer(t *testing.T) {
	repo, mock := setupMockDB(t)

	a := model.Activity{
		Kind:      model.ActivityBatchCreated,
		Message:   "Batch created 3 timers",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO activities (
		    timer_id, kind, message, created_at
		) VALUES ($1, $2, $3, $4)
		RETURNING id;
    `)).
		WithArgs(nil, a.Kind, a.Message, a.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))

	_, err := repo.CreateActivity(context.Background(), a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecentActivities(t *testing.T) {
	repo, mock := setupMockDB(t)

	timerID := uuid.New()
	a1 := model.Activity{ID: uuid.New(), TimerID: &timerID, Kind: model.ActivityCompleted, Message: "Timer completed: tea", CreatedAt: time.Now().UTC()}
	a2 := model.Activity{ID: uuid.New(), TimerID: &timerID, Kind: model.ActivityWebhookSent, Message: "Webhook notification sent", CreatedAt: time.Now().UTC()}

	rows := sqlmock.NewRows([]string{"id", "timer_id", "kind", "message", "created_at"}).
		AddRow(a1.ID, a1.TimerID, a1.Kind, a1.Message, a1.CreatedAt).
		AddRow(a2.ID, a2.TimerID, a2.Kind, a2.Message, a2.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, timer_id, kind, message, created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT $1;
    `)).
		WithArgs(50).
		WillReturnRows(rows)

	list, err := repo.ListRecentActivities(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, timer_id, kind, message, created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT $1;
    `)).
		WithArgs(50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "timer_id", "kind", "message", "created_at"}))

	_, err = repo.ListRecentActivities(context.Background(), 50)
	assert.ErrorIs(t, err, ErrNoActivitiesFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
