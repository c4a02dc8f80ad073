package timer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "webhook-timer/internal/mocks/api/handlers/timer"
	"webhook-timer/internal/model"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocktimerService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocktimerService(ctrl)
	validate := validator.New()
	handler := NewHandler(mockService, validate)
	return handler, mockService
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := CreateRequest{
		Description:     "tea",
		DurationSeconds: 90,
		WebhookURL:      "https://example.com/hook",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/timers", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	expected := reqBody.toModel()

	mockService.EXPECT().
		CreateTimer(gomock.Any(), expected).
		Return(model.Timer{ID: uuid.New(), Description: "tea"}, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_AppliesDefaults(t *testing.T) {
	handler, mockService := setupHandler(t)

	body := []byte(`{"description":"tea","duration_seconds":60,"webhook_url":"https://example.com/hook"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/timers", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		CreateTimer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m model.Timer) (model.Timer, error) {
			assert.True(t, m.MentionEveryone, "mention defaults to true")
			assert.Equal(t, 1, m.MaxPings, "max pings defaults to 1")
			assert.Equal(t, model.PriorityNormal, m.Priority)
			assert.Equal(t, "UTC", m.Timezone)
			return m, nil
		})

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_RejectsBadDuration(t *testing.T) {
	handler, _ := setupHandler(t)

	body := []byte(`{"description":"tea","duration_seconds":0,"webhook_url":"https://example.com/hook"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/timers", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	// No service call may happen: validation failures create no state.
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_CreateBatch_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := BatchCreateRequest{
		Timers: []CreateRequest{
			{Description: "a", DurationSeconds: 10, WebhookURL: "https://example.com/a"},
			{Description: "b", DurationSeconds: 20, WebhookURL: "https://example.com/b"},
		},
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/timers/batch", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		CreateBatch(gomock.Any(), gomock.Len(2)).
		Return([]model.Timer{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	handler.CreateBatch(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_GetAll_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/timers", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		ListActive(gomock.Any()).
		Return([]model.Timer{{Description: "tea", RemainingSeconds: 42}}, nil)

	handler.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetStatus_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/timers/"+id.String()+"/status", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetTimerStatusByID(gomock.Any(), id).
		Return(model.StatusActive, nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Cancel_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/timers/"+id.String()+"/cancel", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		CancelTimer(gomock.Any(), id).
		Return(nil)

	handler.Cancel(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Cancel_InvalidID(t *testing.T) {
	handler, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/timers/nope/cancel", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	handler.Cancel(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_GetActivities_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		ListRecentActivities(gomock.Any(), defaultActivityLimit).
		Return([]model.Activity{{Kind: model.ActivityCreated, CreatedAt: time.Now()}}, nil)

	handler.GetActivities(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetActivities_EmptyFeed(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		ListRecentActivities(gomock.Any(), defaultActivityLimit).
		Return([]model.Activity{}, nil)

	handler.GetActivities(c)

	require.Equal(t, http.StatusOK, w.Result().StatusCode, "an empty feed is a successful response")

	var resp struct {
		Success bool             `json:"success"`
		Data    []model.Activity `json:"data"`
		Error   string           `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
}

func TestHandler_GetTimerActivities_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/timers/"+id.String()+"/activities", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		ListActivitiesByTimer(gomock.Any(), id).
		Return([]model.Activity{{TimerID: &id, Kind: model.ActivityCompleted, CreatedAt: time.Now()}}, nil)

	handler.GetTimerActivities(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
