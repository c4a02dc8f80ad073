package webhook

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "webhook-timer/internal/mocks/api/handlers/webhook"
	"webhook-timer/internal/model"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockwebhookService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockwebhookService(ctrl)
	validate := validator.New()
	handler := NewHandler(mockService, validate)
	return handler, mockService
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := CreateRequest{
		Name:            "team-room",
		URL:             "https://discord.com/api/webhooks/1/abc",
		MentionEveryone: true,
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		CreateWebhook(gomock.Any(), model.Webhook{
			Name:            "team-room",
			URL:             "https://discord.com/api/webhooks/1/abc",
			MentionEveryone: true,
		}).
		Return(uuid.New(), nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_MissingURL(t *testing.T) {
	handler, _ := setupHandler(t)

	body := []byte(`{"name":"team-room"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_GetAll_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/webhooks", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		ListWebhooks(gomock.Any()).
		Return([]model.Webhook{{Name: "team-room"}}, nil)

	handler.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Delete_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/webhooks/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		DeleteWebhook(gomock.Any(), id).
		Return(nil)

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Test_ReportsDeliveryResult(t *testing.T) {
	handler, mockService := setupHandler(t)

	body := []byte(`{"url":"https://discord.com/api/webhooks/1/abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/test", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		TestWebhook(gomock.Any(), "https://discord.com/api/webhooks/1/abc").
		Return(false)

	handler.Test(c)

	// Delivery failure is data, not an HTTP error.
	require.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Success bool `json:"success"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Data.Success)
}

func TestHandler_Send_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	id := uuid.New()
	reqBody := SendRequest{WebhookID: id, Text: "standup in 5", MentionEveryone: true}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/send", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		SendCustomMessage(gomock.Any(), id, "standup in 5", true).
		Return(true)

	handler.Send(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
