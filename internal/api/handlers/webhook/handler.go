package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"webhook-timer/internal/api/respond"
	"webhook-timer/internal/model"
	webhookrepo "webhook-timer/internal/repository/webhook"
)

// webhookService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/webhook/mock.go -package=mocks
type webhookService interface {
	CreateWebhook(context.Context, model.Webhook) (uuid.UUID, error)
	ListWebhooks(context.Context) ([]model.Webhook, error)
	DeleteWebhook(context.Context, uuid.UUID) error
	TestWebhook(ctx context.Context, url string) bool
	SendCustomMessage(ctx context.Context, webhookID uuid.UUID, text string, mentionEveryone bool) bool
}

// Handler handles HTTP requests related to webhook configurations and
// ad-hoc messages.
type Handler struct {
	service   webhookService
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s webhookService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// CreateRequest represents the JSON body expected when storing a webhook.
type CreateRequest struct {
	Name            string `json:"name" validate:"required"`
	URL             string `json:"url" validate:"required,url"`
	MentionEveryone bool   `json:"mention_everyone"`
}

// TestRequest represents the JSON body for a connectivity test.
type TestRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// SendRequest represents the JSON body for an ad-hoc message.
type SendRequest struct {
	WebhookID       uuid.UUID `json:"webhook_id" validate:"required"`
	Text            string    `json:"text" validate:"required"`
	MentionEveryone bool      `json:"mention_everyone"`
}

// Create handles HTTP POST requests to store a webhook configuration.
func (h *Handler) Create(c *ginext.Context) {
	var req CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	id, err := h.service.CreateWebhook(c.Request.Context(), model.Webhook{
		Name:            req.Name,
		URL:             req.URL,
		MentionEveryone: req.MentionEveryone,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("name", req.Name).Msg("failed to create webhook")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// GetAll handles HTTP GET requests to list stored webhook configurations.
func (h *Handler) GetAll(c *ginext.Context) {
	webhooks, err := h.service.ListWebhooks(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list webhooks")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, webhooks)
}

// Delete handles HTTP DELETE requests for a stored webhook configuration.
func (h *Handler) Delete(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.service.DeleteWebhook(c.Request.Context(), id); err != nil {
		if errors.Is(err, webhookrepo.ErrWebhookNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("webhook not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete webhook")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "webhook deleted")
}

// Test handles HTTP POST requests to check webhook connectivity. The result
// is always a 200 with a boolean payload; delivery problems are not errors.
func (h *Handler) Test(c *ginext.Context) {
	var req TestRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	ok := h.service.TestWebhook(c.Request.Context(), req.URL)

	respond.OK(c.Writer, map[string]bool{"success": ok})
}

// Send handles HTTP POST requests to push an ad-hoc message through a stored
// webhook configuration.
func (h *Handler) Send(c *ginext.Context) {
	var req SendRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	ok := h.service.SendCustomMessage(c.Request.Context(), req.WebhookID, req.Text, req.MentionEveryone)

	respond.OK(c.Writer, map[string]bool{"success": ok})
}
