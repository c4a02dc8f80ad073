package timer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"webhook-timer/internal/api/respond"
	"webhook-timer/internal/model"
	timerrepo "webhook-timer/internal/repository/timer"
)

const defaultActivityLimit = 50

// timerService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/timer/mock.go -package=mocks
type timerService interface {
	CreateTimer(context.Context, model.Timer) (model.Timer, error)
	CreateBatch(context.Context, []model.Timer) ([]model.Timer, error)
	CancelTimer(context.Context, uuid.UUID) error
	DeleteTimer(context.Context, uuid.UUID) error
	ListActive(context.Context) ([]model.Timer, error)
	GetTimerStatusByID(context.Context, uuid.UUID) (string, error)
	ListRecentActivities(context.Context, int) ([]model.Activity, error)
	ListActivitiesByTimer(context.Context, uuid.UUID) ([]model.Activity, error)
}

// Handler handles HTTP requests related to timers.
type Handler struct {
	service   timerService
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s timerService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// CreateRequest represents the JSON body expected when creating a timer.
type CreateRequest struct {
	Description     string     `json:"description" validate:"required"`
	DurationSeconds int        `json:"duration_seconds" validate:"required,min=1"`
	WebhookURL      string     `json:"webhook_url" validate:"required,url"`
	MentionEveryone *bool      `json:"mention_everyone"`
	MaxPings        int        `json:"max_pings" validate:"omitempty,min=1"`
	CustomMessage   string     `json:"custom_message"`
	RepeatInterval  int        `json:"repeat_interval" validate:"omitempty,min=1"`
	Priority        string     `json:"priority" validate:"omitempty,oneof=low normal high"`
	IsAlarmTimer    bool       `json:"is_alarm_timer"`
	AlarmTime       *time.Time `json:"alarm_time"`
	UserTimezone    string     `json:"user_timezone"`
}

// BatchCreateRequest represents the JSON body for batch creation.
type BatchCreateRequest struct {
	Timers []CreateRequest `json:"timers" validate:"required,min=1,dive"`
}

func (r CreateRequest) toModel() model.Timer {
	mention := true
	if r.MentionEveryone != nil {
		mention = *r.MentionEveryone
	}

	maxPings := r.MaxPings
	if maxPings == 0 {
		maxPings = 1
	}

	priority := r.Priority
	if priority == "" {
		priority = model.PriorityNormal
	}

	timezone := r.UserTimezone
	if timezone == "" {
		timezone = "UTC"
	}

	return model.Timer{
		Description:     r.Description,
		DurationSeconds: r.DurationSeconds,
		WebhookURL:      r.WebhookURL,
		MentionEveryone: mention,
		MaxPings:        maxPings,
		CustomMessage:   r.CustomMessage,
		RepeatInterval:  r.RepeatInterval,
		Priority:        priority,
		IsAlarm:         r.IsAlarmTimer,
		AlarmTime:       r.AlarmTime,
		Timezone:        timezone,
	}
}

// Create handles HTTP POST requests to create a new timer.
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

	t, err := h.service.CreateTimer(c.Request.Context(), req.toModel())
	if err != nil {
		zlog.Logger.Error().Err(err).Str("description", req.Description).Msg("failed to create timer")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, t)
}

// CreateBatch handles HTTP POST requests to create several timers at once.
func (h *Handler) CreateBatch(c *ginext.Context) {
	var req BatchCreateRequest

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

	timers := make([]model.Timer, 0, len(req.Timers))
	for _, r := range req.Timers {
		timers = append(timers, r.toModel())
	}

	created, err := h.service.CreateBatch(c.Request.Context(), timers)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to create timer batch")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, created)
}

// GetAll handles HTTP GET requests to list active timers with their
// remaining time.
func (h *Handler) GetAll(c *ginext.Context) {
	timers, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list active timers")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, timers)
}

// GetStatus handles HTTP GET requests to retrieve the status of a timer.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	status, err := h.service.GetTimerStatusByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, timerrepo.ErrTimerNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("timer not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get timer status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// Cancel handles HTTP POST requests to cancel a timer. Cancelling an unknown
// or already-terminal timer succeeds without effect.
func (h *Handler) Cancel(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.CancelTimer(c.Request.Context(), id); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cancel timer")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "timer cancelled")
}

// Delete handles HTTP DELETE requests for explicit timer cleanup.
func (h *Handler) Delete(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTimer(c.Request.Context(), id); err != nil {
		if errors.Is(err, timerrepo.ErrTimerNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("timer not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete timer")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "timer deleted")
}

// GetActivities handles HTTP GET requests for the recent activity feed.
func (h *Handler) GetActivities(c *ginext.Context) {
	activities, err := h.service.ListRecentActivities(c.Request.Context(), defaultActivityLimit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list activities")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, activities)
}

// GetTimerActivities handles HTTP GET requests for the activity history of a
// single timer.
func (h *Handler) GetTimerActivities(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	activities, err := h.service.ListActivitiesByTimer(c.Request.Context(), id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to list timer activities")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, activities)
}

func (h *Handler) parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, false
	}

	return id, true
}
