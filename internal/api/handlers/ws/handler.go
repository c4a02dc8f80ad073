package ws

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"webhook-timer/internal/broadcast"
	"webhook-timer/internal/model"
)

const snapshotActivityLimit = 50

type timerService interface {
	ListActive(context.Context) ([]model.Timer, error)
	ListRecentActivities(context.Context, int) ([]model.Activity, error)
}

// Handler upgrades HTTP requests to WebSocket observers of the timer
// lifecycle. Observers receive every broadcast from the moment they connect
// and may request snapshots of active timers or recent activities.
type Handler struct {
	hub      *broadcast.Hub
	service  timerService
	upgrader websocket.Upgrader
}

// NewHandler creates a new Handler instance.
func NewHandler(hub *broadcast.Hub, s timerService) *Handler {
	return &Handler{
		hub:     hub,
		service: s,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// request is a client-to-server snapshot request.
type request struct {
	Type string `json:"type"`
}

// Serve handles a WebSocket connection for its whole lifetime. The read loop
// doubles as liveness detection: when it returns, the observer is
// deregistered so the hub never accumulates dead connections.
func (h *Handler) Serve(c *ginext.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to upgrade connection")
		return
	}

	h.hub.Subscribe(conn)
	defer func() {
		h.hub.Unsubscribe(conn)
		_ = conn.Close()
	}()

	for {
		var req request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zlog.Logger.Warn().Err(err).Msg("observer connection closed unexpectedly")
			}
			return
		}

		switch req.Type {
		case "get_active_timers":
			h.sendActiveTimers(c.Request.Context(), conn)
		case "get_activities":
			h.sendActivities(c.Request.Context(), conn)
		default:
			zlog.Logger.Warn().Str("type", req.Type).Msg("unknown observer request")
		}
	}
}

func (h *Handler) sendActiveTimers(ctx context.Context, conn *websocket.Conn) {
	timers, err := h.service.ListActive(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list active timers for snapshot")
		return
	}

	if err := h.hub.Send(conn, broadcast.Event{Type: broadcast.EventActiveTimers, Timers: timers}); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to send timer snapshot")
	}
}

func (h *Handler) sendActivities(ctx context.Context, conn *websocket.Conn) {
	activities, err := h.service.ListRecentActivities(ctx, snapshotActivityLimit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list activities for snapshot")
		return
	}

	if err := h.hub.Send(conn, broadcast.Event{Type: broadcast.EventActivities, Activities: activities}); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to send activity snapshot")
	}
}
