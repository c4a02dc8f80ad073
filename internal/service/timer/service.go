package timer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"webhook-timer/internal/broadcast"
	"webhook-timer/internal/model"
	activityrepo "webhook-timer/internal/repository/activity"
	"webhook-timer/internal/scheduler"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/timer/mock.go -package=mocks

type timerRepository interface {
	CreateTimer(context.Context, model.Timer) (uuid.UUID, error)
	GetTimerByID(context.Context, uuid.UUID) (model.Timer, error)
	ListTimersByStatus(context.Context, string) ([]model.Timer, error)
	GetTimerStatusByID(context.Context, uuid.UUID) (string, error)
	CompleteIfActive(context.Context, uuid.UUID, string) (bool, error)
	DeleteTimer(context.Context, uuid.UUID) error
}

type activityRepository interface {
	CreateActivity(context.Context, model.Activity) (uuid.UUID, error)
	ListRecentActivities(context.Context, int) ([]model.Activity, error)
	ListActivitiesByTimer(context.Context, uuid.UUID) ([]model.Activity, error)
}

type webhookRepository interface {
	CreateWebhook(context.Context, model.Webhook) (uuid.UUID, error)
	GetWebhookByID(context.Context, uuid.UUID) (model.Webhook, error)
	ListWebhooks(context.Context) ([]model.Webhook, error)
	DeleteWebhook(context.Context, uuid.UUID) error
}

type dispatcher interface {
	NotifyCompletion(ctx context.Context, t model.Timer)
	Test(ctx context.Context, url string) bool
	SendMessage(ctx context.Context, url, text string, mentionEveryone bool) bool
}

type broadcaster interface {
	Publish(e broadcast.Event)
}

type timerScheduler interface {
	Arm(id uuid.UUID, at time.Time, fire scheduler.FireFunc)
	Disarm(id uuid.UUID)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service coordinates the timer lifecycle: it persists timers, arms the
// scheduler, and on fire or cancel transitions state, records activities,
// notifies the webhook and broadcasts the change to observers.
type Service struct {
	timers     timerRepository
	activities activityRepository
	webhooks   webhookRepository
	dispatch   dispatcher
	hub        broadcaster
	sched      timerScheduler
	cache      cache
	clk        clock.Clock
	strategy   retry.Strategy
}

// NewService creates a new Service.
func NewService(
	timers timerRepository,
	activities activityRepository,
	webhooks webhookRepository,
	dispatch dispatcher,
	hub broadcaster,
	sched timerScheduler,
	cache cache,
	clk clock.Clock,
	strategy retry.Strategy,
) *Service {
	return &Service{
		timers:     timers,
		activities: activities,
		webhooks:   webhooks,
		dispatch:   dispatch,
		hub:        hub,
		sched:      sched,
		cache:      cache,
		clk:        clk,
		strategy:   strategy,
	}
}

// CreateTimer persists a new active timer, arms the scheduler for its expiry
// and announces it to observers. The expiry instant is fixed here and never
// recomputed.
func (s *Service) CreateTimer(ctx context.Context, t model.Timer) (model.Timer, error) {
	now := s.clk.Now().UTC()

	t.Status = model.StatusActive
	t.CurrentPings = 0
	t.CreatedAt = now
	t.ExpiresAt = now.Add(time.Duration(t.DurationSeconds) * time.Second)

	id, err := s.timers.CreateTimer(ctx, t)
	if err != nil {
		return model.Timer{}, fmt.Errorf("create timer: %w", err)
	}
	t.ID = id

	if err := s.cache.SetWithRetry(ctx, s.strategy, id.String(), t.Status); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache timer status")
	}

	s.appendActivity(ctx, &id, model.ActivityCreated, "Timer created: "+t.Description)

	s.sched.Arm(id, t.ExpiresAt, s.fire)

	s.hub.Publish(broadcast.Event{Type: broadcast.EventTimerCreated, Timer: &t})

	return t, nil
}

// CreateBatch creates several timers in one call and records a single
// batch-level activity alongside the per-timer ones.
func (s *Service) CreateBatch(ctx context.Context, timers []model.Timer) ([]model.Timer, error) {
	created := make([]model.Timer, 0, len(timers))

	for _, t := range timers {
		ct, err := s.CreateTimer(ctx, t)
		if err != nil {
			return created, fmt.Errorf("create batch: %w", err)
		}

		created = append(created, ct)
	}

	s.appendActivity(ctx, nil, model.ActivityBatchCreated, fmt.Sprintf("Batch created %d timers", len(created)))

	return created, nil
}

// fire is the scheduler callback: it completes the timer and runs the
// notification path. An absent or already-terminal timer is a benign no-op,
// which makes fire safe to race against Cancel.
func (s *Service) fire(id uuid.UUID) {
	ctx := context.Background()

	// Cheap cancellation check before touching the database.
	if status, err := s.cache.GetWithRetry(ctx, s.strategy, id.String()); err == nil && status != model.StatusActive {
		zlog.Logger.Info().Str("id", id.String()).Str("status", status).Msg("timer no longer active, skipping fire")
		return
	}

	ok, err := s.timers.CompleteIfActive(ctx, id, model.StatusCompleted)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to complete timer")
		return
	}
	if !ok {
		// Cancelled or deleted while the fire was pending.
		return
	}

	t, err := s.timers.GetTimerByID(ctx, id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to load completed timer")
		return
	}

	if err := s.cache.SetWithRetry(ctx, s.strategy, id.String(), model.StatusCompleted); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache timer status")
	}

	s.appendActivity(ctx, &id, model.ActivityCompleted, "Timer completed: "+t.Description)

	s.sched.Disarm(id)

	s.hub.Publish(broadcast.Event{Type: broadcast.EventTimerCompleted, TimerID: id.String(), Timer: &t})

	// Delivery runs last: its outcome must never delay or reverse the
	// transition above.
	s.dispatch.NotifyCompletion(ctx, t)
}

// CancelTimer flips an active timer to cancelled, disarms its pending fire
// and announces the change. Unknown or already-terminal timers are a no-op.
// The dispatcher is never involved.
func (s *Service) CancelTimer(ctx context.Context, id uuid.UUID) error {
	ok, err := s.timers.CompleteIfActive(ctx, id, model.StatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel timer: %w", err)
	}
	if !ok {
		zlog.Logger.Info().Str("id", id.String()).Msg("cancel is a no-op: timer absent or already terminal")
		return nil
	}

	s.sched.Disarm(id)

	if err := s.cache.SetWithRetry(ctx, s.strategy, id.String(), model.StatusCancelled); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache timer status")
	}

	s.appendActivity(ctx, &id, model.ActivityCancelled, "Timer cancelled")

	s.hub.Publish(broadcast.Event{Type: broadcast.EventTimerCancelled, TimerID: id.String()})

	return nil
}

// Resume re-arms every active timer at process start using its stored expiry.
// Timers whose expiry has already passed fire immediately through the normal
// completion path.
func (s *Service) Resume(ctx context.Context) error {
	timers, err := s.timers.ListTimersByStatus(ctx, model.StatusActive)
	if err != nil {
		return fmt.Errorf("resume timers: %w", err)
	}

	for _, t := range timers {
		s.sched.Arm(t.ID, t.ExpiresAt, s.fire)
	}

	zlog.Logger.Info().Int("count", len(timers)).Msg("re-armed active timers")

	return nil
}

// ListActive returns all active timers annotated with their remaining time.
func (s *Service) ListActive(ctx context.Context) ([]model.Timer, error) {
	timers, err := s.timers.ListTimersByStatus(ctx, model.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active timers: %w", err)
	}

	now := s.clk.Now()
	for i := range timers {
		timers[i].RemainingSeconds = int64(timers[i].Remaining(now) / time.Second)
	}

	return timers, nil
}

// GetTimerStatusByID returns a timer's status, preferring the cache and
// falling back to the store.
func (s *Service) GetTimerStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, s.strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get timer status from cache")
	}

	if err != nil {
		status, err = s.timers.GetTimerStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get timer status: %w", err)
		}

		if err := s.cache.SetWithRetry(ctx, s.strategy, id.String(), status); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache timer status")
		}
	}

	return status, nil
}

// DeleteTimer removes a timer on explicit user request. Any pending fire is
// disarmed first; the lifecycle engine itself never deletes.
func (s *Service) DeleteTimer(ctx context.Context, id uuid.UUID) error {
	s.sched.Disarm(id)

	if err := s.timers.DeleteTimer(ctx, id); err != nil {
		return fmt.Errorf("delete timer: %w", err)
	}

	return nil
}

// ListRecentActivities returns the most recent activities, newest first. A
// fresh system with no activity yet yields an empty list, not an error.
func (s *Service) ListRecentActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	activities, err := s.activities.ListRecentActivities(ctx, limit)
	if err != nil {
		if errors.Is(err, activityrepo.ErrNoActivitiesFound) {
			return []model.Activity{}, nil
		}

		return nil, fmt.Errorf("list activities: %w", err)
	}

	return activities, nil
}

// ListActivitiesByTimer returns all activities referencing a timer, newest
// first.
func (s *Service) ListActivitiesByTimer(ctx context.Context, id uuid.UUID) ([]model.Activity, error) {
	activities, err := s.activities.ListActivitiesByTimer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list timer activities: %w", err)
	}

	return activities, nil
}

// TestWebhook sends a minimal test payload to the URL and reports success.
func (s *Service) TestWebhook(ctx context.Context, url string) bool {
	return s.dispatch.Test(ctx, url)
}

// SendCustomMessage resolves a stored webhook configuration and sends an
// ad-hoc message through it. All failures, including an unknown webhook ID,
// collapse into false.
func (s *Service) SendCustomMessage(ctx context.Context, webhookID uuid.UUID, text string, mentionEveryone bool) bool {
	w, err := s.webhooks.GetWebhookByID(ctx, webhookID)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", webhookID.String()).Msg("failed to resolve webhook")
		return false
	}

	return s.dispatch.SendMessage(ctx, w.URL, text, mentionEveryone)
}

// CreateWebhook stores a new webhook configuration.
func (s *Service) CreateWebhook(ctx context.Context, w model.Webhook) (uuid.UUID, error) {
	w.CreatedAt = s.clk.Now().UTC()

	id, err := s.webhooks.CreateWebhook(ctx, w)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create webhook: %w", err)
	}

	return id, nil
}

// ListWebhooks returns all stored webhook configurations.
func (s *Service) ListWebhooks(ctx context.Context) ([]model.Webhook, error) {
	webhooks, err := s.webhooks.ListWebhooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list webhooks: %w", err)
	}

	return webhooks, nil
}

// DeleteWebhook removes a stored webhook configuration.
func (s *Service) DeleteWebhook(ctx context.Context, id uuid.UUID) error {
	if err := s.webhooks.DeleteWebhook(ctx, id); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}

	return nil
}

func (s *Service) appendActivity(ctx context.Context, timerID *uuid.UUID, kind, message string) {
	a := model.Activity{
		TimerID:   timerID,
		Kind:      kind,
		Message:   message,
		CreatedAt: s.clk.Now().UTC(),
	}

	if _, err := s.activities.CreateActivity(ctx, a); err != nil {
		zlog.Logger.Error().Err(err).Str("kind", kind).Msg("failed to record activity")
	}
}
