// Package dispatch translates completed timers and ad-hoc messages into
// outbound webhook notifications and records the delivery outcome as
// activities. Delivery errors are swallowed here: they surface through the
// activity feed and boolean results, never as errors to the lifecycle path.
package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"webhook-timer/internal/model"
	"webhook-timer/pkg/discord"
)

const (
	completionTitle = "⏰ Timer Complete!"
	embedColor      = 0x5865F2

	timestampLayout = "2006-01-02 15:04:05 MST"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatch/mock.go -package=mocks

type webhookClient interface {
	Send(ctx context.Context, url string, p discord.Payload) error
}

type activityRepository interface {
	CreateActivity(context.Context, model.Activity) (uuid.UUID, error)
}

// Dispatcher builds and sends outbound webhook payloads.
type Dispatcher struct {
	client     webhookClient
	activities activityRepository
}

// New creates a new Dispatcher.
func New(client webhookClient, activities activityRepository) *Dispatcher {
	return &Dispatcher{client: client, activities: activities}
}

// NotifyCompletion sends the completion notification for a timer and records
// a webhook_sent or webhook_failed activity. It never returns an error: the
// timer's state transition must not depend on delivery.
func (d *Dispatcher) NotifyCompletion(ctx context.Context, t model.Timer) {
	now := time.Now().UTC()

	content := ""
	if t.MentionEveryone {
		content = "@everyone"
	}
	if t.CustomMessage != "" {
		if content != "" {
			content += " "
		}
		content += t.CustomMessage
	}

	payload := discord.Payload{
		Content: content,
		Embeds: []discord.Embed{{
			Title:       completionTitle,
			Description: t.Description,
			Color:       embedColor,
			Fields: []discord.EmbedField{
				{Name: "Duration", Value: discord.FormatDuration(t.DurationSeconds), Inline: true},
				{Name: "Started", Value: t.CreatedAt.UTC().Format(timestampLayout), Inline: true},
				{Name: "Completed", Value: now.Format(timestampLayout), Inline: true},
			},
			Timestamp: now.Format(time.RFC3339),
		}},
	}

	id := t.ID
	if err := d.client.Send(ctx, t.WebhookURL, payload); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("webhook delivery failed")
		d.record(ctx, model.Activity{
			TimerID:   &id,
			Kind:      model.ActivityWebhookFailed,
			Message:   "Webhook delivery failed: " + err.Error(),
			CreatedAt: now,
		})
		return
	}

	d.record(ctx, model.Activity{
		TimerID:   &id,
		Kind:      model.ActivityWebhookSent,
		Message:   "Webhook notification sent for timer: " + t.Description,
		CreatedAt: now,
	})
}

// Test sends a minimal payload to the given URL and reports whether the
// endpoint accepted it. All errors collapse into false.
func (d *Dispatcher) Test(ctx context.Context, url string) bool {
	payload := discord.Payload{
		Content: "✅ Webhook test successful!",
	}

	if err := d.client.Send(ctx, url, payload); err != nil {
		zlog.Logger.Warn().Err(err).Msg("webhook test failed")
		return false
	}

	return true
}

// SendMessage sends an ad-hoc text message, optionally prefixed with an
// @everyone mention, and reports success. All errors collapse into false.
func (d *Dispatcher) SendMessage(ctx context.Context, url, text string, mentionEveryone bool) bool {
	content := text
	if mentionEveryone {
		content = "@everyone " + text
	}

	if err := d.client.Send(ctx, url, discord.Payload{Content: content}); err != nil {
		zlog.Logger.Warn().Err(err).Msg("custom message delivery failed")
		return false
	}

	return true
}

func (d *Dispatcher) record(ctx context.Context, a model.Activity) {
	if _, err := d.activities.CreateActivity(ctx, a); err != nil {
		zlog.Logger.Error().Err(err).Str("kind", a.Kind).Msg("failed to record activity")
	}
}
