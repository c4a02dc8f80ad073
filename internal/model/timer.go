package model

import (
	"time"

	"github.com/google/uuid"
)

// Timer statuses. A timer starts active and ends in exactly one of the
// terminal states; there is no transition out of a terminal state.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Timer priorities.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Timer represents a one-shot countdown that notifies a webhook on expiry.
type Timer struct {
	ID              uuid.UUID  `json:"id"`               // unique identifier, assigned at creation
	Description     string     `json:"description"`      // human-readable description
	DurationSeconds int        `json:"duration_seconds"` // requested duration in seconds
	WebhookURL      string     `json:"webhook_url"`      // target webhook address
	MentionEveryone bool       `json:"mention_everyone"` // prefix the notification with @everyone
	MaxPings        int        `json:"max_pings"`        // maximum notification count
	CurrentPings    int        `json:"current_pings"`    // notifications sent so far
	CustomMessage   string     `json:"custom_message,omitempty"`
	RepeatInterval  int        `json:"repeat_interval,omitempty"` // seconds; stored, never re-armed
	Priority        string     `json:"priority"`                  // low, normal or high
	Status          string     `json:"status"`                    // active, completed or cancelled
	IsAlarm         bool       `json:"is_alarm"`                  // created from an alarm time rather than a duration
	AlarmTime       *time.Time `json:"alarm_time,omitempty"`
	Timezone        string     `json:"timezone,omitempty"` // originating timezone, display only
	CreatedAt       time.Time  `json:"created_at"`
	ExpiresAt       time.Time  `json:"expires_at"` // created_at + duration, fixed at creation

	// RemainingSeconds is computed on read paths, never stored.
	RemainingSeconds int64 `json:"remaining_seconds"`
}

// Remaining returns the time left until expiry at the given instant,
// clamped at zero.
func (t Timer) Remaining(now time.Time) time.Duration {
	d := t.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
