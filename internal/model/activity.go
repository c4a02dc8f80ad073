package model

import (
	"time"

	"github.com/google/uuid"
)

// Activity kinds.
const (
	ActivityCreated       = "created"
	ActivityCompleted     = "completed"
	ActivityCancelled     = "cancelled"
	ActivityWebhookSent   = "webhook_sent"
	ActivityWebhookFailed = "webhook_failed"
	ActivityBatchCreated  = "batch_created"
)

// Activity is an append-only audit record of something that happened to a
// timer, or to a batch of timers. TimerID is nil for batch-level events.
type Activity struct {
	ID        uuid.UUID  `json:"id"`
	TimerID   *uuid.UUID `json:"timer_id,omitempty"`
	Kind      string     `json:"kind"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}
