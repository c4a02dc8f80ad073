package model

import (
	"time"

	"github.com/google/uuid"
)

// Webhook is a stored webhook configuration that timers and ad-hoc messages
// can be sent to by ID instead of a raw URL.
type Webhook struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	URL             string    `json:"url"`
	MentionEveryone bool      `json:"mention_everyone"` // default for messages sent through this webhook
	CreatedAt       time.Time `json:"created_at"`
}
