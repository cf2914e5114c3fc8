package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification records social activity directed at a user.
// Rows are created by the worker from queued tasks, never by the API.
type Notification struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RecipientID uuid.UUID `json:"recipient_id" db:"recipient_id"`
	ActorID     uuid.UUID `json:"actor_id" db:"actor_id"`
	Verb        string    `json:"verb" db:"verb"` // e.g. "liked your post"
	TargetType  string    `json:"target_type" db:"target_type"`
	TargetID    uuid.UUID `json:"target_id" db:"target_id"`
	Read        bool      `json:"read" db:"read"`

	ActorUsername string `json:"actor_username,omitempty" db:"actor_username"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
