package shared

import "github.com/google/uuid"

// Asynq task type names, grouped by queue domain
const (
	TypeNotifyFollow    = "social:notify_follow"
	TypeNotifyLike      = "social:notify_like"
	TypeNotifyComment   = "social:notify_comment"
	TypeProcessAvatar   = "user:process_avatar"
	TypeCleanupSessions = "auth:cleanup_expired_sessions"
)

// Queue names with their worker priorities
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// NotificationPayload carries the data needed to create a notification.
// Lives here instead of the notification domain to avoid import cycles.
type NotificationPayload struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	ActorID     uuid.UUID `json:"actor_id"`
	Verb        string    `json:"verb"`
	TargetType  string    `json:"target_type"` // "post", "comment", "user"
	TargetID    uuid.UUID `json:"target_id"`
}

// ProcessAvatarPayload triggers thumbnail generation for an uploaded avatar
type ProcessAvatarPayload struct {
	UserID uuid.UUID `json:"user_id"`
	Key    string    `json:"key"` // object key of the original upload
}

// CleanupSessionsPayload is empty; the job scans by expiry
type CleanupSessionsPayload struct{}
