package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookhub-backend/internal/domains/notification"
)

type postgresNotificationRepository struct {
	db *pgxpool.Pool
}

// NewPostgresNotificationRepository creates a new PostgreSQL
// notification repository
func NewPostgresNotificationRepository(db *pgxpool.Pool) notification.Repository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) Create(ctx context.Context, n *notification.Notification) (*notification.Notification, error) {
	query := `
		INSERT INTO notifications (recipient_id, actor_id, verb, target_type, target_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, read, created_at
	`

	created := *n
	err := r.db.QueryRow(ctx, query,
		n.RecipientID, n.ActorID, n.Verb, n.TargetType, n.TargetID,
	).Scan(&created.ID, &created.Read, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return &created, nil
}

func (r *postgresNotificationRepository) GetByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]notification.Notification, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM notifications WHERE recipient_id = $1", recipientID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := `
		SELECT n.id, n.recipient_id, n.actor_id, u.username AS actor_username,
		       n.verb, n.target_type, n.target_id, n.read, n.created_at
		FROM notifications n
		JOIN users u ON u.id = n.actor_id
		WHERE n.recipient_id = $1
		ORDER BY n.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(
			&n.ID,
			&n.RecipientID,
			&n.ActorID,
			&n.ActorUsername,
			&n.Verb,
			&n.TargetType,
			&n.TargetID,
			&n.Read,
			&n.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, total, rows.Err()
}

func (r *postgresNotificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND read = FALSE",
		recipientID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *postgresNotificationRepository) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		"UPDATE notifications SET read = TRUE WHERE id = $1 AND recipient_id = $2",
		id, recipientID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func (r *postgresNotificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	result, err := r.db.Exec(ctx,
		"UPDATE notifications SET read = TRUE WHERE recipient_id = $1 AND read = FALSE",
		recipientID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return result.RowsAffected(), nil
}
