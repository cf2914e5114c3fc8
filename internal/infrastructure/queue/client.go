package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"bookhub-backend/internal/shared"
	"bookhub-backend/pkg/logger"
)

// Producer enqueues background tasks.
// A nil Producer is valid and turns every enqueue into a no-op, so the
// API keeps serving when Redis is down.
type Producer struct {
	client *asynq.Client
}

func NewProducer(redisAddr string) *Producer {
	return &Producer{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
	}
}

func (p *Producer) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}

func (p *Producer) enqueue(taskType string, payload interface{}, queue string, opts ...asynq.Option) error {
	if p == nil || p.client == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	task := asynq.NewTask(taskType, data)
	opts = append(opts, asynq.Queue(queue), asynq.MaxRetry(3), asynq.Timeout(time.Minute))

	if _, err := p.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	logger.Debug().Str("task_type", taskType).Str("queue", queue).Msg("Task enqueued")
	return nil
}

// EnqueueNotification fans a notification out to the worker.
// Notification delivery is best-effort; callers log and continue on error.
func (p *Producer) EnqueueNotification(taskType string, payload shared.NotificationPayload) error {
	return p.enqueue(taskType, payload, shared.QueueDefault)
}

// EnqueueAvatarProcessing schedules thumbnail generation for an upload
func (p *Producer) EnqueueAvatarProcessing(payload shared.ProcessAvatarPayload) error {
	return p.enqueue(shared.TypeProcessAvatar, payload, shared.QueueLow)
}
