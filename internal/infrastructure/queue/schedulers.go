package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"bookhub-backend/internal/shared"
	"bookhub-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddr},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterCleanupJobs registers all periodic maintenance jobs
func (s *Scheduler) RegisterCleanupJobs() error {
	return s.registerCleanupExpiredSessionsJob()
}

// Expired refresh sessions are purged daily at 2 AM UTC
func (s *Scheduler) registerCleanupExpiredSessionsJob() error {
	payload, err := json.Marshal(shared.CleanupSessionsPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeCleanupSessions, payload)

	_, err = s.scheduler.Register(
		"0 2 * * *",
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)

	if err != nil {
		logger.Error().Err(err).Msg("Failed to register cleanup job")
		return err
	}

	return nil
}

func (s *Scheduler) Run() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
