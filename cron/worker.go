package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"nestcare/config"
	"nestcare/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypePaymentReminder = "payment:reminder"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

// ReminderScheduler enqueues delayed final-payment reminder tasks.
type ReminderScheduler struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewReminderScheduler(logger *zap.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(redisOpts()),
		logger: logger,
	}
}

// ScheduleFinalPaymentReminder enqueues a reminder that fires after delay.
func (s *ReminderScheduler) ScheduleFinalPaymentReminder(ctx context.Context, payload models.ReminderPayload, delay time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypePaymentReminder, data)
	info, err := s.client.EnqueueContext(ctx, task, asynq.ProcessIn(delay), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("failed to enqueue payment reminder: %w", err)
	}
	s.logger.Info("Final payment reminder scheduled",
		zap.String("booking", payload.BookingID),
		zap.String("task", info.ID),
		zap.Duration("delay", delay),
	)
	return nil
}

func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentReminder, handlePaymentReminderTask)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handlePaymentReminderTask(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderHandler] Invalid payload: %v", err)
		return err
	}

	// Delivery channels (push, email) live outside this service; the worker
	// records the due reminder for the notification pipeline to pick up.
	log.Printf("[ReminderHandler] Final payment due for booking %s (%s %.2f, caregiver %s, service date %s)",
		p.BookingID, p.Currency, p.AmountDue, p.Caregiver, p.Date)
	return nil
}
