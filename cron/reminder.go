package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"glowbook/config"
	"glowbook/models"
	"glowbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBookingReminder = "booking:reminder"

// Notifier delivers a reminder to the customer. Push and email transports
// live outside this service.
type Notifier interface {
	Notify(p models.ReminderPayload) error
}

// LogNotifier is the default Notifier: it only records the reminder.
type LogNotifier struct{}

func (LogNotifier) Notify(p models.ReminderPayload) error {
	utils.GetLogger().Info("booking reminder due",
		zap.String("bookingID", p.BookingID),
		zap.String("customerID", p.CustomerID),
		zap.String("startsAt", p.StartsAt))
	return nil
}

// ReminderScheduler enqueues reminder tasks on the asynq queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler constructs a scheduler backed by the configured
// Redis queue.
func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &ReminderScheduler{client: client}
}

// Schedule enqueues a reminder to fire before the booking starts. Bookings
// starting inside the lead window get no reminder.
func (s *ReminderScheduler) Schedule(b *models.Booking) error {
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	if lead <= 0 {
		lead = time.Hour
	}
	fireAt := b.Datetime.Add(-lead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID:   b.ID,
		VendorID:    b.VendorID,
		CustomerID:  b.CustomerID,
		ServiceName: b.ServiceName,
		StartsAt:    b.Datetime.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", b.ID, err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifier Notifier) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, handleReminderTask(notifier))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifier Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
			return err
		}
		return notifier.Notify(p)
	}
}
