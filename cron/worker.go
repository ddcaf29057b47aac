package cron

import (
	"context"
	"log"
	"time"

	"courtside/config"
	"courtside/services/fixedbooking"

	"github.com/hibiken/asynq"
)

// TypeFixedBookingPromote names the daily task that turns today's recurring
// occurrences into persisted confirmed bookings.
const TypeFixedBookingPromote = "fixedbooking:promote"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

// InitPromotionWorker runs the async worker and its daily schedule in the
// background.
func InitPromotionWorker(fixedSvc fixedbooking.FixedBookingService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeFixedBookingPromote, handlePromoteTask(fixedSvc))

	go func() {
		log.Println("[PromotionWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PromotionWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PromotionWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler()
}

// runScheduler enqueues the promotion task shortly after midnight so each
// day's fixed occurrences exist before students start browsing.
func runScheduler() {
	scheduler := asynq.NewScheduler(redisOpts(), &asynq.SchedulerOpts{
		Location: time.Local,
	})

	task := asynq.NewTask(TypeFixedBookingPromote, nil)
	if _, err := scheduler.Register("5 0 * * *", task); err != nil {
		log.Fatalf("[PromotionWorker] failed to register schedule: %v", err)
	}

	if err := scheduler.Run(); err != nil {
		log.Fatalf("[PromotionWorker] scheduler stopped: %v", err)
	}
}

func handlePromoteTask(fixedSvc fixedbooking.FixedBookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		created, err := fixedSvc.PromoteDue(ctx)
		if err != nil {
			log.Printf("[PromotionWorker] promotion failed: %v", err)
			return err
		}
		log.Printf("[PromotionWorker] promoted %d fixed bookings", created)
		return nil
	}
}
