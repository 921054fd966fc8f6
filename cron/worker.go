package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"workhive/config"
	reservationRepo "workhive/database/repository/reservation"
	"workhive/utils"
)

const TypeReservationSweep = "reservation:sweep"

// InitStatusSweeper runs the background worker that keeps reservation
// statuses in step with the wall clock: confirmed reservations whose start
// has passed become in_progress, and reservations whose end has passed
// become completed. Cancellations stay manual.
func InitStatusSweeper(repo reservationRepo.ReservationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReservationSweep, handleSweepTask(repo))

	go func() {
		log.Println("[StatusSweeper] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[StatusSweeper] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[StatusSweeper] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runSweepScheduler(redisOpts)
}

// runSweepScheduler enqueues the sweep task on a fixed interval.
func runSweepScheduler(redisOpts asynq.RedisClientOpt) {
	interval := config.AppConfig.SweepInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if _, err := scheduler.Register("@every "+interval.String(), asynq.NewTask(TypeReservationSweep, nil)); err != nil {
		log.Printf("[StatusSweeper] failed to register sweep schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[StatusSweeper] scheduler stopped: %v", err)
	}
}

func handleSweepTask(repo reservationRepo.ReservationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		logger := utils.GetLogger()
		now := time.Now().UTC()

		started, err := repo.PromoteStarted(now)
		if err != nil {
			logger.Error("status sweep: promote failed", zap.Error(err))
			return err
		}
		completed, err := repo.CompleteEnded(now)
		if err != nil {
			logger.Error("status sweep: complete failed", zap.Error(err))
			return err
		}
		if started > 0 || completed > 0 {
			logger.Info("status sweep",
				zap.Int64("promoted", started),
				zap.Int64("completed", completed))
		}
		return nil
	}
}
