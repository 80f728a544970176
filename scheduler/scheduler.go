// scheduler/scheduler.go
package scheduler

import (
	"log"
	"os"

	"carehaven/connection"
	"carehaven/controller/notification"
	"carehaven/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartScheduler runs the daily reminder digest at 08:00 server time.
func StartScheduler() {
	c := cron.New(cron.WithSeconds())

	zapLogger, err := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), "carehaven-scheduler")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	DB, err := connection.DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	_, err = c.AddFunc("0 0 8 * * *", func() {
		zapLogger.Info("running scheduled reminder digest job")
		if err := notification.SendDigestJob(DB, zapLogger); err != nil {
			zapLogger.Error("reminder digest job failed", zap.Error(err))
		}
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	zapLogger.Info("scheduler started")

	// Block forever
	select {}
}
