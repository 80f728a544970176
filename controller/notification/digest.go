package notification

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"carehaven/middleware"
	"carehaven/model"
	"carehaven/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func DigestController(router *gin.Engine, db *gorm.DB, log *zap.Logger) {
	router.GET("/digest/send", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		SendDigest(c, db, log)
	})
}

func SendDigest(c *gin.Context, db *gorm.DB, log *zap.Logger) {
	if err := SendDigestJob(db, log); err != nil {
		if errors.Is(err, services.ErrDigestDispatch) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reminder email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reminder email sent successfully!"})
}

// SendDigestJob fetches reminders due 5 to 15 days out, builds the digest and
// dispatches one summary email. It never writes back to the store. Called by
// the cron scheduler and the on-demand endpoint.
func SendDigestJob(db *gorm.DB, log *zap.Logger) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, 5)
	end := today.AddDate(0, 0, 15)

	reminders, err := services.RemindersDueBetween(db, start, end)
	if err != nil {
		log.Error("failed to fetch due reminders", zap.Error(err))
		return err
	}

	digest := services.BuildDigest(today, reminders)
	log.Info("built reminder digest",
		zap.Int("upcoming", len(digest.Upcoming)),
		zap.Int("future", len(digest.Future)))

	config, err := LoadEmailConfig()
	if err != nil {
		return err
	}
	recipient := os.Getenv("DIGEST_TO")
	if recipient == "" {
		return fmt.Errorf("missing DIGEST_TO environment variable")
	}

	body := renderDigestEmail(digest)
	if err := sendEmail(config, recipient, "Compliance reminders due soon", body); err != nil {
		log.Error("failed to dispatch reminder digest", zap.Error(err))
		return fmt.Errorf("%w: %v", services.ErrDigestDispatch, err)
	}

	log.Info("reminder digest sent", zap.String("to", recipient))
	return nil
}

// LoadEmailConfig reads the SMTP settings from the environment, loading .env
// first when running locally.
func LoadEmailConfig() (*model.EmailConfig, error) {
	if os.Getenv("APP_ENV") == "" {
		if err := godotenv.Load(); err != nil {
			fmt.Println("Warning: .env file not loaded, fallback to OS env vars")
		}
	}

	config := &model.EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}

	if config.Host == "" || config.Port == "" || config.Username == "" || config.Password == "" {
		return nil, fmt.Errorf("missing required SMTP environment variables")
	}
	return config, nil
}
