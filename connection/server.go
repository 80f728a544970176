package connection

import (
	"log"
	"os"

	"carehaven/controller/auth"
	"carehaven/controller/facility"
	"carehaven/controller/notification"
	"carehaven/controller/reminder"
	"carehaven/controller/upload"
	"carehaven/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	zapLogger, err := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), "carehaven")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	DB, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.AuthController(router, DB)

	facility.FacilityController(router, DB)
	upload.UploadController(router, DB)

	reminder.ReminderController(router, DB)
	notification.DigestController(router, DB, zapLogger)

	zapLogger.Info("server starting")
	router.Run()
}
