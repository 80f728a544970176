package main

import (
	"carehaven/connection"
	"carehaven/scheduler"

	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	go scheduler.StartScheduler()
	connection.StartServer()
}
