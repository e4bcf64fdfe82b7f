package handler

import (
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

func HealthHandler(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(startTime).Seconds()),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
