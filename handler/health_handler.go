package handler

import (
	"log"

	"main/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Status(c *gin.Context) {
	dbStatus := "up"

	sqlDB, err := h.db.DB()
	if err != nil {
		dbStatus = "down"
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		log.Printf("Health check database ping failed: %v", err)
		dbStatus = "down"
	}

	utils.Success(c, gin.H{
		"database":     dbStatus,
		"cpu_usage":    utils.GetCPUUsage(),
		"memory_usage": utils.GetMemoryUsage(),
	})
}
