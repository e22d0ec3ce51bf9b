package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tsoggam/blitz/models"
	"github.com/Tsoggam/blitz/utils"
)

// MaintenanceController exposes liveness endpoints and the on-demand purge
// of inactive players.
type MaintenanceController struct {
	db *gorm.DB
}

// NewMaintenanceController creates a new MaintenanceController instance.
func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{db: db}
}

// Cleanup removes players whose last claim is older than the retention
// window. The background purger runs the same deletion on a daily schedule.
func (m *MaintenanceController) Cleanup(ctx *gin.Context) {
	deleted, err := utils.PurgeInactivePlayers(m.db, models.RetentionWindow)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to purge inactive players")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}

// Health reports liveness only.
func (m *MaintenanceController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "online", "timestamp": time.Now()})
}

// Index identifies the service.
func (m *MaintenanceController) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Blitz API Server", "status": "running"})
}
