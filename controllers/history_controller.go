package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tsoggam/blitz/models"
	"github.com/Tsoggam/blitz/utils"
)

const historyLimit = 10

// HistoryController records game outcomes and serves the recent-games view.
type HistoryController struct {
	db *gorm.DB
}

// NewHistoryController creates a new HistoryController instance.
func NewHistoryController(db *gorm.DB) *HistoryController {
	return &HistoryController{db: db}
}

// GetHistory returns the ten most recent games, newest first.
func (h *HistoryController) GetHistory(ctx *gin.Context) {
	var entries []models.GameHistory
	if err := h.db.Order("id DESC").Limit(historyLimit).Find(&entries).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load history")
		return
	}

	history := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		history = append(history, gin.H{
			"result":    e.Result,
			"winners":   e.Winners,
			"timestamp": e.Timestamp,
		})
	}

	ctx.JSON(http.StatusOK, history)
}

// AddHistory appends a game outcome. Result is required; winners is a
// free-form string and may be omitted. The timestamp is assigned server-side.
func (h *HistoryController) AddHistory(ctx *gin.Context) {
	var req struct {
		Result  *string `json:"result"`
		Winners *string `json:"winners"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Result == nil {
		utils.Error(ctx, http.StatusBadRequest, "missing required field: result")
		return
	}

	entry := models.GameHistory{
		Result:    *req.Result,
		Winners:   req.Winners,
		Timestamp: time.Now(),
	}
	if err := h.db.Create(&entry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to record game")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
