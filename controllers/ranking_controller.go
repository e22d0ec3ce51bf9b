package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tsoggam/blitz/models"
	"github.com/Tsoggam/blitz/utils"
)

const rankingLimit = 10

// RankingController serves the leaderboard projection over player balances.
type RankingController struct {
	db *gorm.DB
}

// NewRankingController creates a new RankingController instance.
func NewRankingController(db *gorm.DB) *RankingController {
	return &RankingController{db: db}
}

// GetRanking returns the top players by balance. It reads stored balances
// as-is: being listed never triggers a replenishment, so stale balances show
// up stale. Ties are broken by username ascending to keep the order stable.
func (r *RankingController) GetRanking(ctx *gin.Context) {
	var players []models.Player
	if err := r.db.Order("chips DESC, username ASC").Limit(rankingLimit).Find(&players).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load ranking")
		return
	}

	ranking := make([]gin.H, 0, len(players))
	for _, p := range players {
		ranking = append(ranking, gin.H{"name": p.Username, "chips": p.Chips})
	}

	ctx.JSON(http.StatusOK, ranking)
}
