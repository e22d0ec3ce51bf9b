package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tsoggam/blitz/models"
	"github.com/Tsoggam/blitz/utils"
)

var (
	errMissingUsername = errors.New("missing required field: username")
	errMissingChips    = errors.New("missing required field: chips")
)

// PlayerController owns the chip ledger: balance reads with the daily
// allowance rule, direct balance overwrites, and batch overwrites.
type PlayerController struct {
	db *gorm.DB
}

// NewPlayerController creates a new PlayerController instance.
func NewPlayerController(db *gorm.DB) *PlayerController {
	return &PlayerController{db: db}
}

// GetPlayer returns a player's balance, creating the row on first sight and
// applying the daily allowance when due. This is a side-effecting read: both
// the lazy create and the replenishment persist before the response.
func (p *PlayerController) GetPlayer(ctx *gin.Context) {
	username := ctx.Param("username")

	var player models.Player
	err := p.db.Where("username = ?", username).First(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		player = models.Player{
			Username:  username,
			Chips:     models.DailyChips,
			LastClaim: time.Now(),
		}
		if err := p.db.Create(&player).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "failed to create player")
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"username":   username,
			"chips":      models.DailyChips,
			"hours_left": 24,
		})
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load player")
		return
	}

	elapsed := time.Since(player.LastClaim)
	chips := player.Chips
	if elapsed >= models.AllowancePeriod {
		chips = models.DailyChips
		updates := map[string]interface{}{"chips": chips, "last_claim": time.Now()}
		if err := p.db.Model(&models.Player{}).Where("username = ?", username).Updates(updates).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "failed to replenish chips")
			return
		}
	}

	// hours_left counts whole hours until the next allowance; when the claim
	// was just replenished elapsed already exceeds the period, so this clamps to 0
	hoursLeft := int((models.AllowancePeriod - elapsed).Hours())
	if hoursLeft < 0 {
		hoursLeft = 0
	}

	ctx.JSON(http.StatusOK, gin.H{
		"username":   username,
		"chips":      chips,
		"hours_left": hoursLeft,
	})
}

// UpdatePlayer overwrites a player's balance. Any integer is accepted and an
// unknown username is created on the spot. An existing player's last_claim is
// left untouched.
func (p *PlayerController) UpdatePlayer(ctx *gin.Context) {
	username := ctx.Param("username")

	var req struct {
		Chips *int64 `json:"chips"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Chips == nil {
		utils.Error(ctx, http.StatusBadRequest, "missing required field: chips")
		return
	}

	if err := setBalance(p.db, username, *req.Chips); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to update player")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "chips": *req.Chips})
}

// BatchUpdate applies balance overwrites for several players as a single
// transaction: either every entry commits or none do. Each entry carries the
// same contract as UpdatePlayer, so one missing username or chips field fails
// the whole batch and rolls back any entries already applied. Entries are
// applied in order, so for a duplicate username the last value wins. The
// reported count is the number of entries processed, not distinct usernames.
func (p *PlayerController) BatchUpdate(ctx *gin.Context) {
	var req struct {
		Players []struct {
			Username *string `json:"username"`
			Chips    *int64  `json:"chips"`
		} `json:"players"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	err := p.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Players {
			if entry.Username == nil {
				return errMissingUsername
			}
			if entry.Chips == nil {
				return errMissingChips
			}
			if err := setBalance(tx, *entry.Username, *entry.Chips); err != nil {
				return err
			}
		}
		return nil
	})
	switch {
	case errors.Is(err, errMissingUsername) || errors.Is(err, errMissingChips):
		utils.Error(ctx, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		utils.Error(ctx, http.StatusInternalServerError, "failed to apply batch update")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "updated": len(req.Players)})
}

// setBalance is the update-then-insert overwrite shared by the single and
// batch endpoints.
func setBalance(tx *gorm.DB, username string, chips int64) error {
	res := tx.Model(&models.Player{}).Where("username = ?", username).Update("chips", chips)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return tx.Create(&models.Player{
			Username:  username,
			Chips:     chips,
			LastClaim: time.Now(),
		}).Error
	}
	return nil
}
