package utils

import (
	"time"

	"gorm.io/gorm"

	"github.com/Tsoggam/blitz/models"
)

// PurgeInactivePlayers deletes every player whose last claim is strictly
// older than the retention window. Returns the number of rows removed.
func PurgeInactivePlayers(db *gorm.DB, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	res := db.Where("last_claim < ?", cutoff).Delete(&models.Player{})
	return res.RowsAffected, res.Error
}

// StartPlayerPurger launches a background goroutine that periodically purges
// players inactive beyond the retention window. It is best-effort: failures
// are logged and the next cycle still runs on schedule.
func StartPlayerPurger(db *gorm.DB, interval, retention time.Duration) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	go func() {
		for {
			// Sleep first to avoid racing immediately at startup
			time.Sleep(interval)
			deleted, err := PurgeInactivePlayers(db, retention)
			if err != nil {
				Sugar.Errorf("player purge failed: %v", err)
				continue
			}
			if deleted > 0 {
				Sugar.Infof("player purge removed %d inactive players", deleted)
			}
		}
	}()
}
