package models

import "time"

// Chip-economy constants. DailyChips is granted on first sight of a player
// and again once AllowancePeriod has elapsed since the last claim. Players
// untouched for longer than RetentionWindow are purged.
const (
	DailyChips      = 20
	AllowancePeriod = 24 * time.Hour
	RetentionWindow = 30 * 24 * time.Hour
)

// Player holds a player's chip balance and replenishment state. The username
// is the primary key and is case-sensitive. TotalWins and TotalLosses are
// reserved counters present in the schema but not updated by any endpoint.
type Player struct {
	Username    string    `gorm:"primaryKey;size:64" json:"username"`
	Chips       int64     `gorm:"not null" json:"chips"`
	LastClaim   time.Time `gorm:"not null" json:"last_claim"`
	TotalWins   int       `gorm:"default:0" json:"total_wins"`
	TotalLosses int       `gorm:"default:0" json:"total_losses"`
	CreatedAt   time.Time `json:"created_at"`
}
