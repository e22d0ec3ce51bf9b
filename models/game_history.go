package models

import "time"

// GameHistory is an append-only record of a finished game. Result and
// Winners are free-form strings supplied by the game client. Losers is kept
// in the schema but never written by any endpoint.
type GameHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Result    string    `gorm:"type:text;not null" json:"result"`
	Winners   *string   `gorm:"type:text" json:"winners"`
	Losers    *string   `gorm:"type:text" json:"losers"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

// TableName keeps the historical singular table name.
func (GameHistory) TableName() string {
	return "game_history"
}
