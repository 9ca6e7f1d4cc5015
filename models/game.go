package models

import "time"

// Game is one trivia session. The "current" game is the row with the latest
// CreatedAt; reset inserts a new row rather than touching the old one, so
// superseded games stay behind as dead history.
type Game struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Passcode  string    `json:"passcode" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:GameID"`
}
