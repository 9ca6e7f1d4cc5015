package models

type Team struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	GameID   uint   `json:"game_id" gorm:"not null;index"`
	Name     string `json:"name" gorm:"not null"`
	GameCode string `json:"game_code"` // passcode used at join time

	// Relationships
	Game    Game     `json:"game,omitempty"`
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:TeamID"`
}
