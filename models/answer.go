package models

// Answer holds one team's submission for one question. At most one row exists
// per (team, question) pair; the submission service enforces that with an
// upsert rather than a database constraint.
//
// ChosenPoints is written by the team (the wager), AwardedPoints by the host.
// The two are mutated by different actors and must never overwrite each other.
type Answer struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	TeamID         uint    `json:"team_id" gorm:"not null;index"`
	QuestionNumber int     `json:"question_number" gorm:"not null;index"`
	Answer         *string `json:"answer"`
	BonusAnswer    *string `json:"bonus_answer"`
	ChosenPoints   float64 `json:"chosen_points" gorm:"not null;default:0"`
	AwardedPoints  float64 `json:"awarded_points" gorm:"not null;default:0"`

	// Relationships
	Team Team `json:"team,omitempty"`
}
