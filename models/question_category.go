package models

// QuestionCategory is a host-assigned override of a question's static
// category/icon from configuration. Cleared wholesale on game reset.
type QuestionCategory struct {
	QuestionNumber int    `json:"question_number" gorm:"primaryKey;autoIncrement:false"`
	Category       string `json:"category"`
	Icon           string `json:"icon"`
}
