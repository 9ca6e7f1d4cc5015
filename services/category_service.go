package services

import (
	"errors"

	"trivianight/config"
	"trivianight/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryService manages host-assigned category overrides and serves the
// merged per-question metadata.
type CategoryService struct {
	db        *gorm.DB
	questions *config.QuestionSet
}

func NewCategoryService(db *gorm.DB, questions *config.QuestionSet) *CategoryService {
	return &CategoryService{db: db, questions: questions}
}

// QuestionMeta is a question's static configuration merged with any persisted
// category override.
type QuestionMeta struct {
	config.QuestionConfig
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

// SetCategory upserts the override for a question. Clearing both fields
// removes the override so the static configuration shows through again.
func (s *CategoryService) SetCategory(question int, category, icon string) error {
	if question < 1 {
		return models.ErrInvalidQuestion
	}
	if category == "" && icon == "" {
		return s.db.Delete(&models.QuestionCategory{}, "question_number = ?", question).Error
	}

	row := models.QuestionCategory{
		QuestionNumber: question,
		Category:       category,
		Icon:           icon,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "question_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "icon"}),
	}).Create(&row).Error
}

// QuestionMeta returns the configuration for a question with the persisted
// override applied on top when one exists.
func (s *CategoryService) QuestionMeta(question int) (*QuestionMeta, error) {
	if question < 1 {
		return nil, models.ErrInvalidQuestion
	}

	cfg := s.questions.Question(question)
	meta := &QuestionMeta{
		QuestionConfig: cfg,
		Category:       cfg.Category,
		Icon:           cfg.Icon,
	}

	var override models.QuestionCategory
	err := s.db.First(&override, "question_number = ?", question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return meta, nil
	}
	if err != nil {
		return nil, err
	}

	meta.Category = override.Category
	meta.Icon = override.Icon
	return meta, nil
}

// Categories returns the static category list for the host's picker.
func (s *CategoryService) Categories() []config.Category {
	return s.questions.Categories()
}
