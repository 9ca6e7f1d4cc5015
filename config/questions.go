package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// QuestionConfig describes the submission rules for one question. Loaded from
// JSON once at startup; read-only afterwards.
type QuestionConfig struct {
	AllowUserPoints   bool      `json:"allowUserPoints"`
	DefaultPoints     float64   `json:"defaultPoints"`
	AllowChangePoints bool      `json:"allowChangePoints"`
	AllowedPoints     []float64 `json:"allowedPoints,omitempty"`
	BonusAnswer       bool      `json:"bonusAnswer,omitempty"`
	Label             string    `json:"label,omitempty"`
	Round             int       `json:"round,omitempty"`
	Category          string    `json:"category,omitempty"`
	Icon              string    `json:"icon,omitempty"`
}

// Category is one entry of the host's category picker.
type Category struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// QuestionSet holds the static question definitions and category list for the
// night. Constructed once and handed to whoever needs it.
type QuestionSet struct {
	questions  map[int]QuestionConfig
	categories []Category
}

type questionFile struct {
	Questions map[string]QuestionConfig `json:"questions"`
}

type categoryFile struct {
	Categories []Category `json:"categories"`
}

// LoadQuestionSet reads question and category definitions from dir. An
// override file (config.json, categories.json) wins over its default
// counterpart (config.default.json, categories.default.json). Missing or
// malformed files leave the corresponding part empty; that is not fatal.
func LoadQuestionSet(dir string) *QuestionSet {
	set := &QuestionSet{questions: map[int]QuestionConfig{}}

	if data, err := readResolved(dir, "config.json", "config.default.json"); err != nil {
		log.Printf("Error loading question config: %v", err)
	} else {
		var file questionFile
		if err := json.Unmarshal(data, &file); err != nil {
			log.Printf("Error parsing question config: %v", err)
		} else {
			for key, cfg := range file.Questions {
				n, err := strconv.Atoi(key)
				if err != nil || n < 1 {
					log.Printf("Skipping question config entry with bad key %q", key)
					continue
				}
				set.questions[n] = cfg
			}
		}
	}

	if data, err := readResolved(dir, "categories.json", "categories.default.json"); err != nil {
		log.Printf("Error loading categories: %v", err)
	} else {
		var file categoryFile
		if err := json.Unmarshal(data, &file); err != nil {
			log.Printf("Error parsing categories: %v", err)
		} else {
			set.categories = file.Categories
		}
	}

	return set
}

// NewQuestionSet builds a set directly from definitions. Used by tests.
func NewQuestionSet(questions map[int]QuestionConfig, categories []Category) *QuestionSet {
	if questions == nil {
		questions = map[int]QuestionConfig{}
	}
	return &QuestionSet{questions: questions, categories: categories}
}

func readResolved(dir, override, fallback string) ([]byte, error) {
	path := filepath.Join(dir, override)
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(dir, fallback)
	}
	return os.ReadFile(path)
}

// Question returns the configuration for question n, or a permissive default
// when n is not configured.
func (s *QuestionSet) Question(n int) QuestionConfig {
	if cfg, ok := s.questions[n]; ok {
		return cfg
	}
	return QuestionConfig{
		AllowUserPoints:   true,
		DefaultPoints:     0,
		AllowChangePoints: true,
	}
}

// MaxQuestions returns the number of configured questions, 0 when the
// configuration is absent or malformed.
func (s *QuestionSet) MaxQuestions() int {
	return len(s.questions)
}

// Categories returns the static category list.
func (s *QuestionSet) Categories() []Category {
	if s.categories == nil {
		return []Category{}
	}
	return s.categories
}
