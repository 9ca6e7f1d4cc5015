package services

import (
	"errors"

	"trivianight/config"
	"trivianight/models"

	"gorm.io/gorm"
)

// AnswerService is the upsert engine for per-question answer rows. A team owns
// answer, bonus_answer and chosen_points; the host owns awarded_points. The
// two sides go through separate operations so neither can clobber the other.
type AnswerService struct {
	db        *gorm.DB
	games     *GameService
	questions *config.QuestionSet
}

func NewAnswerService(db *gorm.DB, games *GameService, questions *config.QuestionSet) *AnswerService {
	return &AnswerService{db: db, games: games, questions: questions}
}

// TeamSubmission carries the team-owned fields of an answer. Nil means the
// field was absent from the request.
type TeamSubmission struct {
	Answer       *string
	BonusAnswer  *string
	ChosenPoints *float64
}

func (t TeamSubmission) empty() bool {
	return t.Answer == nil && t.BonusAnswer == nil && t.ChosenPoints == nil
}

// AnswerRow is one joined answer+team row for the host view.
type AnswerRow struct {
	ID             uint    `json:"id"`
	TeamID         uint    `json:"team_id"`
	Name           string  `json:"name"`
	QuestionNumber int     `json:"question_number"`
	Answer         *string `json:"answer"`
	BonusAnswer    *string `json:"bonus_answer"`
	ChosenPoints   float64 `json:"chosen_points"`
	AwardedPoints  float64 `json:"awarded_points"`
}

// TeamAnswer is one answer row of the full-game export.
type TeamAnswer struct {
	TeamID         uint    `json:"team_id"`
	TeamName       string  `json:"team_name"`
	QuestionNumber int     `json:"question_number"`
	Answer         *string `json:"answer"`
	BonusAnswer    *string `json:"bonus_answer"`
	ChosenPoints   float64 `json:"chosen_points"`
	AwardedPoints  float64 `json:"awarded_points"`
}

// TeamRef identifies a team in the full-game export.
type TeamRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AllAnswersResult bundles everything the leaderboard view needs.
type AllAnswersResult struct {
	Teams   []TeamRef    `json:"teams"`
	Answers []TeamAnswer `json:"answers"`
}

// SubmitTeamAnswer records a team's answer for a question. The first
// submission inserts the row; later submissions overwrite all three
// team-owned fields (absent fields become null/0). Resubmitting with no
// fields at all is a conflict.
func (s *AnswerService) SubmitTeamAnswer(teamID uint, question int, sub TeamSubmission) error {
	if question < 1 {
		return models.ErrInvalidQuestion
	}
	if err := s.checkTeam(teamID); err != nil {
		return err
	}
	if sub.ChosenPoints != nil {
		if err := s.checkWager(question, *sub.ChosenPoints); err != nil {
			return err
		}
	}

	var existing models.Answer
	err := s.db.Where("team_id = ? AND question_number = ?", teamID, question).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row := models.Answer{
			TeamID:         teamID,
			QuestionNumber: question,
			Answer:         sub.Answer,
			BonusAnswer:    sub.BonusAnswer,
		}
		if sub.ChosenPoints != nil {
			row.ChosenPoints = *sub.ChosenPoints
		}
		return s.db.Create(&row).Error
	}
	if err != nil {
		return err
	}

	if sub.empty() {
		return models.ErrAnswerExists
	}

	chosen := 0.0
	if sub.ChosenPoints != nil {
		chosen = *sub.ChosenPoints
	}
	// Full overwrite of the team-owned fields; awarded_points is untouched.
	return s.db.Model(&models.Answer{}).Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"answer":        sub.Answer,
			"bonus_answer":  sub.BonusAnswer,
			"chosen_points": chosen,
		}).Error
}

// AwardPoints records the host's judgment for a (team, question) pair. Only
// awarded_points is written; if the team never submitted, a bare row is
// created so the award still counts.
func (s *AnswerService) AwardPoints(teamID uint, question int, awarded float64) error {
	if question < 1 {
		return models.ErrInvalidQuestion
	}
	if err := s.checkTeam(teamID); err != nil {
		return err
	}

	var existing models.Answer
	err := s.db.Where("team_id = ? AND question_number = ?", teamID, question).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row := models.Answer{
			TeamID:         teamID,
			QuestionNumber: question,
			AwardedPoints:  awarded,
		}
		return s.db.Create(&row).Error
	}
	if err != nil {
		return err
	}

	return s.db.Model(&models.Answer{}).Where("id = ?", existing.ID).
		Update("awarded_points", awarded).Error
}

// AnswersForQuestion returns the joined answer rows for one question, scoped
// to the current game.
func (s *AnswerService) AnswersForQuestion(question int) ([]AnswerRow, error) {
	if question < 1 {
		return nil, models.ErrInvalidQuestion
	}
	game, err := s.games.CurrentGame()
	if errors.Is(err, models.ErrNoGame) {
		return []AnswerRow{}, nil
	}
	if err != nil {
		return nil, err
	}

	rows := []AnswerRow{}
	err = s.db.Model(&models.Answer{}).
		Select("answers.id, answers.team_id, teams.name, answers.question_number, answers.answer, answers.bonus_answer, answers.chosen_points, answers.awarded_points").
		Joins("JOIN teams ON teams.id = answers.team_id").
		Where("answers.question_number = ? AND teams.game_id = ?", question, game.ID).
		Order("answers.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AllAnswers returns every team and answer of the current game.
func (s *AnswerService) AllAnswers() (*AllAnswersResult, error) {
	result := &AllAnswersResult{Teams: []TeamRef{}, Answers: []TeamAnswer{}}

	game, err := s.games.CurrentGame()
	if errors.Is(err, models.ErrNoGame) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Team{}).
		Select("id, name").
		Where("game_id = ?", game.ID).
		Order("id").
		Scan(&result.Teams).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Answer{}).
		Select("answers.team_id, teams.name AS team_name, answers.question_number, answers.answer, answers.bonus_answer, answers.chosen_points, answers.awarded_points").
		Joins("JOIN teams ON teams.id = answers.team_id").
		Where("teams.game_id = ?", game.ID).
		Order("answers.id").
		Scan(&result.Answers).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *AnswerService) checkTeam(teamID uint) error {
	var team models.Team
	err := s.db.First(&team, teamID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrTeamNotFound
	}
	return err
}

// checkWager rejects wagers outside the question's allowed point values. A
// question without an allowedPoints list accepts any wager.
func (s *AnswerService) checkWager(question int, points float64) error {
	cfg := s.questions.Question(question)
	if len(cfg.AllowedPoints) == 0 {
		return nil
	}
	for _, allowed := range cfg.AllowedPoints {
		if allowed == points {
			return nil
		}
	}
	return models.ErrInvalidChosenPoints
}
