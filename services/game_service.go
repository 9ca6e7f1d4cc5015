package services

import (
	"errors"

	"trivianight/models"

	"gorm.io/gorm"
)

// DefaultPasscode is used for the game auto-created on first startup.
const DefaultPasscode = "0000"

// GameService owns "current game" semantics: exactly one game accepts joins
// at a time, identified by the most recent creation timestamp.
type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

type JoinGameRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

type ResetGameRequest struct {
	Passcode string `json:"passcode"`
}

// CurrentGame returns the game with the latest creation timestamp.
func (s *GameService) CurrentGame() (*models.Game, error) {
	var game models.Game
	err := s.db.Order("created_at DESC, id DESC").First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNoGame
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// EnsureGame creates a game with the default passcode if none exists yet.
func (s *GameService) EnsureGame() (*models.Game, error) {
	game, err := s.CurrentGame()
	if err == nil {
		return game, nil
	}
	if !errors.Is(err, models.ErrNoGame) {
		return nil, err
	}

	created := models.Game{Passcode: DefaultPasscode}
	if err := s.db.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// Join registers a team in the current game. Duplicate team names are allowed;
// the only gate is the passcode.
func (s *GameService) Join(req *JoinGameRequest) (*models.Team, error) {
	game, err := s.CurrentGame()
	if errors.Is(err, models.ErrNoGame) {
		return nil, models.ErrInvalidPasscode
	}
	if err != nil {
		return nil, err
	}
	if game.Passcode != req.Code {
		return nil, models.ErrInvalidPasscode
	}

	team := models.Team{
		GameID:   game.ID,
		Name:     req.Name,
		GameCode: req.Code,
	}
	if err := s.db.Create(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// Teams lists the teams of the current game.
func (s *GameService) Teams() ([]models.Team, error) {
	game, err := s.CurrentGame()
	if errors.Is(err, models.ErrNoGame) {
		return []models.Team{}, nil
	}
	if err != nil {
		return nil, err
	}

	teams := []models.Team{}
	if err := s.db.Where("game_id = ?", game.ID).Order("id").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// Reset wipes the current game's teams and answers, clears all category
// overrides, and starts a fresh game under the given passcode. The superseded
// game row is kept; it simply stops being current. The whole sequence runs in
// one transaction so a concurrent join cannot land on a half-deleted game.
func (s *GameService) Reset(passcode string) (*models.Game, error) {
	if len(passcode) != 4 {
		return nil, models.ErrInvalidResetPasscode
	}

	newGame := models.Game{Passcode: passcode}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		err := tx.Order("created_at DESC, id DESC").First(&game).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			teamIDs := tx.Model(&models.Team{}).Select("id").Where("game_id = ?", game.ID)
			if err := tx.Where("team_id IN (?)", teamIDs).Delete(&models.Answer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("game_id = ?", game.ID).Delete(&models.Team{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("1 = 1").Delete(&models.QuestionCategory{}).Error; err != nil {
			return err
		}
		return tx.Create(&newGame).Error
	})
	if err != nil {
		return nil, err
	}
	return &newGame, nil
}
