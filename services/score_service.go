package services

import (
	"errors"
	"sort"

	"trivianight/models"

	"gorm.io/gorm"
)

// ScoreService computes per-team totals and the ranked leaderboard. Totals are
// recomputed from the answer rows on every request; at trivia-night scale that
// is cheaper than keeping an incremental score in sync.
type ScoreService struct {
	db    *gorm.DB
	games *GameService
}

func NewScoreService(db *gorm.DB, games *GameService) *ScoreService {
	return &ScoreService{db: db, games: games}
}

// RankedTeam is one leaderboard entry.
type RankedTeam struct {
	Rank  int     `json:"rank"`
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// ComputeTotals sums awarded points per team. Teams with no answers simply
// have no entry and count as 0.
func ComputeTotals(answers []models.Answer) map[uint]float64 {
	totals := map[uint]float64{}
	for _, answer := range answers {
		totals[answer.TeamID] += answer.AwardedPoints
	}
	return totals
}

// RankTeams sorts teams by total descending, name ascending, and assigns
// standard competition ranks: tied totals share a rank and leave a gap after
// the tie group, so totals [10, 10, 8] rank [1, 1, 3].
func RankTeams(teams []models.Team, totals map[uint]float64) []RankedTeam {
	ranked := make([]RankedTeam, 0, len(teams))
	for _, team := range teams {
		ranked = append(ranked, RankedTeam{
			ID:    team.ID,
			Name:  team.Name,
			Total: totals[team.ID],
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].Name < ranked[j].Name
	})

	for i := range ranked {
		if i > 0 && ranked[i].Total == ranked[i-1].Total {
			ranked[i].Rank = ranked[i-1].Rank
		} else {
			ranked[i].Rank = i + 1
		}
	}
	return ranked
}

// Leaderboard ranks the current game's teams by awarded points.
func (s *ScoreService) Leaderboard() ([]RankedTeam, error) {
	game, err := s.games.CurrentGame()
	if errors.Is(err, models.ErrNoGame) {
		return []RankedTeam{}, nil
	}
	if err != nil {
		return nil, err
	}

	var teams []models.Team
	if err := s.db.Where("game_id = ?", game.ID).Find(&teams).Error; err != nil {
		return nil, err
	}

	var answers []models.Answer
	err = s.db.Model(&models.Answer{}).
		Select("answers.*").
		Joins("JOIN teams ON teams.id = answers.team_id").
		Where("teams.game_id = ?", game.ID).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}

	return RankTeams(teams, ComputeTotals(answers)), nil
}
