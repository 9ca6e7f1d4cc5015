package services_test

import (
	"testing"

	"trivianight/models"
	"trivianight/services"
	"trivianight/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	answers := []models.Answer{
		{TeamID: 1, QuestionNumber: 1, AwardedPoints: 2},
		{TeamID: 1, QuestionNumber: 2, AwardedPoints: 0.5},
		{TeamID: 2, QuestionNumber: 1, AwardedPoints: 4},
		{TeamID: 2, QuestionNumber: 2, ChosenPoints: 6}, // wager alone scores nothing
	}

	totals := services.ComputeTotals(answers)
	assert.Equal(t, 2.5, totals[1])
	assert.Equal(t, 4.0, totals[2])
	_, ok := totals[3]
	assert.False(t, ok)
}

func TestRankTeamsWithTies(t *testing.T) {
	teams := []models.Team{
		{ID: 3, Name: "C"},
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}
	totals := map[uint]float64{1: 10, 2: 10, 3: 8}

	ranked := services.RankTeams(teams, totals)
	require.Len(t, ranked, 3)

	// Ties share a rank and leave a gap; tied teams order by name.
	assert.Equal(t, "A", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "B", ranked[1].Name)
	assert.Equal(t, 1, ranked[1].Rank)
	assert.Equal(t, "C", ranked[2].Name)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRankTeamsMissingTotalCountsAsZero(t *testing.T) {
	teams := []models.Team{
		{ID: 1, Name: "Quiet"},
		{ID: 2, Name: "Loud"},
	}
	totals := map[uint]float64{2: 1}

	ranked := services.RankTeams(teams, totals)
	assert.Equal(t, "Loud", ranked[0].Name)
	assert.Equal(t, 0.0, ranked[1].Total)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestLeaderboardFromStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	games := services.NewGameService(db)
	scores := services.NewScoreService(db, games)

	_, err := games.EnsureGame()
	require.NoError(t, err)

	a, err := games.Join(&services.JoinGameRequest{Name: "Alpha", Code: "0000"})
	require.NoError(t, err)
	b, err := games.Join(&services.JoinGameRequest{Name: "Beta", Code: "0000"})
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Answer{TeamID: a.ID, QuestionNumber: 1, AwardedPoints: 2}).Error)
	require.NoError(t, db.Create(&models.Answer{TeamID: a.ID, QuestionNumber: 2, AwardedPoints: 1}).Error)
	require.NoError(t, db.Create(&models.Answer{TeamID: b.ID, QuestionNumber: 1, AwardedPoints: 4}).Error)

	ranked, err := scores.Leaderboard()
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Beta", ranked[0].Name)
	assert.Equal(t, 4.0, ranked[0].Total)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "Alpha", ranked[1].Name)
	assert.Equal(t, 3.0, ranked[1].Total)
	assert.Equal(t, 2, ranked[1].Rank)
}
