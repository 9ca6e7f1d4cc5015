package handlers

import (
	"errors"
	"net/http"
	"time"

	"trivianight/models"
	"trivianight/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

func (h *GameHandler) GetCurrentGame(c *gin.Context) {
	game, err := h.gameService.CurrentGame()
	if errors.Is(err, models.ErrNoGame) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": game.ID, "passcode": game.Passcode})
}

func (h *GameHandler) JoinGame(c *gin.Context) {
	var req services.JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.gameService.Join(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teamId": team.ID})
}

func (h *GameHandler) GetTeams(c *gin.Context) {
	teams, err := h.gameService.Teams()
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(teams))
	for _, team := range teams {
		out = append(out, gin.H{"id": team.ID, "name": team.Name, "game_code": team.GameCode})
	}
	c.JSON(http.StatusOK, out)
}

func (h *GameHandler) ResetGame(c *gin.Context) {
	var req services.ResetGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.Reset(req.Passcode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "gameId": game.ID, "passcode": game.Passcode})
}

func (h *GameHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
