package handlers

import (
	"net/http"
	"strconv"

	"trivianight/models"
	"trivianight/services"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService *services.AnswerService
	scoreService  *services.ScoreService
}

func NewAnswerHandler(answerService *services.AnswerService, scoreService *services.ScoreService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService, scoreService: scoreService}
}

type SubmitAnswerRequest struct {
	TeamID        uint     `json:"teamId" binding:"required"`
	Question      int      `json:"question" binding:"required"`
	Answer        *string  `json:"answer"`
	BonusAnswer   *string  `json:"bonusAnswer"`
	ChosenPoints  *float64 `json:"chosenPoints"`
	AwardedPoints *float64 `json:"awardedPoints"`
	// Points predates the chosen/awarded split and is read as chosenPoints.
	Points *float64 `json:"points"`
}

type AwardPointsRequest struct {
	TeamID        uint     `json:"teamId" binding:"required"`
	Question      int      `json:"question" binding:"required"`
	AwardedPoints *float64 `json:"awardedPoints" binding:"required"`
}

// SubmitAnswer handles team submissions on POST /answer. A payload carrying
// only awardedPoints still works for older host clients and is routed to the
// award operation; mixing team fields with awardedPoints is rejected because
// the two are owned by different actors.
func (h *AnswerHandler) SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chosen := req.ChosenPoints
	if chosen == nil {
		chosen = req.Points
	}
	hasTeamFields := req.Answer != nil || req.BonusAnswer != nil || chosen != nil

	var err error
	switch {
	case req.AwardedPoints != nil && hasTeamFields:
		err = models.ErrMixedSubmission
	case req.AwardedPoints != nil:
		err = h.answerService.AwardPoints(req.TeamID, req.Question, *req.AwardedPoints)
	default:
		err = h.answerService.SubmitTeamAnswer(req.TeamID, req.Question, services.TeamSubmission{
			Answer:       req.Answer,
			BonusAnswer:  req.BonusAnswer,
			ChosenPoints: chosen,
		})
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// AwardPoints handles the host's judgment on POST /award.
func (h *AnswerHandler) AwardPoints(c *gin.Context) {
	var req AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.answerService.AwardPoints(req.TeamID, req.Question, *req.AwardedPoints); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AnswerHandler) GetAnswersForQuestion(c *gin.Context) {
	question, err := strconv.Atoi(c.Param("question"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidQuestion.Error()})
		return
	}

	rows, err := h.answerService.AnswersForQuestion(question)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *AnswerHandler) GetAllAnswers(c *gin.Context) {
	result, err := h.answerService.AllAnswers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AnswerHandler) GetLeaderboard(c *gin.Context) {
	ranked, err := h.scoreService.Leaderboard()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": ranked})
}
