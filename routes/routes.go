package routes

import (
	"trivianight/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	gameHandler *handlers.GameHandler,
	answerHandler *handlers.AnswerHandler,
	configHandler *handlers.ConfigHandler,
) {
	// Game session
	router.GET("/current-game", gameHandler.GetCurrentGame)
	router.POST("/join", gameHandler.JoinGame)
	router.GET("/teams", gameHandler.GetTeams)
	router.POST("/reset", gameHandler.ResetGame)

	// Answers and scoring
	router.POST("/answer", answerHandler.SubmitAnswer)
	router.POST("/award", answerHandler.AwardPoints)
	router.GET("/answers/:question", answerHandler.GetAnswersForQuestion)
	router.GET("/all-answers", answerHandler.GetAllAnswers)
	router.GET("/leaderboard", answerHandler.GetLeaderboard)

	// Configuration and categories
	router.GET("/question-config/:number", configHandler.GetQuestionConfig)
	router.GET("/config", configHandler.GetConfig)
	router.GET("/categories", configHandler.GetCategories)
	router.POST("/question-category", configHandler.SetQuestionCategory)

	// Health check endpoint
	router.GET("/health", gameHandler.Health)
}
