package main

import (
	"log"

	"trivianight/config"
	"trivianight/handlers"
	"trivianight/middleware"
	"trivianight/routes"
	"trivianight/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Create/update schema, including the legacy points column copy
	if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Load static question and category definitions
	questions := config.LoadQuestionSet(cfg.SharedDir)
	log.Printf("Loaded %d question definitions", questions.MaxQuestions())

	// Initialize services
	gameService := services.NewGameService(db)
	answerService := services.NewAnswerService(db, gameService, questions)
	scoreService := services.NewScoreService(db, gameService)
	categoryService := services.NewCategoryService(db, questions)

	// A game must always exist; create the default one on first run
	game, err := gameService.EnsureGame()
	if err != nil {
		log.Fatal("Failed to initialize game:", err)
	}
	log.Printf("Current game: id=%d", game.ID)

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(gameService)
	answerHandler := handlers.NewAnswerHandler(answerService, scoreService)
	configHandler := handlers.NewConfigHandler(questions, categoryService)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS())
	routes.SetupRoutes(router, gameHandler, answerHandler, configHandler)

	// Start server
	addr := cfg.BindAddress + ":" + cfg.Port
	log.Printf("API listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
