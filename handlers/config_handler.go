package handlers

import (
	"net/http"
	"strconv"

	"trivianight/config"
	"trivianight/models"
	"trivianight/services"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	questions       *config.QuestionSet
	categoryService *services.CategoryService
}

func NewConfigHandler(questions *config.QuestionSet, categoryService *services.CategoryService) *ConfigHandler {
	return &ConfigHandler{questions: questions, categoryService: categoryService}
}

type SetCategoryRequest struct {
	QuestionNumber int    `json:"questionNumber" binding:"required"`
	Category       string `json:"category"`
	Icon           string `json:"icon"`
}

func (h *ConfigHandler) GetQuestionConfig(c *gin.Context) {
	question, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidQuestion.Error()})
		return
	}

	meta, err := h.categoryService.QuestionMeta(question)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meta)
}

func (h *ConfigHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"maxQuestions": h.questions.MaxQuestions()})
}

func (h *ConfigHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.categoryService.Categories()})
}

func (h *ConfigHandler) SetQuestionCategory(c *gin.Context) {
	var req SetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.categoryService.SetCategory(req.QuestionNumber, req.Category, req.Icon); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
