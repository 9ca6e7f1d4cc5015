package handlers

import (
	"errors"
	"log"
	"net/http"

	"trivianight/models"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses. Anything unrecognized
// is a store failure: logged and reported as 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidPasscode):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidResetPasscode),
		errors.Is(err, models.ErrInvalidQuestion),
		errors.Is(err, models.ErrInvalidChosenPoints),
		errors.Is(err, models.ErrMixedSubmission):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAnswerExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrTeamNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
