package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"protein-optimizer-service/internal/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAlphabet),
		errors.Is(err, domain.ErrEmptySequence):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid protein sequence format"})

	case errors.Is(err, domain.ErrInvalidGoal),
		errors.Is(err, domain.ErrProjectNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrSequenceNotFound),
		errors.Is(err, domain.ErrResultNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrProjectNameConflict),
		errors.Is(err, domain.ErrProjectSequenceMismatch):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
