package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"protein-optimizer-service/internal/domain"
	"protein-optimizer-service/internal/dto"
)

func (h *Handler) OptimizeProtein(c *gin.Context) {
	var req dto.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sequence and goal are required"})
		return
	}
	if req.Sequence == "" || req.Goal == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sequence and goal are required"})
		return
	}

	goal, err := domain.ParseGoal(req.Goal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.optimizeUC.Optimize(c.Request.Context(), h.ownerID, req.Sequence, goal)
	if err != nil {
		log.WithError(err).Warn("optimization request rejected")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOptimizeResponse(record))
}
