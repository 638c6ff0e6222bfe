package handler

import (
	"github.com/gin-gonic/gin"

	"protein-optimizer-service/internal/usecase"
)

type Handler struct {
	optimizeUC *usecase.OptimizationUseCase
	projectUC  *usecase.ProjectUseCase
	// ownerID is the single configured actor; there is no per-request
	// authentication.
	ownerID string
}

func New(optimizeUC *usecase.OptimizationUseCase, projectUC *usecase.ProjectUseCase, ownerID string) *Handler {
	return &Handler{
		optimizeUC: optimizeUC,
		projectUC:  projectUC,
		ownerID:    ownerID,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/optimize-protein", h.OptimizeProtein)

	r.GET("/projects", h.ListProjects)
	r.POST("/projects", h.CreateProject)
}
