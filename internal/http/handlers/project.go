package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/platform/apierr"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type ProjectHandler struct {
	log      *logger.Logger
	projects services.ProjectService
}

func NewProjectHandler(log *logger.Logger, projects services.ProjectService) *ProjectHandler {
	return &ProjectHandler{log: log.With("handler", "ProjectHandler"), projects: projects}
}

// GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projects.All(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, h.log, apierr.Internal("fetch_projects_failed", "Failed to fetch projects", err))
		return
	}
	response.RespondOK(c, projects)
}

// GET /api/projects/featured
func (h *ProjectHandler) GetFeatured(c *gin.Context) {
	project, err := h.projects.Featured(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.RespondAPIError(c, h.log, apierr.NotFound("featured_not_found", "No featured project found"))
			return
		}
		response.RespondAPIError(c, h.log, apierr.Internal("fetch_featured_failed", "Failed to fetch featured project", err))
		return
	}
	response.RespondOK(c, project)
}
