package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/platform/apierr"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/uploads"
)

type UploadsHandler struct {
	log   *logger.Logger
	store uploads.Store
}

func NewUploadsHandler(log *logger.Logger, store uploads.Store) *UploadsHandler {
	return &UploadsHandler{log: log.With("handler", "UploadsHandler"), store: store}
}

// GET /uploads/:name
func (h *UploadsHandler) Serve(c *gin.Context) {
	name := c.Param("name")
	rc, info, err := h.store.Open(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, uploads.ErrNotExist) || errors.Is(err, uploads.ErrInvalidName) {
			response.RespondAPIError(c, h.log, apierr.NotFound("upload_not_found", "Not found"))
			return
		}
		response.RespondAPIError(c, h.log, apierr.Internal("open_upload_failed", "Failed to read upload", err))
		return
	}
	defer rc.Close()

	size := info.Size
	if size <= 0 {
		size = -1
	}
	headers := map[string]string{"Cache-Control": "public, max-age=3600"}
	if !info.Updated.IsZero() {
		headers["Last-Modified"] = info.Updated.UTC().Format(http.TimeFormat)
	}
	c.DataFromReader(http.StatusOK, size, info.ContentType, rc, headers)
}
