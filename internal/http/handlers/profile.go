package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/apierr"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

// MaxImageBytes caps a single profile image upload.
const MaxImageBytes = 5 << 20

type ProfileHandler struct {
	log      *logger.Logger
	profiles services.ProfileService
	metrics  *observability.Metrics
}

func NewProfileHandler(log *logger.Logger, profiles services.ProfileService, metrics *observability.Metrics) *ProfileHandler {
	return &ProfileHandler{log: log.With("handler", "ProfileHandler"), profiles: profiles, metrics: metrics}
}

// GET /api/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.RespondAPIError(c, h.log, apierr.NotFound("profile_not_found", "Profile not found"))
			return
		}
		response.RespondAPIError(c, h.log, apierr.Internal("fetch_profile_failed", "Failed to fetch profile", err))
		return
	}
	response.RespondOK(c, profile)
}

// PATCH /api/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var patch types.ProfilePatch
	if err := bindJSON(c, &patch); err != nil {
		response.RespondAPIError(c, h.log, bindError(err))
		return
	}
	profile, err := h.profiles.Update(c.Request.Context(), patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.RespondAPIError(c, h.log, apierr.NotFound("profile_not_found", "Profile not found"))
			return
		}
		response.RespondAPIError(c, h.log, apierr.Internal("update_profile_failed", "Failed to update profile", err))
		return
	}
	response.RespondOK(c, profile)
}

// POST /api/profile/image
// multipart field "image"
func (h *ProfileHandler) UploadImage(c *gin.Context) {
	// Room for the multipart envelope around a maximum-size file.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxImageBytes+(1<<20))

	fh, err := c.FormFile("image")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			response.RespondAPIError(c, h.log, apierr.BadRequest("file_too_large", "File too large", err))
			return
		}
		response.RespondAPIError(c, h.log, apierr.BadRequest("missing_image", "No image file provided", err))
		return
	}
	if fh.Size > MaxImageBytes {
		response.RespondAPIError(c, h.log, apierr.BadRequest("file_too_large", "File too large", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.RespondAPIError(c, h.log, apierr.Internal("upload_failed", "Failed to upload profile image", err))
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, MaxImageBytes+1))
	if err != nil {
		response.RespondAPIError(c, h.log, apierr.Internal("upload_failed", "Failed to upload profile image", err))
		return
	}
	if len(data) > MaxImageBytes {
		response.RespondAPIError(c, h.log, apierr.BadRequest("file_too_large", "File too large", nil))
		return
	}

	path, err := h.profiles.UpdateImage(c.Request.Context(), services.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidUpload) {
			h.metrics.IncImageUpload("rejected")
			response.RespondAPIError(c, h.log, apierr.BadRequest("invalid_file_type", "Only image files are allowed!", err))
			return
		}
		h.metrics.IncImageUpload("failed")
		response.RespondAPIError(c, h.log, apierr.Internal("upload_failed", "Failed to upload profile image", err))
		return
	}
	h.metrics.IncImageUpload("stored")
	response.RespondOK(c, gin.H{"imagePath": path})
}
