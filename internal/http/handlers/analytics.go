package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/apierr"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type AnalyticsHandler struct {
	log       *logger.Logger
	analytics services.AnalyticsService
	metrics   *observability.Metrics
}

func NewAnalyticsHandler(log *logger.Logger, analytics services.AnalyticsService, metrics *observability.Metrics) *AnalyticsHandler {
	return &AnalyticsHandler{log: log.With("handler", "AnalyticsHandler"), analytics: analytics, metrics: metrics}
}

// POST /api/analytics/visit
func (h *AnalyticsHandler) RecordVisit(c *gin.Context) {
	var req types.VisitRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAPIError(c, h.log, bindError(err))
		return
	}
	visit, err := h.analytics.RecordVisit(c.Request.Context(), req.Input())
	if err != nil {
		response.RespondAPIError(c, h.log, apierr.Internal("record_visit_failed", "Failed to record visit", err))
		return
	}
	h.metrics.IncVisitRecorded()
	response.RespondCreated(c, visit)
}

// GET /api/analytics/stats
func (h *AnalyticsHandler) GetStats(c *gin.Context) {
	stat, err := h.analytics.Stats(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.RespondAPIError(c, h.log, apierr.NotFound("stats_not_found", "No stats found"))
			return
		}
		response.RespondAPIError(c, h.log, apierr.Internal("fetch_stats_failed", "Failed to fetch stats", err))
		return
	}
	response.RespondOK(c, stat)
}

// GET /api/analytics/locations
func (h *AnalyticsHandler) GetLocations(c *gin.Context) {
	locations, err := h.analytics.Locations(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, h.log, apierr.Internal("fetch_locations_failed", "Failed to fetch locations", err))
		return
	}
	if locations == nil {
		locations = types.Breakdown{}
	}
	response.RespondOK(c, locations)
}

// GET /api/analytics/referrers?limit=N
func (h *AnalyticsHandler) GetReferrers(c *gin.Context) {
	limit := services.DefaultReferrerLimit
	if raw, ok := c.GetQuery("limit"); ok && raw != "" {
		limit = parseLimit(raw)
	}
	referrers, err := h.analytics.TopReferrers(c.Request.Context(), limit)
	if err != nil {
		response.RespondAPIError(c, h.log, apierr.Internal("fetch_referrers_failed", "Failed to fetch referrers", err))
		return
	}
	response.RespondOK(c, referrers)
}

// parseLimit reads the leading integer of raw ("5abc" is 5). Anything that
// does not start with a number yields 0, which selects nothing.
func parseLimit(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
