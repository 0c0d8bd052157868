package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/platform/ctxutil"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

// Recovery turns a handler panic into a JSON 500.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		if log != nil {
			log.Error("Handler panic",
				"path", c.Request.URL.Path,
				"request_id", ctxutil.RequestID(c.Request.Context()),
				"panic", recovered,
			)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorBody{Message: "Internal Server Error"})
	})
}
