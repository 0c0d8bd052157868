package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/platform/apierr"
	"github.com/yungbote/portfolio-backend/internal/platform/ctxutil"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

// ErrorBody is the shape of every non-2xx JSON response.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// RespondError writes err's message verbatim. Use it only for errors whose
// text is safe to show a client.
func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorBody{Message: msg, Code: code})
}

// RespondAPIError renders an apierr.Error. The client sees only Message; the
// cause is logged. Validation and binding type errors render as 400 with their
// own text, and anything else becomes a generic 500.
func RespondAPIError(c *gin.Context, log *logger.Logger, err error) {
	ae, ok := apierr.As(err)
	if !ok {
		if ve, isValidation := AsValidationError(err); isValidation {
			ae = apierr.BadRequest("validation_error", ve.Error(), nil)
		} else {
			ae = apierr.Internal("internal_error", "Internal Server Error", err)
		}
	}
	if log != nil && ae.Status >= http.StatusInternalServerError {
		log.Error("Request failed",
			"path", c.FullPath(),
			"status", ae.Status,
			"code", ae.Code,
			"request_id", ctxutil.RequestID(c.Request.Context()),
			"error", ae.Err,
		)
	}
	msg := ae.Message
	if msg == "" {
		msg = http.StatusText(ae.Status)
	}
	c.AbortWithStatusJSON(ae.Status, ErrorBody{Message: msg, Code: ae.Code})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
