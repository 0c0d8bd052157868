package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/platform/apierr"
)

// bindError maps a bindJSON failure to the response the client sees.
func bindError(err error) error {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return apierr.New(http.StatusRequestEntityTooLarge, "body_too_large", "Request body too large", err)
	}
	if ve, ok := response.AsValidationError(err); ok {
		return ve
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apierr.BadRequest("invalid_json", "Invalid JSON body", err)
	}
	return apierr.BadRequest("invalid_body", "Invalid request body", err)
}
