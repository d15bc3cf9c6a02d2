package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roach88/datasets/internal/apperr"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// newErrorResponse maps err to its response envelope.
func newErrorResponse(err error) ErrorResponse {
	code := apperr.CodeOf(err)
	status := apperr.HTTPStatus(code)
	return ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: apperr.Category(code),
		Details: apperr.Detail(err),
	}
}

// writeError logs err and writes its envelope. Client errors log at WARN,
// server errors at ERROR.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	resp := newErrorResponse(err)

	attrs := []any{
		"status", resp.Status,
		"code", string(apperr.CodeOf(err)),
		"error", err,
		"request_id", c.GetString(requestIDKey),
	}
	if resp.Status >= http.StatusInternalServerError {
		logger.Error("request failed", attrs...)
	} else {
		logger.Warn("request rejected", attrs...)
	}

	writeEnvelope(c, resp)
}

func writeEnvelope(c *gin.Context, resp ErrorResponse) {
	body, err := json.Marshal(resp)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(resp.Status, jsonContentType, body)
	c.Abort()
}
