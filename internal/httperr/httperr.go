package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbid(c *gin.Context, code string) {
	Write(c, http.StatusForbidden, code, "You do not have permission to perform this action.")
}

// Respond maps a use case error onto the response. Anything that is not a
// BusinessError is logged and reported as a generic 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		c.JSON(be.Status(), HTTPError{
			Code:    be.Code,
			Message: be.Message,
			Field:   be.Field,
		})
		return
	}

	logger := slog.Default()
	if v, ok := c.Get(LoggerKey); ok {
		if l, ok := v.(*slog.Logger); ok {
			logger = l
		}
	}
	logger.Error("request failed", slog.String("error", err.Error()))

	Internal(c, "internal_error", "Unexpected error.")
}

// LoggerKey is where the request logger middleware stores the per-request logger.
const LoggerKey = "slogLogger"
