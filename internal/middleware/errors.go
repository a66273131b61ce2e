package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerpulse/internal/domain/dto"
	"github.com/guttosm/tickerpulse/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context (via c.Error)
// into a standardized 500 response, unless a handler already wrote one.
// Handlers that map errors to specific status codes respond directly and
// never reach this fallback.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Str("request_id", toString(rid)).
		Str("path", c.Request.URL.Path).
		Err(err).
		Msg("unhandled request error")

	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
	}
}
