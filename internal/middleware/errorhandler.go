package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cryptopulse/internal/domain/dto"
	"cryptopulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors collected during
// request handling into a standardized JSON error response.
//
// Handlers that call c.Error(err) without writing a response themselves get
// a 500 with the last error's message. Responses already written are left
// untouched.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}
