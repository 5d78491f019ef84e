package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockpulse/internal/domain/dto"
	"stockpulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors collected on the
// context (via c.Error) into a standardized JSON error response.
//
// Behavior:
//   - Runs the handler chain first.
//   - If handlers attached errors and no response was written yet,
//     responds with 500 and the last error's message.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
	}
}

// AbortWithError stops the handler chain and writes a standardized JSON
// error response with the given status code.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
