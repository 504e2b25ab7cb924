package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Bodies returned for unmatched routes and recovered panics.
const (
	MsgNotFound      = "Not found"
	MsgInternalError = "Internal server error"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string `json:"error"`
	Issues any    `json:"issues,omitempty"`
}

// Recovery turns a panic into a logged 500 with a generic JSON body.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: MsgInternalError})
	})
}

// NotFound answers unmatched routes with a JSON 404.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: MsgNotFound})
	}
}

// ErrorHandler logs errors attached with c.Error and, if the handler wrote no
// response, answers with a generic 500.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(e.Err))
		}
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: MsgInternalError})
		}
	}
}
