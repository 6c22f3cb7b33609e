package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderbook/internal/handler/httperr"
	"wanderbook/internal/pkg/errs"
)

const stackLogLines = 12

// ErrorHandler turns errors recorded on the context into the public
// error envelope. Runs after the handler; the most recent public error
// wins.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				if resp.Status >= http.StatusInternalServerError {
					slog.Error("request failed",
						"path", c.Request.URL.Path,
						"stack", errs.ExtractStackLines(ginErr.Err, stackLogLines),
					)
				}
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic", "error", r, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
