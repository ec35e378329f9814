package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Error string    `json:"error"`
	Code  ErrorCode `json:"code,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: "An unexpected error occurred. Please try again later.",
					Code:  ErrInternal,
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response for err.
func JSONError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	resp := ErrorResponse{Error: PublicMessage(err), Code: ErrInternal}
	if appErr, ok := AsAppError(err); ok {
		resp.Code = appErr.Code
	}

	Logger := GetLogger()
	if status >= http.StatusInternalServerError {
		Logger.Error(resp.Error, zap.Int("status", status), zap.Error(err))
	} else {
		Logger.Warn(resp.Error, zap.Int("status", status), zap.String("code", string(resp.Code)))
	}
	c.JSON(status, resp)
}
