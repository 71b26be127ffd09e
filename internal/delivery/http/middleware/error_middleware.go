package middleware

import (
	"errors"
	"net/http"

	"next-form-backend/internal/delivery/http/response"
	"next-form-backend/pkg/apperror"
	"next-form-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// StorageFailurePrefix starts the detail of every storage failure response.
const StorageFailurePrefix = "Failed to save contact form "

// ErrorHandler translates the last error attached to the context into a
// fixed status and body per error kind.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var validationErr *apperror.ValidationError
		var storageErr *apperror.StorageError
		var appErr *apperror.AppError

		switch {
		case errors.As(err, &validationErr):
			response.Error(c, http.StatusUnprocessableEntity, validationErr.Fields)
		case errors.As(err, &storageErr):
			response.Error(c, http.StatusInternalServerError, StorageFailurePrefix+storageErr.Error())
		case errors.As(err, &appErr):
			if appErr.Err != nil {
				logger.Log.Error("Request failed", "path", c.FullPath(), "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message)
		default:
			// Never expose internal error details to clients
			logger.Log.Error("Internal Server Error", "path", c.FullPath(), "error", err)
			response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
