package middleware

import (
	"errors"
	"net/http"

	"salon-relay-backend/internal/delivery/http/response"
	"salon-relay-backend/pkg/apperror"
	"salon-relay-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				// Upstream detail stays in the server log only
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"request_id", c.GetString("RequestID"),
					"error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Never expose internal error details to clients: log the actual
		// error and send a generic message.
		logger.Log.Error("unhandled error",
			"request_id", c.GetString("RequestID"),
			"error", err)
		response.Error(c, http.StatusInternalServerError, "Произошла непредвиденная ошибка. Попробуйте позже.")
	}
}
