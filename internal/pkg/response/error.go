package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/brisastudio/studio-booking-backend/internal/pkg/apperror"
)

// ErrorResponse is the JSON shape of every error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes a JSON error response. AppError values map to their own
// status code and message; anything else is an opaque storage or internal
// failure, logged server-side and reported as a plain 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
