package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "lottery-data-backend/internal/common/errors"
	"lottery-data-backend/internal/common/logger"
)

// respondError translates an application error into an HTTP status and a
// JSON body carrying the error code and message.
func respondError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Wrap(err, apperrors.ErrCodeInternal, "unexpected error")
	}

	status := statusForCode(appErr.Code)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(appErr).Str("path", c.Request.URL.Path).Msg("Request failed")
	} else {
		logger.Warn().Err(appErr).Str("path", c.Request.URL.Path).Msg("Request rejected")
	}

	c.AbortWithStatusJSON(status, gin.H{
		"code":  appErr.Code,
		"error": appErr.Message,
	})
}

func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeNoDataFile, apperrors.ErrCodeBackupNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeMalformedData:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
