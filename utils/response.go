package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hms-backend/apperrors"
)

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// JSONAppError maps the service error taxonomy onto HTTP status codes.
// Unclassified errors are treated as store failures.
func JSONAppError(c *gin.Context, err error) {
	appErr := apperrors.Get(err)
	if appErr == nil {
		log.Printf("unclassified error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeValidation:
		JSONError(c, http.StatusBadRequest, appErr.Message)
	case apperrors.ErrCodeConflict:
		JSONError(c, http.StatusConflict, appErr.Message)
	case apperrors.ErrCodeNotFound:
		JSONError(c, http.StatusNotFound, appErr.Message)
	default:
		log.Printf("store error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
		JSONError(c, http.StatusInternalServerError, appErr.Message)
	}
}
