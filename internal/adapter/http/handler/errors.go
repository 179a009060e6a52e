package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/news-category-service/internal/usecase"
)

// Error messages returned to clients
const (
	MsgArtifactsNotLoaded = "Model or vectorizer not loaded properly on server"
	MsgBodyNotJSON        = "Request body must be JSON"
	MsgMissingText        = "Missing 'text' field in JSON request"
	MsgInvalidText        = "'text' field must be a non-empty string"
	MsgPredictionFailed   = "Model prediction failed"
	MsgProcessingFailed   = "Error processing request on server"
)

// ErrorMapping is the HTTP rendering of a usecase error
type ErrorMapping struct {
	StatusCode int
	Message    string
	Details    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// Pipeline failures other than an empty prediction carry the cause in Details.
func MapUsecaseError(err error) ErrorMapping {
	switch {
	case errors.Is(err, usecase.ErrArtifactsNotLoaded):
		return ErrorMapping{
			StatusCode: http.StatusInternalServerError,
			Message:    MsgArtifactsNotLoaded,
		}
	case errors.Is(err, usecase.ErrInvalidText):
		return ErrorMapping{
			StatusCode: http.StatusBadRequest,
			Message:    MsgInvalidText,
		}
	case errors.Is(err, usecase.ErrEmptyPrediction):
		return ErrorMapping{
			StatusCode: http.StatusInternalServerError,
			Message:    MsgPredictionFailed,
		}
	default:
		return ErrorMapping{
			StatusCode: http.StatusInternalServerError,
			Message:    MsgProcessingFailed,
			Details:    err.Error(),
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
func HandleUsecaseError(c *gin.Context, err error) {
	mapping := MapUsecaseError(err)
	respondErrorWithDetails(c, mapping.StatusCode, mapping.Message, mapping.Details)
}

// HandleInvalidRequest handles a client input error.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, message)
}
