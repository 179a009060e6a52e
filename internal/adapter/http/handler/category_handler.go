package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ressKim-io/news-category-service/internal/usecase"
)

// CategoryHandler handles category suggestion requests
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *zap.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryUC usecase.CategoryUsecase, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: categoryUC,
		logger:     logger,
	}
}

// SuggestCategory handles POST /suggest-category
func (h *CategoryHandler) SuggestCategory(c *gin.Context) {
	requestID := c.GetString("request_id")

	if !h.categoryUC.Ready() {
		h.logger.Error("suggest category called but artifacts not loaded",
			zap.String("request_id", requestID),
		)
		HandleUsecaseError(c, usecase.ErrArtifactsNotLoaded)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		HandleInvalidRequest(c, MsgBodyNotJSON)
		return
	}

	input, err := ParseSuggestRequest(body)
	if err != nil {
		h.logger.Debug("rejected suggestion request",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.categoryUC.Suggest(c.Request.Context(), input)
	if err != nil {
		fields := []zap.Field{zap.String("request_id", requestID), zap.Error(err)}
		var stageErr *usecase.StageError
		if errors.As(err, &stageErr) {
			fields = append(fields, zap.String("stage", string(stageErr.Stage)))
		}
		h.logger.Error("category suggestion failed", fields...)
		HandleUsecaseError(c, err)
		return
	}

	h.logger.Info("category suggested",
		zap.String("request_id", requestID),
		zap.Int("class_index", output.PredictedClassIndex),
		zap.String("category", output.PredictedCategoryName),
	)

	respondSuccess(c, http.StatusOK, output)
}

// Preflight handles OPTIONS /suggest-category
func (h *CategoryHandler) Preflight(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
