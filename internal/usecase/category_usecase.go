package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ressKim-io/news-category-service/internal/domain/entity"
	"github.com/ressKim-io/news-category-service/internal/domain/service"
	"github.com/ressKim-io/news-category-service/internal/domain/textnorm"
	"github.com/ressKim-io/news-category-service/internal/infrastructure/metrics"
)

// Error definitions for category usecase
var (
	ErrArtifactsNotLoaded = errors.New("model or vectorizer not loaded")
	ErrEmptyPrediction    = errors.New("model returned no prediction")
	ErrInvalidText        = errors.New("text must be a non-empty string")
)

// Stage names a step of the inference pipeline
type Stage string

const (
	StageNormalize Stage = "normalize"
	StageVectorize Stage = "vectorize"
	StagePredict   Stage = "predict"
)

// StageError is returned when a pipeline stage fails
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// SuggestCategoryInput represents the input for a category suggestion
type SuggestCategoryInput struct {
	Text string `json:"text"`
}

// SuggestCategoryOutput represents the output of a category suggestion
type SuggestCategoryOutput struct {
	PredictedClassIndex   int    `json:"predicted_class_index"`
	PredictedCategoryName string `json:"predicted_category_name"`
	OriginalTextSnippet   string `json:"original_text_snippet"`
}

// ArtifactStatus reports which artifacts are available
type ArtifactStatus struct {
	ModelLoaded      bool `json:"model_loaded"`
	VectorizerLoaded bool `json:"vectorizer_loaded"`
}

// Suggester suggests a category for a piece of text
type Suggester interface {
	Suggest(ctx context.Context, input *SuggestCategoryInput) (*SuggestCategoryOutput, error)
}

// CategoryUsecase defines the interface for category business logic
type CategoryUsecase interface {
	Suggester
	Ready() bool
	Status() *ArtifactStatus
}

type categoryUsecase struct {
	vectorizer service.Vectorizer
	classifier service.Classifier
	logger     *zap.Logger
}

// NewCategoryUsecase creates a new category usecase. Nil ports mean the
// artifacts failed to load; every suggestion then fails with
// ErrArtifactsNotLoaded.
func NewCategoryUsecase(vectorizer service.Vectorizer, classifier service.Classifier, logger *zap.Logger) CategoryUsecase {
	if vectorizer == nil || classifier == nil {
		vectorizer, classifier = nil, nil
	}
	return &categoryUsecase{
		vectorizer: vectorizer,
		classifier: classifier,
		logger:     logger,
	}
}

func (u *categoryUsecase) Ready() bool {
	return u.vectorizer != nil && u.classifier != nil
}

func (u *categoryUsecase) Status() *ArtifactStatus {
	ready := u.Ready()
	return &ArtifactStatus{
		ModelLoaded:      ready,
		VectorizerLoaded: ready,
	}
}

func (u *categoryUsecase) Suggest(ctx context.Context, input *SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if !u.Ready() {
		return nil, ErrArtifactsNotLoaded
	}
	if input == nil || textnorm.IsBlank(input.Text) {
		return nil, ErrInvalidText
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u.logger.Debug("received text", zap.String("snippet", entity.Snippet(input.Text)))

	var normalized string
	if err := u.runStage(StageNormalize, func() error {
		normalized = textnorm.Normalize(input.Text)
		return nil
	}); err != nil {
		return nil, err
	}
	u.logger.Debug("normalized text", zap.String("snippet", entity.Snippet(normalized)))

	var vectors []service.SparseVector
	if err := u.runStage(StageVectorize, func() error {
		var err error
		vectors, err = u.vectorizer.Transform([]string{normalized})
		if err != nil {
			return err
		}
		if len(vectors) != 1 {
			return fmt.Errorf("expected 1 feature vector, got %d", len(vectors))
		}
		return nil
	}); err != nil {
		return nil, err
	}

	var labels []int
	if err := u.runStage(StagePredict, func() error {
		var err error
		labels, err = u.classifier.Predict(vectors)
		if err != nil {
			return err
		}
		if len(labels) == 0 {
			return ErrEmptyPrediction
		}
		return nil
	}); err != nil {
		return nil, err
	}

	prediction := entity.NewPrediction(labels[0], input.Text)
	metrics.IncPrediction(prediction.CategoryName)
	if !prediction.IsKnownCategory() {
		u.logger.Warn("model predicted a class outside the category map", zap.Int("class_index", prediction.ClassIndex))
	}

	u.logger.Debug("predicted category",
		zap.Int("class_index", prediction.ClassIndex),
		zap.String("category", prediction.CategoryName),
	)

	return toSuggestCategoryOutput(prediction), nil
}

// runStage executes fn, converting both returned errors and panics into a
// StageError for the given stage.
func (u *categoryUsecase) runStage(stage Stage, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &StageError{Stage: stage, Err: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			metrics.IncPipelineFailure(string(stage))
			u.logger.Error("pipeline stage failed",
				zap.String("stage", string(stage)),
				zap.Error(err),
			)
		}
	}()

	if err := fn(); err != nil {
		return &StageError{Stage: stage, Err: err}
	}
	return nil
}

func toSuggestCategoryOutput(p *entity.Prediction) *SuggestCategoryOutput {
	return &SuggestCategoryOutput{
		PredictedClassIndex:   p.ClassIndex,
		PredictedCategoryName: p.CategoryName,
		OriginalTextSnippet:   p.Snippet,
	}
}
