// Package artifact loads the vectorizer and classifier the service predicts
// with. Loading never aborts startup: a failure leaves the Set unloaded and the
// service keeps answering /health with the failure visible.
package artifact

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ressKim-io/news-category-service/internal/adapter/model"
	"github.com/ressKim-io/news-category-service/internal/domain/service"
	"github.com/ressKim-io/news-category-service/internal/infrastructure/config"
	"github.com/ressKim-io/news-category-service/internal/infrastructure/metrics"
)

// Set is the outcome of a load attempt. Vectorizer and Classifier are either
// both set or both nil.
type Set struct {
	Vectorizer service.Vectorizer
	Classifier service.Classifier
	Err        error
}

// Ready reports whether both artifacts are usable
func (s *Set) Ready() bool {
	return s != nil && s.Vectorizer != nil && s.Classifier != nil
}

// Load reads both artifacts named by cfg. It checks that both files exist
// before decoding either, and on any failure returns an empty Set carrying
// the error.
func Load(cfg *config.ModelConfig, logger *zap.Logger) *Set {
	logger.Info("loading model artifacts",
		zap.String("vectorizer_path", cfg.VectorizerPath),
		zap.String("classifier_path", cfg.ClassifierPath),
	)

	set, err := load(cfg)
	if err != nil {
		logger.Error("failed to load model artifacts", zap.Error(err))
		metrics.SetArtifactsLoaded(false)
		return &Set{Err: err}
	}

	logger.Info("model artifacts loaded",
		zap.Int("features", set.Vectorizer.Dimension()),
		zap.Ints("classes", set.Classifier.Classes()),
	)
	metrics.SetArtifactsLoaded(true)
	return set
}

func load(cfg *config.ModelConfig) (*Set, error) {
	for _, path := range []string{cfg.VectorizerPath, cfg.ClassifierPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("artifact not found at %s: %w", path, err)
		}
	}

	vectorizer, err := model.LoadTfidfVectorizer(cfg.VectorizerPath)
	if err != nil {
		return nil, err
	}

	classifier, err := model.LoadLinearClassifier(cfg.ClassifierPath, vectorizer.Dimension())
	if err != nil {
		return nil, err
	}

	return &Set{Vectorizer: vectorizer, Classifier: classifier}, nil
}
