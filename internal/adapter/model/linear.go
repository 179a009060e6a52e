package model

import (
	"errors"
	"fmt"

	"github.com/ressKim-io/news-category-service/internal/domain/service"
)

// LinearArtifact is the exported form of a fitted linear classifier
type LinearArtifact struct {
	Classes   []int       `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// LinearClassifier predicts the class with the highest decision score
type LinearClassifier struct {
	classes   []int
	coef      [][]float64
	intercept []float64
}

// NewLinearClassifier validates an artifact against the vectorizer dimension
// and builds a classifier from it. A dimension of zero skips the width check.
func NewLinearClassifier(a *LinearArtifact, dimension int) (*LinearClassifier, error) {
	if a == nil {
		return nil, errors.New("classifier artifact is empty")
	}
	if len(a.Classes) < 2 {
		return nil, fmt.Errorf("classifier needs at least 2 classes, got %d", len(a.Classes))
	}

	binary := len(a.Classes) == 2 && len(a.Coef) == 1
	if !binary && len(a.Coef) != len(a.Classes) {
		return nil, fmt.Errorf("classifier has %d coefficient rows for %d classes", len(a.Coef), len(a.Classes))
	}
	if len(a.Intercept) != len(a.Coef) {
		return nil, fmt.Errorf("classifier has %d intercepts for %d coefficient rows", len(a.Intercept), len(a.Coef))
	}

	width := len(a.Coef[0])
	for i, row := range a.Coef {
		if len(row) != width {
			return nil, fmt.Errorf("coefficient row %d has %d columns, expected %d", i, len(row), width)
		}
	}
	if dimension > 0 && width != dimension {
		return nil, fmt.Errorf("classifier expects %d features, vectorizer produces %d", width, dimension)
	}

	return &LinearClassifier{
		classes:   a.Classes,
		coef:      a.Coef,
		intercept: a.Intercept,
	}, nil
}

// Classes returns the class labels
func (c *LinearClassifier) Classes() []int {
	out := make([]int, len(c.classes))
	copy(out, c.classes)
	return out
}

// Predict returns the predicted class label for each vector
func (c *LinearClassifier) Predict(vectors []service.SparseVector) ([]int, error) {
	width := len(c.coef[0])
	labels := make([]int, 0, len(vectors))

	for i, vec := range vectors {
		for idx := range vec {
			if idx < 0 || idx >= width {
				return nil, fmt.Errorf("vector %d has feature %d outside [0,%d)", i, idx, width)
			}
		}
		labels = append(labels, c.predictOne(vec))
	}
	return labels, nil
}

func (c *LinearClassifier) predictOne(vec service.SparseVector) int {
	if len(c.coef) == 1 {
		if vec.Dot(c.coef[0])+c.intercept[0] > 0 {
			return c.classes[1]
		}
		return c.classes[0]
	}

	best := 0
	bestScore := vec.Dot(c.coef[0]) + c.intercept[0]
	for k := 1; k < len(c.coef); k++ {
		// strict comparison keeps the first class on ties
		if score := vec.Dot(c.coef[k]) + c.intercept[k]; score > bestScore {
			best, bestScore = k, score
		}
	}
	return c.classes[best]
}
