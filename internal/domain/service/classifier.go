package service

// SparseVector maps a feature column to its weight; absent columns are zero
type SparseVector map[int]float64

// Dot returns the dot product of the vector with a dense row
func (v SparseVector) Dot(row []float64) float64 {
	var sum float64
	for idx, weight := range v {
		if idx >= 0 && idx < len(row) {
			sum += weight * row[idx]
		}
	}
	return sum
}

// Vectorizer defines the interface for turning normalized text into features
type Vectorizer interface {
	// Transform converts each document into a feature vector
	Transform(docs []string) ([]SparseVector, error)

	// Dimension returns the number of feature columns
	Dimension() int
}

// Classifier defines the interface for predicting a class from features
type Classifier interface {
	// Predict returns one class label per vector. An empty result means the
	// model produced no prediction.
	Predict(vectors []SparseVector) ([]int, error)

	// Classes returns the class labels the model can emit
	Classes() []int
}
