package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTfidfVectorizer reads a vectorizer artifact from a JSON file
func LoadTfidfVectorizer(path string) (*TfidfVectorizer, error) {
	var artifact TfidfArtifact
	if err := readJSON(path, &artifact); err != nil {
		return nil, err
	}

	vectorizer, err := NewTfidfVectorizer(&artifact)
	if err != nil {
		return nil, fmt.Errorf("invalid vectorizer artifact %s: %w", path, err)
	}
	return vectorizer, nil
}

// LoadLinearClassifier reads a classifier artifact from a JSON file and
// checks it against the vectorizer dimension.
func LoadLinearClassifier(path string, dimension int) (*LinearClassifier, error) {
	var artifact LinearArtifact
	if err := readJSON(path, &artifact); err != nil {
		return nil, err
	}

	classifier, err := NewLinearClassifier(&artifact, dimension)
	if err != nil {
		return nil, fmt.Errorf("invalid classifier artifact %s: %w", path, err)
	}
	return classifier, nil
}

func readJSON(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open artifact: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("failed to decode artifact %s: %w", path, err)
	}
	return nil
}
