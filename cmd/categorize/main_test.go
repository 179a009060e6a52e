package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/news-category-service/internal/usecase"
)

const (
	vectorizerJSON = `{"vocabulary":{"stocks":0,"rally":1,"earnings":2,"match":3},"idf":[1,2,1,1],"norm":"l2"}`
	classifierJSON = `{"classes":[0,1,2,3],"coef":[[0,0,0,0],[0,0,0,2],[1,1,1,0],[0,0,0,0]],"intercept":[0.1,0,0,0]}`
)

func writeArtifacts(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vec := filepath.Join(dir, "tfidf_vectorizer.json")
	clf := filepath.Join(dir, "news_classifier_model.json")
	require.NoError(t, os.WriteFile(vec, []byte(vectorizerJSON), 0o600))
	require.NoError(t, os.WriteFile(clf, []byte(classifierJSON), 0o600))
	return vec, clf
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPredictCmd(t *testing.T) {
	vec, clf := writeArtifacts(t)

	t.Run("prints prediction", func(t *testing.T) {
		out, err := execute(t, "predict", "--vectorizer", vec, "--classifier", clf, "Stocks", "rally", "on", "earnings")

		require.NoError(t, err)
		var result usecase.SuggestCategoryOutput
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, 2, result.PredictedClassIndex)
		assert.Equal(t, "Business", result.PredictedCategoryName)
		assert.Equal(t, "Stocks rally on earnings", result.OriginalTextSnippet)
	})

	t.Run("missing artifacts", func(t *testing.T) {
		_, err := execute(t, "predict", "--vectorizer", filepath.Join(t.TempDir(), "nope.json"), "--classifier", clf, "text")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load artifacts")
	})

	t.Run("blank text", func(t *testing.T) {
		_, err := execute(t, "predict", "--vectorizer", vec, "--classifier", clf, "  ")

		assert.Error(t, err)
	})

	t.Run("requires text", func(t *testing.T) {
		_, err := execute(t, "predict")

		assert.Error(t, err)
	})
}

func TestInspectCmd(t *testing.T) {
	vec, clf := writeArtifacts(t)

	out, err := execute(t, "inspect", "--vectorizer", vec, "--classifier", clf)

	require.NoError(t, err)
	assert.Contains(t, out, "features: 4")
	assert.Contains(t, out, "0\tWorld")
	assert.Contains(t, out, "3\tSci/Tech")
	assert.NotContains(t, out, "unpredicted categories")
}

func TestInspectCmd_BinaryModel(t *testing.T) {
	vec, _ := writeArtifacts(t)
	clf := filepath.Join(t.TempDir(), "binary.json")
	require.NoError(t, os.WriteFile(clf, []byte(`{"classes":[1,2],"coef":[[0,0,1,-1]],"intercept":[0]}`), 0o600))

	out, err := execute(t, "inspect", "--vectorizer", vec, "--classifier", clf)

	require.NoError(t, err)
	assert.Contains(t, out, "classes:\n  1\tSports\n  2\tBusiness\n")
	assert.Contains(t, out, "unpredicted categories:\n  0\tWorld\n  3\tSci/Tech\n")
}

func TestSuggestCmd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/suggest-category", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"predicted_class_index":1,"predicted_category_name":"Sports","original_text_snippet":"match day"}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	out, err := execute(t, "suggest", "--url", server.URL, "match", "day")

	require.NoError(t, err)
	assert.Contains(t, out, `"predicted_category_name": "Sports"`)
}

func TestHealthCmd(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte(`{"status":"AI Service OK","model_loaded":true,"vectorizer_loaded":true}`))
			require.NoError(t, err)
		}))
		defer server.Close()

		out, err := execute(t, "health", "--url", server.URL)

		require.NoError(t, err)
		assert.Contains(t, out, "AI Service OK")
	})

	t.Run("unhealthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, err := w.Write([]byte(`{"status":"AI Service ERROR","model_loaded":false,"vectorizer_loaded":false}`))
			require.NoError(t, err)
		}))
		defer server.Close()

		out, err := execute(t, "health", "--url", server.URL)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "service unhealthy")
		assert.Contains(t, out, "AI Service ERROR")
	})
}
