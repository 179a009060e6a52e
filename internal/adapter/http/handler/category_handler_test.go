package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ressKim-io/news-category-service/internal/usecase"
)

// MockCategoryUsecase is a mock implementation of CategoryUsecase
type MockCategoryUsecase struct {
	mock.Mock
}

func (m *MockCategoryUsecase) Suggest(ctx context.Context, input *usecase.SuggestCategoryInput) (*usecase.SuggestCategoryOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SuggestCategoryOutput), args.Error(1)
}

func (m *MockCategoryUsecase) Ready() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockCategoryUsecase) Status() *usecase.ArtifactStatus {
	args := m.Called()
	return args.Get(0).(*usecase.ArtifactStatus)
}

func setupCategoryRouter(h *CategoryHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/suggest-category", h.SuggestCategory)
	r.OPTIONS("/suggest-category", h.Preflight)
	return r
}

func postSuggest(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/suggest-category", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSuggestCategory_Success(t *testing.T) {
	mockUC := new(MockCategoryUsecase)
	router := setupCategoryRouter(NewCategoryHandler(mockUC, zap.NewNop()))

	expected := &usecase.SuggestCategoryOutput{
		PredictedClassIndex:   1,
		PredictedCategoryName: "Sports",
		OriginalTextSnippet:   "Home side wins the cup final",
	}
	mockUC.On("Ready").Return(true)
	mockUC.On("Suggest", mock.Anything, &usecase.SuggestCategoryInput{Text: "Home side wins the cup final"}).
		Return(expected, nil)

	w := postSuggest(router, `{"text": "Home side wins the cup final"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"predicted_class_index": 1,
		"predicted_category_name": "Sports",
		"original_text_snippet": "Home side wins the cup final"
	}`, w.Body.String())
	mockUC.AssertExpectations(t)
}

func TestSuggestCategory_NotLoaded(t *testing.T) {
	mockUC := new(MockCategoryUsecase)
	router := setupCategoryRouter(NewCategoryHandler(mockUC, zap.NewNop()))
	mockUC.On("Ready").Return(false)

	// readiness is checked before the body is looked at
	w := postSuggest(router, "not json")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Model or vectorizer not loaded properly on server"}`, w.Body.String())
	mockUC.AssertNotCalled(t, "Suggest", mock.Anything, mock.Anything)
}

func TestSuggestCategory_InvalidRequests(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedMessage string
	}{
		{name: "empty body", body: "", expectedMessage: MsgBodyNotJSON},
		{name: "not json", body: "text=hello", expectedMessage: MsgBodyNotJSON},
		{name: "empty object", body: "{}", expectedMessage: MsgBodyNotJSON},
		{name: "missing text", body: `{"content":"hello"}`, expectedMessage: MsgMissingText},
		{name: "number text", body: `{"text":123}`, expectedMessage: MsgInvalidText},
		{name: "blank text", body: `{"text":"   "}`, expectedMessage: MsgInvalidText},
		{name: "separator-only text", body: `{"text":"\u001c\u001d\u001e\u001f"}`, expectedMessage: MsgInvalidText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := new(MockCategoryUsecase)
			router := setupCategoryRouter(NewCategoryHandler(mockUC, zap.NewNop()))
			mockUC.On("Ready").Return(true)

			w := postSuggest(router, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMessage, resp.Error)
			assert.Empty(t, resp.Details)
			mockUC.AssertNotCalled(t, "Suggest", mock.Anything, mock.Anything)
		})
	}
}

func TestSuggestCategory_PipelineErrors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedBody string
	}{
		{
			name:         "empty prediction",
			err:          &usecase.StageError{Stage: usecase.StagePredict, Err: usecase.ErrEmptyPrediction},
			expectedBody: `{"error":"Model prediction failed"}`,
		},
		{
			name:         "vectorize failure",
			err:          &usecase.StageError{Stage: usecase.StageVectorize, Err: errors.New("bad input")},
			expectedBody: `{"error":"Error processing request on server","details":"vectorize stage failed: bad input"}`,
		},
		{
			name:         "recovered panic",
			err:          &usecase.StageError{Stage: usecase.StagePredict, Err: errors.New("panic: index out of range")},
			expectedBody: `{"error":"Error processing request on server","details":"predict stage failed: panic: index out of range"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := new(MockCategoryUsecase)
			router := setupCategoryRouter(NewCategoryHandler(mockUC, zap.NewNop()))
			mockUC.On("Ready").Return(true)
			mockUC.On("Suggest", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := postSuggest(router, `{"text":"hello"}`)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestSuggestCategory_Preflight(t *testing.T) {
	router := setupCategoryRouter(NewCategoryHandler(new(MockCategoryUsecase), zap.NewNop()))

	req, _ := http.NewRequest("OPTIONS", "/suggest-category", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
