package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SuggestRequest represents a request to the suggestion endpoint
type SuggestRequest struct {
	Text string `json:"text"`
}

// SuggestResponse represents a successful suggestion
type SuggestResponse struct {
	PredictedClassIndex   int    `json:"predicted_class_index"`
	PredictedCategoryName string `json:"predicted_category_name"`
	OriginalTextSnippet   string `json:"original_text_snippet"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status           string `json:"status"`
	ModelLoaded      bool   `json:"model_loaded"`
	VectorizerLoaded bool   `json:"vectorizer_loaded"`
}

// Healthy reports whether both artifacts are loaded
func (h *HealthResponse) Healthy() bool {
	return h.ModelLoaded && h.VectorizerLoaded
}

// APIError is returned when the service answers with a non-2xx status
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	Details    string `json:"details"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("category service returned status %d", e.StatusCode)
	}
	if e.Details != "" {
		return fmt.Sprintf("category service returned status %d: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("category service returned status %d: %s", e.StatusCode, e.Message)
}

// CategoryClient is an HTTP client for the category service
type CategoryClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCategoryClient creates a new category service client
func NewCategoryClient(baseURL string, timeout time.Duration) *CategoryClient {
	return &CategoryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SuggestCategory asks the service to categorize text
func (c *CategoryClient) SuggestCategory(ctx context.Context, text, requestID string) (*SuggestResponse, error) {
	body, err := json.Marshal(SuggestRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/suggest-category", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var result SuggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// Health checks the service health. An unhealthy service answers 500 with a
// regular health body, which is decoded and returned without error.
func (c *CategoryClient) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusInternalServerError {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// Ready checks if the service is ready
func (c *CategoryClient) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ready", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("category service not ready: status %d", resp.StatusCode)
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return apiErr
	}
	if err := json.Unmarshal(body, apiErr); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
