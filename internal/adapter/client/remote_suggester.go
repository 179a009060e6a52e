package client

import (
	"context"

	"github.com/ressKim-io/news-category-service/internal/usecase"
)

// RemoteSuggester adapts CategoryClient to the Suggester interface
type RemoteSuggester struct {
	client *CategoryClient
}

// NewRemoteSuggester creates a new RemoteSuggester
func NewRemoteSuggester(client *CategoryClient) usecase.Suggester {
	return &RemoteSuggester{client: client}
}

// Suggest asks the remote service for a category
func (s *RemoteSuggester) Suggest(ctx context.Context, input *usecase.SuggestCategoryInput) (*usecase.SuggestCategoryOutput, error) {
	resp, err := s.client.SuggestCategory(ctx, input.Text, "")
	if err != nil {
		return nil, err
	}

	return &usecase.SuggestCategoryOutput{
		PredictedClassIndex:   resp.PredictedClassIndex,
		PredictedCategoryName: resp.PredictedCategoryName,
		OriginalTextSnippet:   resp.OriginalTextSnippet,
	}, nil
}
