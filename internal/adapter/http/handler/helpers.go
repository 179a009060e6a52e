package handler

import (
	"encoding/json"
	"errors"

	"github.com/ressKim-io/news-category-service/internal/domain/textnorm"
	"github.com/ressKim-io/news-category-service/internal/usecase"
)

// TextField is the request key holding the text to categorize
const TextField = "text"

// Request validation errors, in the order they are checked
var (
	ErrBodyNotJSON = errors.New(MsgBodyNotJSON)
	ErrMissingText = errors.New(MsgMissingText)
	ErrInvalidText = errors.New(MsgInvalidText)
)

// ParseSuggestRequest validates a raw suggestion request body.
// An empty body, malformed JSON, null, a non-object or an empty object is
// ErrBodyNotJSON. A text value that is not a string (null included) or is
// blank after trimming is ErrInvalidText.
func ParseSuggestRequest(body []byte) (*usecase.SuggestCategoryInput, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return nil, ErrBodyNotJSON
	}

	raw, ok := fields[TextField]
	if !ok {
		return nil, ErrMissingText
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, ErrInvalidText
	}
	text, ok := value.(string)
	if !ok || textnorm.IsBlank(text) {
		return nil, ErrInvalidText
	}

	return &usecase.SuggestCategoryInput{Text: text}, nil
}
