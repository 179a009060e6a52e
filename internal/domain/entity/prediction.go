package entity

// SnippetLength is the maximum number of characters of the original input
// echoed back in a prediction.
const SnippetLength = 100

// Prediction represents a category suggestion for a piece of text
type Prediction struct {
	ClassIndex   int    `json:"predicted_class_index"`
	CategoryName string `json:"predicted_category_name"`
	Snippet      string `json:"original_text_snippet"`
}

// NewPrediction creates a Prediction for the given class index, resolving the
// category name and truncating the original text.
func NewPrediction(classIndex int, originalText string) *Prediction {
	return &Prediction{
		ClassIndex:   classIndex,
		CategoryName: CategoryName(classIndex),
		Snippet:      Snippet(originalText),
	}
}

// Snippet returns at most SnippetLength characters (runes) of text
func Snippet(text string) string {
	count := 0
	for i := range text {
		if count == SnippetLength {
			return text[:i]
		}
		count++
	}
	return text
}

// IsKnownCategory returns true if the class index has a name in the category map
func (p *Prediction) IsKnownCategory() bool {
	return p.CategoryName != UnknownCategory
}
