package model

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/ressKim-io/news-category-service/internal/domain/service"
)

// Supported vector norms
const (
	NormL2   = "l2"
	NormL1   = "l1"
	NormNone = "none"
)

// DefaultMinTokenLength is the shortest token kept when an artifact does not
// say otherwise
const DefaultMinTokenLength = 2

// defaultTokenPattern matches runs of two or more word characters
var defaultTokenPattern = tokenPatternFor(DefaultMinTokenLength)

func tokenPatternFor(minLength int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`[\p{L}\p{N}_]{%d,}`, minLength))
}

// TfidfArtifact is the exported form of a fitted TF-IDF vectorizer.
// A zero MinTokenLength means DefaultMinTokenLength.
type TfidfArtifact struct {
	Vocabulary     map[string]int `json:"vocabulary"`
	IDF            []float64      `json:"idf"`
	NgramRange     [2]int         `json:"ngram_range"`
	StopWords      []string       `json:"stop_words,omitempty"`
	SublinearTF    bool           `json:"sublinear_tf"`
	Norm           string         `json:"norm"`
	MinTokenLength int            `json:"min_token_length,omitempty"`
}

// TfidfVectorizer converts normalized text into TF-IDF weighted sparse vectors
type TfidfVectorizer struct {
	vocabulary  map[string]int
	idf         []float64
	minN        int
	maxN        int
	stopWords   map[string]struct{}
	sublinearTF bool
	norm        string
	tokens      *regexp.Regexp
}

// NewTfidfVectorizer validates an artifact and builds a vectorizer from it
func NewTfidfVectorizer(a *TfidfArtifact) (*TfidfVectorizer, error) {
	if a == nil {
		return nil, errors.New("vectorizer artifact is empty")
	}
	if len(a.Vocabulary) == 0 {
		return nil, errors.New("vectorizer vocabulary is empty")
	}
	if len(a.IDF) != len(a.Vocabulary) {
		return nil, fmt.Errorf("vectorizer idf has %d entries, vocabulary has %d", len(a.IDF), len(a.Vocabulary))
	}
	for term, idx := range a.Vocabulary {
		if idx < 0 || idx >= len(a.IDF) {
			return nil, fmt.Errorf("vocabulary term %q has column %d outside [0,%d)", term, idx, len(a.IDF))
		}
	}

	minN, maxN := a.NgramRange[0], a.NgramRange[1]
	if minN == 0 && maxN == 0 {
		minN, maxN = 1, 1
	}
	if minN < 1 || maxN < minN {
		return nil, fmt.Errorf("invalid ngram_range [%d, %d]", minN, maxN)
	}

	norm := strings.ToLower(a.Norm)
	switch norm {
	case "":
		norm = NormL2
	case NormL2, NormL1, NormNone:
	default:
		return nil, fmt.Errorf("unsupported norm %q", a.Norm)
	}

	tokens := defaultTokenPattern
	switch {
	case a.MinTokenLength < 0:
		return nil, fmt.Errorf("invalid min_token_length %d", a.MinTokenLength)
	case a.MinTokenLength > 0 && a.MinTokenLength != DefaultMinTokenLength:
		tokens = tokenPatternFor(a.MinTokenLength)
	}

	stopWords := make(map[string]struct{}, len(a.StopWords))
	for _, w := range a.StopWords {
		stopWords[w] = struct{}{}
	}

	return &TfidfVectorizer{
		vocabulary:  a.Vocabulary,
		idf:         a.IDF,
		minN:        minN,
		maxN:        maxN,
		stopWords:   stopWords,
		sublinearTF: a.SublinearTF,
		norm:        norm,
		tokens:      tokens,
	}, nil
}

// Dimension returns the number of feature columns
func (v *TfidfVectorizer) Dimension() int {
	return len(v.idf)
}

// Transform converts each document into a TF-IDF vector
func (v *TfidfVectorizer) Transform(docs []string) ([]service.SparseVector, error) {
	vectors := make([]service.SparseVector, len(docs))
	for i, doc := range docs {
		vectors[i] = v.transformOne(doc)
	}
	return vectors, nil
}

func (v *TfidfVectorizer) transformOne(doc string) service.SparseVector {
	counts := make(service.SparseVector)
	for _, term := range v.terms(doc) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}

	for idx, tf := range counts {
		if v.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		counts[idx] = tf * v.idf[idx]
	}

	v.normalize(counts)
	return counts
}

// terms tokenizes doc, drops stop words and expands word n-grams
func (v *TfidfVectorizer) terms(doc string) []string {
	raw := v.tokens.FindAllString(doc, -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := v.stopWords[tok]; !stop {
			tokens = append(tokens, tok)
		}
	}

	if v.minN == 1 && v.maxN == 1 {
		return tokens
	}

	var terms []string
	for n := v.minN; n <= v.maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

func (v *TfidfVectorizer) normalize(vec service.SparseVector) {
	var total float64
	switch v.norm {
	case NormL2:
		for _, w := range vec {
			total += w * w
		}
		total = math.Sqrt(total)
	case NormL1:
		for _, w := range vec {
			total += math.Abs(w)
		}
	default:
		return
	}

	if total == 0 {
		return
	}
	for idx, w := range vec {
		vec[idx] = w / total
	}
}
