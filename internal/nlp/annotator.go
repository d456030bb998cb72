package nlp

import (
	"fmt"
	"strings"
	"time"

	prose "github.com/jdkato/prose/v2"
	gocache "github.com/patrickmn/go-cache"
)

// Token is one annotated token: surface text plus its Penn Treebank POS tag.
type Token struct {
	Text string
	Tag  string
}

// IsConjunction reports whether the token is a coordinating conjunction.
func (t Token) IsConjunction() bool {
	return t.Tag == "CC"
}

// IsVerb reports whether the token carries any verb tag.
func (t Token) IsVerb() bool {
	return strings.HasPrefix(t.Tag, "VB")
}

// Annotator provides sentence segmentation and POS annotation. Rule
// evaluators depend on this capability, not on a concrete NLP library.
type Annotator interface {
	// Segment splits raw text into trimmed, non-empty sentences.
	Segment(text string) ([]string, error)

	// Annotate tokenizes a single sentence and tags each token.
	Annotate(sentence string) ([]Token, error)
}

// ProseAnnotator implements Annotator on top of the prose NLP library.
// Annotations are memoized per sentence, so the pipeline can re-annotate
// progressively corrected text without repeating tagger work. The tagger
// model is a shared read-only resource; ProseAnnotator is safe for
// concurrent use.
type ProseAnnotator struct {
	cache *gocache.Cache
}

// NewProseAnnotator creates the annotator and probes the tagger once, so a
// broken or missing model surfaces at startup instead of mid-evaluation.
func NewProseAnnotator() (*ProseAnnotator, error) {
	a := &ProseAnnotator{
		cache: gocache.New(30*time.Minute, 10*time.Minute),
	}

	tokens, err := a.Annotate("Check the unit.")
	if err != nil {
		return nil, fmt.Errorf("initialize annotator: %w", err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("initialize annotator: tagger produced no tokens")
	}

	return a, nil
}

// Segment splits text into sentences.
func (a *ProseAnnotator) Segment(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false),
	)
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}

	var sentences []string
	for _, s := range doc.Sentences() {
		if t := strings.TrimSpace(s.Text); t != "" {
			sentences = append(sentences, t)
		}
	}
	return sentences, nil
}

// Annotate returns POS-tagged tokens for the sentence.
func (a *ProseAnnotator) Annotate(sentence string) ([]Token, error) {
	if cached, found := a.cache.Get(sentence); found {
		return cached.([]Token), nil
	}

	doc, err := prose.NewDocument(sentence,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}

	raw := doc.Tokens()
	tokens := make([]Token, len(raw))
	for i, t := range raw {
		tokens[i] = Token{Text: t.Text, Tag: t.Tag}
	}

	a.cache.Set(sentence, tokens, gocache.DefaultExpiration)
	return tokens, nil
}
