package rules

import (
	"errors"
	"strings"

	"github.com/ste-tools/stecheck/internal/nlp"
)

// fakeAnnotator tokenizes by whitespace, detaches trailing punctuation, and
// tags coordinating conjunctions as CC. Clause-initial words (sentence start,
// after a conjunction, after a period) are tagged VB, the way imperatives
// are tagged; everything else is NN. Deterministic stand-in for the tagger
// so rule tests do not depend on model behavior.
type fakeAnnotator struct{}

func (fakeAnnotator) Segment(text string) ([]string, error) {
	var sentences []string
	for _, line := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			sentences = append(sentences, t)
		}
	}
	return sentences, nil
}

func (fakeAnnotator) Annotate(sentence string) ([]nlp.Token, error) {
	var texts []string
	for _, field := range strings.Fields(sentence) {
		word := field
		var punct []string
		for len(word) > 0 {
			last := word[len(word)-1]
			if last == '.' || last == ',' || last == '!' || last == '?' {
				punct = append([]string{string(last)}, punct...)
				word = word[:len(word)-1]
				continue
			}
			break
		}
		if word != "" {
			texts = append(texts, word)
		}
		texts = append(texts, punct...)
	}

	tokens := make([]nlp.Token, len(texts))
	for i, text := range texts {
		tokens[i] = nlp.Token{Text: text, Tag: fakeTag(tokens, i, text)}
	}
	return tokens, nil
}

func fakeTag(tokens []nlp.Token, i int, text string) string {
	switch strings.ToLower(text) {
	case "and", "but", "or":
		return "CC"
	case ".", ",", "!", "?":
		return text
	}
	if i == 0 || tokens[i-1].Tag == "CC" || tokens[i-1].Text == "." {
		return "VB"
	}
	return "NN"
}

// failingAnnotator always errors, for degraded-path tests.
type failingAnnotator struct{}

func (failingAnnotator) Segment(string) ([]string, error) {
	return nil, errors.New("tagger unavailable")
}

func (failingAnnotator) Annotate(string) ([]nlp.Token, error) {
	return nil, errors.New("tagger unavailable")
}
