package rules

import (
	"strings"
	"unicode"

	"github.com/ste-tools/stecheck/internal/model"
	"github.com/ste-tools/stecheck/internal/nlp"
)

// Rule is a single style-rule evaluator. Check is total over well-formed
// sentence strings: it either returns a fired outcome carrying a corrected
// sentence and an explanation, or behaves as if the pattern did not match.
type Rule interface {
	Number() int
	Name() string
	Check(sentence string) model.Outcome
}

// All returns the five evaluators in their fixed pipeline order (1→5).
func All(cfg model.RulesConfig, annotator nlp.Annotator) []Rule {
	vocab := newVerbSet(cfg.InstructionVerbs)
	return []Rule{
		NewArticles(),
		NewActiveVoice(),
		NewSingleInstruction(annotator, vocab),
		NewImperative(cfg.ImperativeForms),
		NewLength(annotator, cfg.MaxWords, cfg.SplitMinIndex, cfg.SplitTailGuard),
	}
}

// verbSet is a case-insensitive vocabulary of instruction verbs.
type verbSet map[string]struct{}

func newVerbSet(verbs []string) verbSet {
	set := make(verbSet, len(verbs))
	for _, v := range verbs {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}

func (s verbSet) contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// sentenceCase uppercases the first rune and lowercases the rest.
func sentenceCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}

// capitalizeFirst uppercases the first rune when it is lowercase and leaves
// the rest of the string untouched.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if unicode.IsLower(r[0]) {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}

// joinTokens rebuilds a sentence fragment from annotated tokens. Terminal
// punctuation attaches to the preceding token instead of floating behind a
// space.
func joinTokens(tokens []nlp.Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 && !attachesLeft(t.Text) {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

func attachesLeft(tok string) bool {
	switch tok {
	case ".", ",", "!", "?", ";", ":":
		return true
	}
	return false
}
