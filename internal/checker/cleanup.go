package checker

import (
	"regexp"
	"strings"
)

var (
	reDoubledThe   = regexp.MustCompile(`(?i)\bthe\s+the\b`)
	reSpacePunct   = regexp.MustCompile(`\s+([.,!?])`)
	reDoubledStops = regexp.MustCompile(`\.\.+`)
)

// Cleanup repairs artifacts left by applying multiple rules in sequence:
// doubled articles, whitespace before punctuation, runs of periods, and the
// capitalization collision between rule 1's "This data module" insertion and
// already-capitalized input. Cleanup is idempotent.
func Cleanup(sentence string) string {
	sentence = reDoubledThe.ReplaceAllString(sentence, "the")
	sentence = reSpacePunct.ReplaceAllString(sentence, "$1")
	sentence = reDoubledStops.ReplaceAllString(sentence, ".")
	sentence = strings.ReplaceAll(sentence, "This Data module", "This data module")
	return sentence
}
