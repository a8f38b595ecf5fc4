package advisor

import (
	"strings"
	"unicode/utf8"
)

// minKeywordLength drops short filler words ("the", "are", "you") without a
// stopword list.
const minKeywordLength = 4

// ExtractKeywords lower-cases text, splits it on whitespace and keeps the
// words of at least minKeywordLength characters in their original order.
// Duplicates are kept. An utterance without such words yields nil.
func ExtractKeywords(text string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(word) >= minKeywordLength {
			keywords = append(keywords, word)
		}
	}
	return keywords
}
