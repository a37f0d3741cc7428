// Package tokenize splits raw text into words, sentences, paragraphs and lines.
package tokenize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	sentenceRe  = regexp.MustCompile(`[.!?]+`)
	paragraphRe = regexp.MustCompile(`\n[ \t]*\n+`)
)

// TokenSet holds the derived token sequences for one input string. Counts
// are always consistent with the input; empty or whitespace-only input
// yields the zero value.
type TokenSet struct {
	Characters        int
	CharactersNoSpace int
	Words             []string
	Sentences         []string
	Paragraphs        []string
	Lines             int
}

// Split tokenizes raw text. It never fails; degenerate input produces the
// zero TokenSet.
func Split(text string) TokenSet {
	if strings.TrimSpace(text) == "" {
		return TokenSet{}
	}

	ts := TokenSet{
		Words: strings.Fields(text),
		Lines: strings.Count(text, "\n") + 1,
	}
	for _, r := range text {
		ts.Characters++
		if !unicode.IsSpace(r) {
			ts.CharactersNoSpace++
		}
	}
	// Without at least one terminator the whole text is zero sentences,
	// not one.
	if sentenceRe.MatchString(text) {
		ts.Sentences = nonBlank(sentenceRe.Split(text, -1))
	}
	ts.Paragraphs = nonBlank(paragraphRe.Split(text, -1))
	return ts
}

func nonBlank(fragments []string) []string {
	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if strings.TrimSpace(f) != "" {
			out = append(out, f)
		}
	}
	return out
}
