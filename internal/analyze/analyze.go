// Package analyze assembles the full text statistics record.
package analyze

import (
	"unicode"

	"github.com/verte-zerg/textscope/internal/frequency"
	"github.com/verte-zerg/textscope/internal/model"
	"github.com/verte-zerg/textscope/internal/readability"
	"github.com/verte-zerg/textscope/internal/syllable"
	"github.com/verte-zerg/textscope/internal/tokenize"
)

// Text runs the full analysis pipeline over one text snapshot. Pure and
// deterministic: the same text and options always produce the same record,
// every numeric field is finite, and zero-word input yields the all-zero
// record with an empty readability level.
func Text(text string, opts model.Options) model.TextStatistics {
	opts = opts.Normalize()
	ts := tokenize.Split(text)
	if len(ts.Words) == 0 {
		return model.TextStatistics{}
	}

	words := len(ts.Words)
	sentences := len(ts.Sentences)
	paragraphs := len(ts.Paragraphs)
	syllables := syllable.Total(ts.Words)

	uniqueWords := countUnique(ts.Words, opts.CaseSensitive)

	stats := model.TextStatistics{
		Characters:        ts.Characters,
		CharactersNoSpace: ts.CharactersNoSpace,
		Words:             words,
		Sentences:         sentences,
		Paragraphs:        paragraphs,
		Lines:             ts.Lines,

		UniqueWords:      uniqueWords,
		LexicalDiversity: ratio(uniqueWords, words) * 100,
		Syllables:        syllables,

		AvgWordsPerSentence:      ratio(words, sentences),
		AvgCharsPerWord:          ratio(ts.CharactersNoSpace, words),
		AvgSentencesPerParagraph: ratio(sentences, paragraphs),
		AvgSyllablesPerWord:      ratio(syllables, words),

		ReadingTimeMinutes:  float64(words) / model.ReadingWPM,
		SpeakingTimeMinutes: float64(words) / model.SpeakingWPM,

		CharClasses: classifyChars(text),
		TopWords:    frequency.Top(ts.Words, opts),
	}

	scores := readability.Score(stats.AvgWordsPerSentence, stats.AvgSyllablesPerWord)
	stats.FleschReadingEase = scores.FleschReadingEase
	stats.FleschKincaidGrade = scores.FleschKincaidGrade
	stats.ReadabilityLevel = scores.Level
	return stats
}

// ratio implements the zero-denominator policy: undefined averages are 0.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func countUnique(words []string, caseSensitive bool) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		norm := frequency.Normalize(w, caseSensitive)
		if norm == "" {
			continue
		}
		seen[norm] = struct{}{}
	}
	return len(seen)
}

// classifyChars assigns every non-whitespace character to exactly one of
// five buckets.
func classifyChars(text string) model.CharClassCounts {
	var c model.CharClassCounts
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
		case unicode.IsUpper(r):
			c.Uppercase++
		case unicode.IsLower(r):
			c.Lowercase++
		case unicode.IsDigit(r):
			c.Digits++
		case unicode.IsPunct(r):
			c.Punctuation++
		default:
			c.Special++
		}
	}
	return c
}
