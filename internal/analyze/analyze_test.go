package analyze

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/verte-zerg/textscope/internal/model"
)

func TestEmptyInputAllZero(t *testing.T) {
	stats := Text("", model.DefaultOptions())
	if !reflect.DeepEqual(stats, model.TextStatistics{}) {
		t.Fatalf("expected all-zero record for empty input, got %+v", stats)
	}
	if stats.ReadabilityLevel != "" {
		t.Fatalf("expected empty level for empty input, got %q", stats.ReadabilityLevel)
	}
}

func TestWhitespaceOnlyAllZero(t *testing.T) {
	stats := Text(" \n\t ", model.DefaultOptions())
	if !reflect.DeepEqual(stats, model.TextStatistics{}) {
		t.Fatalf("expected all-zero record for whitespace input, got %+v", stats)
	}
}

func TestHelloWorld(t *testing.T) {
	stats := Text("Hello world.", model.DefaultOptions())
	if stats.Words != 2 {
		t.Fatalf("expected 2 words, got %d", stats.Words)
	}
	if stats.Sentences != 1 {
		t.Fatalf("expected 1 sentence, got %d", stats.Sentences)
	}
	if stats.Characters != 12 || stats.CharactersNoSpace != 11 {
		t.Fatalf("unexpected character counts: %d / %d", stats.Characters, stats.CharactersNoSpace)
	}
	if stats.Paragraphs != 1 || stats.Lines != 1 {
		t.Fatalf("unexpected paragraph/line counts: %d / %d", stats.Paragraphs, stats.Lines)
	}
	if stats.AvgWordsPerSentence != 2 {
		t.Fatalf("expected avg words/sentence 2, got %f", stats.AvgWordsPerSentence)
	}
}

func TestDeterminism(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. It barked! Again?"
	opts := model.DefaultOptions()
	first := Text(text, opts)
	second := Text(text, opts)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical records, got\n%+v\n%+v", first, second)
	}
}

func TestWordCountMonotone(t *testing.T) {
	base := "Readability scores reward short plain sentences."
	prev := Text(base, model.DefaultOptions()).Words
	text := base
	for i := 0; i < 5; i++ {
		text += " appended"
		got := Text(text, model.DefaultOptions()).Words
		if got < prev {
			t.Fatalf("word count decreased after append: %d -> %d", prev, got)
		}
		prev = got
	}
}

func TestCountConsistency(t *testing.T) {
	text := "Some words repeat here, some words do not. Numbers like 42 count too!"
	stats := Text(text, model.DefaultOptions())
	if stats.CharactersNoSpace > stats.Characters {
		t.Fatalf("charactersNoSpaces %d > characters %d", stats.CharactersNoSpace, stats.Characters)
	}
	if stats.UniqueWords > stats.Words {
		t.Fatalf("uniqueWords %d > words %d", stats.UniqueWords, stats.Words)
	}
}

func TestNoPunctuationMeansZeroSentences(t *testing.T) {
	stats := Text("words without any terminal punctuation", model.DefaultOptions())
	if stats.Sentences != 0 {
		t.Fatalf("expected 0 sentences, got %d", stats.Sentences)
	}
	if stats.AvgWordsPerSentence != 0 {
		t.Fatalf("expected avg words/sentence 0, got %f", stats.AvgWordsPerSentence)
	}
	// ASL collapses to 0; the ease formula still produces a clamped score.
	if stats.FleschReadingEase < 0 || stats.FleschReadingEase > 100 {
		t.Fatalf("reading ease out of bounds: %f", stats.FleschReadingEase)
	}
}

func TestReadingTimeTwoHundredWords(t *testing.T) {
	words := make([]string, 200)
	for i := range words {
		words[i] = "word"
	}
	stats := Text(strings.Join(words, " ")+".", model.DefaultOptions())
	if stats.Words != 200 {
		t.Fatalf("expected 200 words, got %d", stats.Words)
	}
	if math.Abs(stats.ReadingTimeMinutes-1.0) > 1e-9 {
		t.Fatalf("expected reading time 1.0 minute, got %f", stats.ReadingTimeMinutes)
	}
	if stats.SpeakingTimeMinutes <= stats.ReadingTimeMinutes {
		t.Fatalf("speaking should be slower than reading: %f vs %f", stats.SpeakingTimeMinutes, stats.ReadingTimeMinutes)
	}
}

func TestLexicalDiversity(t *testing.T) {
	stats := Text("apple apple banana cherry.", model.DefaultOptions())
	if stats.UniqueWords != 3 {
		t.Fatalf("expected 3 unique words, got %d", stats.UniqueWords)
	}
	if math.Abs(stats.LexicalDiversity-75.0) > 1e-9 {
		t.Fatalf("expected diversity 75%%, got %f", stats.LexicalDiversity)
	}
}

func TestCharClassBuckets(t *testing.T) {
	stats := Text("Ab1! €", model.DefaultOptions())
	c := stats.CharClasses
	if c.Uppercase != 1 || c.Lowercase != 1 || c.Digits != 1 || c.Punctuation != 1 || c.Special != 1 {
		t.Fatalf("unexpected buckets: %+v", c)
	}
	total := c.Uppercase + c.Lowercase + c.Digits + c.Punctuation + c.Special
	if total != stats.CharactersNoSpace {
		t.Fatalf("buckets must cover all non-space characters: %d vs %d", total, stats.CharactersNoSpace)
	}
}

func TestFiniteFields(t *testing.T) {
	for _, text := range []string{"", "word", "!!!", "one. two.", "\n\n"} {
		stats := Text(text, model.DefaultOptions())
		for _, v := range []float64{
			stats.LexicalDiversity,
			stats.AvgWordsPerSentence,
			stats.AvgCharsPerWord,
			stats.AvgSentencesPerParagraph,
			stats.AvgSyllablesPerWord,
			stats.ReadingTimeMinutes,
			stats.SpeakingTimeMinutes,
			stats.FleschReadingEase,
			stats.FleschKincaidGrade,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite field for input %q: %+v", text, stats)
			}
		}
	}
}

func TestMalformedOptionsClamped(t *testing.T) {
	opts := model.Options{MinWordLength: -4, TopWordCount: 0}
	stats := Text("alpha beta gamma alpha.", opts)
	if len(stats.TopWords) != 1 {
		t.Fatalf("expected top count clamped to 1, got %d entries", len(stats.TopWords))
	}
	if stats.TopWords[0].Word != "alpha" {
		t.Fatalf("expected alpha on top, got %q", stats.TopWords[0].Word)
	}
}
