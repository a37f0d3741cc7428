// Package model defines shared data structures.
package model

import "time"

// Default analysis options.
const (
	DefaultMinWordLength = 3
	DefaultTopWordCount  = 10
	ReadingWPM           = 200
	SpeakingWPM          = 130
)

// Options controls word normalization and frequency ranking.
type Options struct {
	MinWordLength      int
	ExcludeCommonWords bool
	CaseSensitive      bool
	TopWordCount       int
	Stoplist           map[string]struct{}
}

// DefaultOptions returns the documented defaults with no custom stoplist.
func DefaultOptions() Options {
	return Options{
		MinWordLength:      DefaultMinWordLength,
		ExcludeCommonWords: true,
		CaseSensitive:      false,
		TopWordCount:       DefaultTopWordCount,
	}
}

// Normalize clamps malformed option values to the nearest valid ones.
func (o Options) Normalize() Options {
	if o.MinWordLength < 1 {
		o.MinWordLength = 1
	}
	if o.TopWordCount < 1 {
		o.TopWordCount = 1
	}
	return o
}

// FrequencyEntry is one ranked word in the frequency table.
type FrequencyEntry struct {
	Word       string  `json:"word"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CharClassCounts buckets every non-whitespace character of the input.
type CharClassCounts struct {
	Uppercase   int `json:"uppercase"`
	Lowercase   int `json:"lowercase"`
	Digits      int `json:"digits"`
	Punctuation int `json:"punctuation"`
	Special     int `json:"special"`
}

// TextStatistics is the full result record for one analysis. It is built
// fresh per call, never mutated afterwards, and safe to JSON-encode.
type TextStatistics struct {
	Characters        int `json:"characters"`
	CharactersNoSpace int `json:"charactersNoSpaces"`
	Words             int `json:"words"`
	Sentences         int `json:"sentences"`
	Paragraphs        int `json:"paragraphs"`
	Lines             int `json:"lines"`

	UniqueWords      int     `json:"uniqueWords"`
	LexicalDiversity float64 `json:"lexicalDiversity"`
	Syllables        int     `json:"syllables"`

	AvgWordsPerSentence      float64 `json:"avgWordsPerSentence"`
	AvgCharsPerWord          float64 `json:"avgCharsPerWord"`
	AvgSentencesPerParagraph float64 `json:"avgSentencesPerParagraph"`
	AvgSyllablesPerWord      float64 `json:"avgSyllablesPerWord"`

	ReadingTimeMinutes  float64 `json:"readingTimeMinutes"`
	SpeakingTimeMinutes float64 `json:"speakingTimeMinutes"`

	CharClasses CharClassCounts  `json:"charClasses"`
	TopWords    []FrequencyEntry `json:"topWords"`

	FleschReadingEase  float64 `json:"fleschReadingEase"`
	FleschKincaidGrade float64 `json:"fleschKincaidGrade"`
	ReadabilityLevel   string  `json:"readabilityLevel"`
}

// Snapshot is one persisted analysis summary.
type Snapshot struct {
	ID        int64
	CreatedAt time.Time
	Label     string
	Stats     TextStatistics
}

// HistoryFilter selects snapshots for listing.
type HistoryFilter struct {
	Since *time.Time
	Last  int
	Label string
}
