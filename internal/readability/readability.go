// Package readability implements the Flesch readability formulas.
package readability

// Scores holds the clamped readability results for one text.
type Scores struct {
	FleschReadingEase  float64
	FleschKincaidGrade float64
	Level              string
}

type levelThreshold struct {
	minScore float64
	label    string
}

// Thresholds evaluated top-down; first match wins.
var levels = []levelThreshold{
	{90, "Very Easy"},
	{80, "Easy"},
	{70, "Fairly Easy"},
	{60, "Standard"},
	{50, "Fairly Difficult"},
	{30, "Difficult"},
}

const hardestLevel = "Very Difficult"

// Score computes both Flesch scores from the average sentence length (words
// per sentence) and the average syllables per word. The constants must not
// change: any deviation shifts every downstream score.
func Score(avgWordsPerSentence, avgSyllablesPerWord float64) Scores {
	ease := 206.835 - 1.015*avgWordsPerSentence - 84.6*avgSyllablesPerWord
	if ease < 0 {
		ease = 0
	}
	if ease > 100 {
		ease = 100
	}

	grade := 0.39*avgWordsPerSentence + 11.8*avgSyllablesPerWord - 15.59
	if grade < 0 {
		grade = 0
	}

	return Scores{
		FleschReadingEase:  ease,
		FleschKincaidGrade: grade,
		Level:              LevelFor(ease),
	}
}

// LevelFor classifies a reading-ease score into its named level.
func LevelFor(ease float64) string {
	for _, lv := range levels {
		if ease >= lv.minScore {
			return lv.label
		}
	}
	return hardestLevel
}
