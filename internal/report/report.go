// Package report renders analysis results as text and JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/textscope/internal/model"
)

const (
	sparkChars  = " .:-=+*#%@"
	maxBarWidth = 20
)

// Render writes the full multi-line report. Every numeric field of the
// statistics record appears in the output. width bounds the top-words bar
// column; values <= 0 fall back to a default.
func Render(w io.Writer, stats model.TextStatistics, width int) error {
	lines := []string{"Text Statistics", ""}

	counts := [][]string{
		{"Characters", fmt.Sprintf("%d", stats.Characters)},
		{"Characters (no spaces)", fmt.Sprintf("%d", stats.CharactersNoSpace)},
		{"Words", fmt.Sprintf("%d", stats.Words)},
		{"Unique words", fmt.Sprintf("%d", stats.UniqueWords)},
		{"Syllables", fmt.Sprintf("%d", stats.Syllables)},
		{"Sentences", fmt.Sprintf("%d", stats.Sentences)},
		{"Paragraphs", fmt.Sprintf("%d", stats.Paragraphs)},
		{"Lines", fmt.Sprintf("%d", stats.Lines)},
	}
	lines = append(lines, formatTable([]string{"Counts", ""}, counts, map[int]bool{1: true})...)
	lines = append(lines, "")

	averages := [][]string{
		{"Words / sentence", fmt.Sprintf("%.2f", stats.AvgWordsPerSentence)},
		{"Characters / word", fmt.Sprintf("%.2f", stats.AvgCharsPerWord)},
		{"Sentences / paragraph", fmt.Sprintf("%.2f", stats.AvgSentencesPerParagraph)},
		{"Syllables / word", fmt.Sprintf("%.2f", stats.AvgSyllablesPerWord)},
		{"Lexical diversity", fmt.Sprintf("%.1f%%", stats.LexicalDiversity)},
		{"Reading time", formatMinutes(stats.ReadingTimeMinutes)},
		{"Speaking time", formatMinutes(stats.SpeakingTimeMinutes)},
	}
	lines = append(lines, formatTable([]string{"Averages", ""}, averages, map[int]bool{1: true})...)
	lines = append(lines, "")

	classes := [][]string{
		{"Uppercase", fmt.Sprintf("%d", stats.CharClasses.Uppercase)},
		{"Lowercase", fmt.Sprintf("%d", stats.CharClasses.Lowercase)},
		{"Digits", fmt.Sprintf("%d", stats.CharClasses.Digits)},
		{"Punctuation", fmt.Sprintf("%d", stats.CharClasses.Punctuation)},
		{"Special", fmt.Sprintf("%d", stats.CharClasses.Special)},
	}
	lines = append(lines, formatTable([]string{"Character Classes", ""}, classes, map[int]bool{1: true})...)
	lines = append(lines, "")

	level := stats.ReadabilityLevel
	if level == "" {
		level = "n/a"
	}
	readability := [][]string{
		{"Flesch Reading Ease", fmt.Sprintf("%.1f", stats.FleschReadingEase)},
		{"Flesch-Kincaid Grade", fmt.Sprintf("%.1f", stats.FleschKincaidGrade)},
		{"Level", level},
	}
	lines = append(lines, formatTable([]string{"Readability", ""}, readability, map[int]bool{1: true})...)
	lines = append(lines, "")

	lines = append(lines, topWordLines(stats.TopWords, width)...)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderJSON writes the indented JSON encoding of the record.
func RenderJSON(w io.Writer, stats model.TextStatistics) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}

func topWordLines(entries []model.FrequencyEntry, width int) []string {
	if len(entries) == 0 {
		return []string{"Top Words", "No qualifying words."}
	}
	barWidth := maxBarWidth
	if width > 0 && width/3 < barWidth {
		barWidth = width / 3
	}
	if barWidth < 1 {
		barWidth = 1
	}
	maxCount := entries[0].Count
	for _, e := range entries[1:] {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Word,
			fmt.Sprintf("%d", e.Count),
			fmt.Sprintf("%.1f%%", e.Percentage),
			countBar(e.Count, maxCount, barWidth),
		})
	}
	lines := []string{"Top Words"}
	return append(lines, formatTable([]string{"Word", "Count", "Share", ""}, rows, map[int]bool{1: true, 2: true})...)
}

// countBar renders a proportional bar for one frequency entry.
func countBar(count, maxCount, width int) string {
	if maxCount <= 0 || width <= 0 {
		return ""
	}
	filled := int(math.Round(float64(count) / float64(maxCount) * float64(width)))
	if filled < 1 {
		filled = 1
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("#", filled)
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func formatMinutes(minutes float64) string {
	if minutes <= 0 {
		return "0s"
	}
	totalSeconds := int(math.Round(minutes * 60))
	if totalSeconds < 60 {
		return fmt.Sprintf("%ds", totalSeconds)
	}
	return fmt.Sprintf("%dm %ds", totalSeconds/60, totalSeconds%60)
}
