// Package frequency tallies and ranks word occurrences.
package frequency

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/textscope/internal/model"
	"github.com/verte-zerg/textscope/internal/stoplist"
)

// Normalize case-folds a word (unless caseSensitive) and strips every
// non-alphanumeric rune. The normalized form is used for counting only,
// never for display.
func Normalize(word string, caseSensitive bool) string {
	if !caseSensitive {
		word = strings.ToLower(word)
	}
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// qualifying returns the normalized words that survive the min-length and
// stoplist filters, preserving input order. opts must be pre-normalized.
func qualifying(words []string, opts model.Options) []string {
	stop := opts.Stoplist
	if opts.ExcludeCommonWords && stop == nil {
		stop = stoplist.Default()
	}

	out := make([]string, 0, len(words))
	for _, w := range words {
		norm := Normalize(w, opts.CaseSensitive)
		if norm == "" {
			continue
		}
		if utf8.RuneCountInString(norm) < opts.MinWordLength {
			continue
		}
		if opts.ExcludeCommonWords {
			if _, ok := stop[strings.ToLower(norm)]; ok {
				continue
			}
		}
		out = append(out, norm)
	}
	return out
}

// Top builds the ranked frequency table capped at opts.TopWordCount.
// Ranking is descending by count with ties broken by first appearance;
// percentages are relative to the number of qualifying words.
func Top(words []string, opts model.Options) []model.FrequencyEntry {
	opts = opts.Normalize()
	kept := qualifying(words, opts)
	if len(kept) == 0 {
		return nil
	}

	counts := make(map[string]int, len(kept))
	firstSeen := make(map[string]int, len(kept))
	order := make([]string, 0, len(kept))
	for i, w := range kept {
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		ci, cj := counts[order[i]], counts[order[j]]
		if ci != cj {
			return ci > cj
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	n := opts.TopWordCount
	if n > len(order) {
		n = len(order)
	}
	total := float64(len(kept))
	entries := make([]model.FrequencyEntry, 0, n)
	for _, w := range order[:n] {
		entries = append(entries, model.FrequencyEntry{
			Word:       w,
			Count:      counts[w],
			Percentage: float64(counts[w]) / total * 100,
		})
	}
	return entries
}
