// Package syllable estimates syllable counts with a vowel-group heuristic.
package syllable

import (
	"strings"
	"unicode"
)

const vowels = "aeiouy"

// Count estimates the syllables in a single word. The heuristic counts
// maximal vowel runs, subtracts a trailing silent 'e', and clamps to a
// minimum of one for any word containing letters. Words without letters
// return 0. Deterministic and intentionally approximate.
func Count(word string) int {
	cleaned := stripNonLetters(strings.ToLower(word))
	if cleaned == "" {
		return 0
	}

	groups := 0
	prevVowel := false
	for _, r := range cleaned {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			groups++
		}
		prevVowel = isVowel
	}

	if strings.HasSuffix(cleaned, "e") && groups > 1 {
		groups--
	}
	if groups < 1 {
		groups = 1
	}
	return groups
}

// Total sums syllable estimates across words.
func Total(words []string) int {
	total := 0
	for _, w := range words {
		total += Count(w)
	}
	return total
}

func stripNonLetters(word string) string {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
