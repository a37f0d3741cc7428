// Package stoplist provides common-word lists for frequency filtering.
package stoplist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Default returns the built-in English stoplist. The returned set is a
// fresh copy; callers may extend it freely.
func Default() map[string]struct{} {
	set := make(map[string]struct{}, len(defaultWords))
	for _, w := range defaultWords {
		set[w] = struct{}{}
	}
	return set
}

// LoadFile reads one stopword per line from the provided file path. Blank
// lines are skipped; words are lowercased.
func LoadFile(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only stoplist.
			_ = cerr
		}
	}()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("stoplist is empty")
	}
	return set, nil
}

var defaultWords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
	"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
	"or", "an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
	"people", "into", "year", "your", "good", "some", "could", "them", "see", "other",
	"than", "then", "now", "look", "only", "come", "its", "over", "think", "also",
	"back", "after", "use", "two", "how", "our", "work", "first", "well", "way",
	"even", "new", "want", "because", "any", "these", "give", "day", "most", "us",
	"is", "was", "are", "been", "has", "had", "were", "said", "did", "having",
	"may", "am", "should", "too", "very",
}
