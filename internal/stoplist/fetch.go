package stoplist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const isoEndpoint = "https://raw.githubusercontent.com/stopwords-iso/stopwords-iso/master/stopwords-iso.json"

// Dataset describes a cached stopwords-iso download.
type Dataset struct {
	Path   string
	Cached bool
}

// DownloadDataset fetches the stopwords-iso JSON into cacheDir, reusing a
// cached copy when one exists.
func DownloadDataset(ctx context.Context, cacheDir string) (Dataset, error) {
	if cacheDir == "" {
		return Dataset{}, fmt.Errorf("cache directory is required")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return Dataset{}, fmt.Errorf("failed to create cache dir: %w", err)
	}

	destPath := filepath.Join(cacheDir, "stopwords-iso.json")
	if _, err := os.Stat(destPath); err == nil {
		return Dataset{Path: destPath, Cached: true}, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return Dataset{}, fmt.Errorf("failed to stat cached dataset: %w", err)
	}

	tmpFile, err := os.CreateTemp(cacheDir, "stopwords-*.json")
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to create temp dataset: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	resp, err := httpRequest(ctx, isoEndpoint)
	if err != nil {
		return Dataset{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return Dataset{}, fmt.Errorf("unexpected dataset status: %s", resp.Status)
	}

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return Dataset{}, fmt.Errorf("failed to download dataset: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return Dataset{}, fmt.Errorf("failed to close temp dataset: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return Dataset{}, fmt.Errorf("failed to move dataset into cache: %w", err)
	}
	return Dataset{Path: destPath, Cached: false}, nil
}

// ListLanguages returns the language codes available in the dataset.
func ListLanguages(datasetPath string) ([]string, error) {
	byLang, err := readDataset(datasetPath)
	if err != nil {
		return nil, err
	}
	langs := make([]string, 0, len(byLang))
	for lang := range byLang {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

// ExtractWords returns the sorted stopwords for a language from the dataset.
func ExtractWords(datasetPath, lang string) ([]string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return nil, fmt.Errorf("language code is required")
	}
	byLang, err := readDataset(datasetPath)
	if err != nil {
		return nil, err
	}
	words, ok := byLang[lang]
	if !ok {
		return nil, fmt.Errorf("no stopwords available for %s", lang)
	}

	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("stopword list for %s is empty", lang)
	}
	sort.Strings(out)
	return out, nil
}

// WriteList writes one word per line to path via a temp-file rename.
func WriteList(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create stoplist dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "stoplist-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp stoplist: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	var b strings.Builder
	for _, word := range words {
		b.WriteString(word)
		b.WriteByte('\n')
	}
	if _, err := tmpFile.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to write stoplist: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close stoplist: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write stoplist: %w", err)
	}
	return nil
}

// WriteAttribution writes attribution for downloaded stopword lists.
func WriteAttribution(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	attrText := strings.Join([]string{
		"Stopword lists extracted from the stopwords-iso collection.",
		"Source: https://github.com/stopwords-iso/stopwords-iso",
		"License: MIT.",
		"Changes were made: lists were deduplicated, lowercased and sorted.",
		"",
	}, "\n")
	attrPath := filepath.Join(outDir, "ATTRIBUTION.txt")
	if err := os.WriteFile(attrPath, []byte(attrText), 0o644); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}
	return nil
}

func readDataset(path string) (map[string][]string, error) {
	if path == "" {
		return nil, fmt.Errorf("dataset path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	var byLang map[string][]string
	if err := json.Unmarshal(data, &byLang); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return byLang, nil
}

func httpRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}
