package stoplist

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stopwords-iso.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}

func TestExtractWords(t *testing.T) {
	path := writeTestDataset(t, `{"en": ["The", "and", "the", " of ", ""], "de": ["und"]}`)
	words, err := ExtractWords(path, "EN")
	if err != nil {
		t.Fatalf("ExtractWords failed: %v", err)
	}
	expected := []string{"and", "of", "the"}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %d: %v", len(expected), len(words), words)
	}
	for i, w := range expected {
		if words[i] != w {
			t.Fatalf("expected %q at index %d, got %q", w, i, words[i])
		}
	}
}

func TestExtractWordsUnknownLang(t *testing.T) {
	path := writeTestDataset(t, `{"en": ["the"]}`)
	if _, err := ExtractWords(path, "xx"); err == nil {
		t.Fatalf("expected error for unknown language")
	}
}

func TestListLanguages(t *testing.T) {
	path := writeTestDataset(t, `{"fr": ["le"], "de": ["und"], "en": ["the"]}`)
	langs, err := ListLanguages(path)
	if err != nil {
		t.Fatalf("ListLanguages failed: %v", err)
	}
	expected := []string{"de", "en", "fr"}
	if len(langs) != len(expected) {
		t.Fatalf("expected %d langs, got %d", len(expected), len(langs))
	}
	for i, lang := range expected {
		if langs[i] != lang {
			t.Fatalf("expected %q at index %d, got %q", lang, i, langs[i])
		}
	}
}

func TestWriteListRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.txt")
	if err := WriteList(path, []string{"and", "of", "the"}); err != nil {
		t.Fatalf("WriteList failed: %v", err)
	}
	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("expected 3 words after round trip, got %d", len(set))
	}
}

func TestWriteAttribution(t *testing.T) {
	outDir := t.TempDir()
	if err := WriteAttribution(outDir); err != nil {
		t.Fatalf("WriteAttribution failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "ATTRIBUTION.txt")); err != nil {
		t.Fatalf("expected ATTRIBUTION.txt: %v", err)
	}
}
