package stoplist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultContainsFunctionWords(t *testing.T) {
	set := Default()
	for _, w := range []string{"the", "and", "of", "is"} {
		if _, ok := set[w]; !ok {
			t.Fatalf("expected %q in default stoplist", w)
		}
	}
	if _, ok := set["readability"]; ok {
		t.Fatalf("did not expect content word in default stoplist")
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	set := Default()
	set["zzz"] = struct{}{}
	if _, ok := Default()["zzz"]; ok {
		t.Fatalf("mutating one copy must not leak into the next")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.txt")
	content := "Foo\n\n  bar  \nBAZ\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write stoplist: %v", err)
	}
	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("expected 3 words, got %d", len(set))
	}
	for _, w := range []string{"foo", "bar", "baz"} {
		if _, ok := set[w]; !ok {
			t.Fatalf("expected lowercased %q in set", w)
		}
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n \n"), 0o644); err != nil {
		t.Fatalf("write stoplist: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for empty stoplist")
	}
}
