package tokenize

import "testing"

func TestSplitEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t "} {
		ts := Split(input)
		if ts.Characters != 0 || ts.CharactersNoSpace != 0 {
			t.Fatalf("expected zero character counts for %q, got %+v", input, ts)
		}
		if len(ts.Words) != 0 || len(ts.Sentences) != 0 || len(ts.Paragraphs) != 0 || ts.Lines != 0 {
			t.Fatalf("expected zero tokens for %q, got %+v", input, ts)
		}
	}
}

func TestSplitHelloWorld(t *testing.T) {
	ts := Split("Hello world.")
	if ts.Characters != 12 {
		t.Fatalf("expected 12 characters, got %d", ts.Characters)
	}
	if ts.CharactersNoSpace != 11 {
		t.Fatalf("expected 11 characters without spaces, got %d", ts.CharactersNoSpace)
	}
	if len(ts.Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(ts.Words))
	}
	if len(ts.Sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(ts.Sentences))
	}
	if ts.Lines != 1 {
		t.Fatalf("expected 1 line, got %d", ts.Lines)
	}
}

func TestSplitSentences(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"One. Two! Three?", 3},
		{"Ellipsis... still one fragment after", 2},
		{"no terminal punctuation here", 0},
		{"Trailing. ", 1},
		{"!!!", 0},
	}
	for _, tc := range cases {
		ts := Split(tc.input)
		if len(ts.Sentences) != tc.want {
			t.Fatalf("%q: expected %d sentences, got %d", tc.input, tc.want, len(ts.Sentences))
		}
	}
}

func TestSplitParagraphsAndLines(t *testing.T) {
	text := "First paragraph\nstill first.\n\nSecond paragraph.\n\n\nThird."
	ts := Split(text)
	if len(ts.Paragraphs) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d: %q", len(ts.Paragraphs), ts.Paragraphs)
	}
	if ts.Lines != 7 {
		t.Fatalf("expected 7 lines, got %d", ts.Lines)
	}
}

func TestSplitBlankLineWithSpaces(t *testing.T) {
	ts := Split("one\n   \ntwo")
	if len(ts.Paragraphs) != 2 {
		t.Fatalf("expected whitespace-only line to separate paragraphs, got %d", len(ts.Paragraphs))
	}
}

func TestSplitUnicodeCharacters(t *testing.T) {
	ts := Split("héllo wörld")
	if ts.Characters != 11 {
		t.Fatalf("expected rune count 11, got %d", ts.Characters)
	}
	if ts.CharactersNoSpace != 10 {
		t.Fatalf("expected 10 non-space runes, got %d", ts.CharactersNoSpace)
	}
}
