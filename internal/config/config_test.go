package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.Analysis.MinWordLength != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[analysis]
min-word-length = 4
exclude-common = false
top-words = 5
stoplist-lang = "de"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Analysis.MinWordLength == nil || *cfg.Analysis.MinWordLength != 4 {
		t.Fatalf("unexpected min-word-length: %+v", cfg.Analysis.MinWordLength)
	}
	if cfg.Analysis.ExcludeCommon == nil || *cfg.Analysis.ExcludeCommon {
		t.Fatalf("expected exclude-common false")
	}
	if cfg.Analysis.TopWords == nil || *cfg.Analysis.TopWords != 5 {
		t.Fatalf("unexpected top-words: %+v", cfg.Analysis.TopWords)
	}
	if cfg.Analysis.StoplistLang == nil || *cfg.Analysis.StoplistLang != "de" {
		t.Fatalf("unexpected stoplist-lang: %+v", cfg.Analysis.StoplistLang)
	}
	if cfg.Analysis.CaseSensitive != nil {
		t.Fatalf("unset keys must stay nil")
	}
}

func TestXDGPathsHonorEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/xdg-config", "textscope", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/xdg-data", "textscope", "textscope.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
	if got := DefaultStoplistPath("en"); got != filepath.Join("/tmp/xdg-config", "textscope", "stoplists", "en.txt") {
		t.Fatalf("unexpected stoplist path: %s", got)
	}
}
