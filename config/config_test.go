package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "koma.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, Default()); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
dictionary:
  dir: /usr/share/koma
  files:
    extension: user.dic
analysis:
  exact_match: true
  bigrammable: false
  compound_cache_size: 0
index:
  flush_threshold: 50
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	expected := Default()
	expected.Dictionary.Dir = "/usr/share/koma"
	expected.Dictionary.Files.Extension = "user.dic"
	expected.Analysis.ExactMatch = true
	expected.Analysis.Bigrammable = false
	expected.Analysis.CompoundCacheSize = 0
	expected.Index.FlushThreshold = 50
	expected.Log = LogConfig{Level: "debug", Format: "json"}
	if diff := cmp.Diff(cfg, expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
storage:
  db: from_file
`)
	t.Setenv("KOMA_STORAGE_DB", "from_env")
	t.Setenv("KOMA_ANALYSIS_HAS_ORIGIN", "false")
	t.Setenv("KOMA_ANALYSIS_MAX_TOKEN_LENGTH", "64")
	t.Setenv("KOMA_METRICS_ENABLED", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.DB != "from_env" {
		t.Errorf("Storage.DB = %v, want from_env", cfg.Storage.DB)
	}
	if cfg.Analysis.HasOrigin {
		t.Error("Analysis.HasOrigin = true, want false")
	}
	if cfg.Analysis.MaxTokenLength != 64 {
		t.Errorf("Analysis.MaxTokenLength = %v, want 64", cfg.Analysis.MaxTokenLength)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want true")
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		body string
		env  map[string]string
	}{
		{body: "analysis:\n  max_token_length: 0\n"},
		{body: "log:\n  format: xml\n"},
		{body: "log:\n  level: trace\n"},
		{body: "index:\n  flush_threshold: -1\n"},
		{body: "dictionary:\n  dir: /tmp\n  files:\n    total: \"\"\n"},
		{body: "metrics:\n  enabled: true\n  addr: \"\"\n"},
		{env: map[string]string{"KOMA_ANALYSIS_EXACT_MATCH": "maybe"}},
		{env: map[string]string{"KOMA_INDEX_FLUSH_THRESHOLD": "many"}},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("body = %q, env = %v", tt.body, tt.env), func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, want %v", err, ErrInvalid)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() error = nil")
	}
}
