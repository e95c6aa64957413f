// Package config はYAMLの設定ファイルと KOMA_* 環境変数から設定を読み込む
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kotaroooo0/koma/dictionary"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Tagger     TaggerConfig     `yaml:"tagger"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Index      IndexConfig      `yaml:"index"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// DictionaryConfig の Dir が空なら組み込みの辞書を使う
type DictionaryConfig struct {
	Dir   string           `yaml:"dir"`
	Files dictionary.Files `yaml:"files"`
}

// TaggerConfig の File が空なら組み込みの規則を使う
type TaggerConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"`
}

type AnalysisConfig struct {
	ExactMatch        bool `yaml:"exact_match"`
	Bigrammable       bool `yaml:"bigrammable"`
	HasOrigin         bool `yaml:"has_origin"`
	HasCNoun          bool `yaml:"has_cnoun"`
	MaxTokenLength    int  `yaml:"max_token_length"`
	CompoundCacheSize int  `yaml:"compound_cache_size"`
}

type IndexConfig struct {
	// メモリ上の転置インデックスのトークン数がこれを超えたら書き出す
	FlushThreshold int `yaml:"flush_threshold"`
}

type StorageConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Addr     string `yaml:"addr"`
	Port     string `yaml:"port"`
	DB       string `yaml:"db"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load は path が空ならデフォルト値と環境変数だけで設定を作る
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			Files: dictionary.DefaultFiles(),
		},
		Tagger: TaggerConfig{
			Enabled: true,
		},
		Analysis: AnalysisConfig{
			Bigrammable:       true,
			HasOrigin:         true,
			HasCNoun:          true,
			MaxTokenLength:    255,
			CompoundCacheSize: 1024,
		},
		Index: IndexConfig{
			FlushThreshold: 1000,
		},
		Storage: StorageConfig{
			User:     "root",
			Password: "password",
			Addr:     "127.0.0.1",
			Port:     "3306",
			DB:       "koma",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9090",
		},
	}
}

func (c *Config) Validate() error {
	switch {
	case c.Dictionary.Dir != "" && c.Dictionary.Files.Total == "":
		return fmt.Errorf("%w: dictionary.files.total is required", ErrInvalid)
	case c.Analysis.MaxTokenLength <= 0:
		return fmt.Errorf("%w: analysis.max_token_length must be positive", ErrInvalid)
	case c.Analysis.CompoundCacheSize < 0:
		return fmt.Errorf("%w: analysis.compound_cache_size must not be negative", ErrInvalid)
	case c.Index.FlushThreshold < 0:
		return fmt.Errorf("%w: index.flush_threshold must not be negative", ErrInvalid)
	case c.Metrics.Enabled && c.Metrics.Addr == "":
		return fmt.Errorf("%w: metrics.addr is required", ErrInvalid)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	strs := map[string]*string{
		"KOMA_DICTIONARY_DIR":   &cfg.Dictionary.Dir,
		"KOMA_TAGGER_FILE":      &cfg.Tagger.File,
		"KOMA_STORAGE_USER":     &cfg.Storage.User,
		"KOMA_STORAGE_PASSWORD": &cfg.Storage.Password,
		"KOMA_STORAGE_ADDR":     &cfg.Storage.Addr,
		"KOMA_STORAGE_PORT":     &cfg.Storage.Port,
		"KOMA_STORAGE_DB":       &cfg.Storage.DB,
		"KOMA_LOG_LEVEL":        &cfg.Log.Level,
		"KOMA_LOG_FORMAT":       &cfg.Log.Format,
		"KOMA_METRICS_ADDR":     &cfg.Metrics.Addr,
	}
	for key, p := range strs {
		if v := os.Getenv(key); v != "" {
			*p = v
		}
	}

	bools := map[string]*bool{
		"KOMA_TAGGER_ENABLED":       &cfg.Tagger.Enabled,
		"KOMA_ANALYSIS_EXACT_MATCH": &cfg.Analysis.ExactMatch,
		"KOMA_ANALYSIS_BIGRAMMABLE": &cfg.Analysis.Bigrammable,
		"KOMA_ANALYSIS_HAS_ORIGIN":  &cfg.Analysis.HasOrigin,
		"KOMA_ANALYSIS_HAS_CNOUN":   &cfg.Analysis.HasCNoun,
		"KOMA_METRICS_ENABLED":      &cfg.Metrics.Enabled,
	}
	for key, p := range bools {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
		}
		*p = b
	}

	ints := map[string]*int{
		"KOMA_ANALYSIS_MAX_TOKEN_LENGTH":    &cfg.Analysis.MaxTokenLength,
		"KOMA_ANALYSIS_COMPOUND_CACHE_SIZE": &cfg.Analysis.CompoundCacheSize,
		"KOMA_INDEX_FLUSH_THRESHOLD":        &cfg.Index.FlushThreshold,
	}
	for key, p := range ints {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
		}
		*p = n
	}
	return nil
}
