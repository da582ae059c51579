package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Dedup       DedupConfig       `yaml:"dedup"`
	Fetcher     FetcherConfig     `yaml:"fetcher"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

// DedupConfig holds the tunables of the transcript deduplication core.
// Defaults were chosen empirically against auto-generated caption tracks;
// validate against a representative corpus before changing them.
type DedupConfig struct {
	PatternThreshold  float64 `yaml:"pattern_threshold"`
	SentenceThreshold float64 `yaml:"sentence_threshold"`
	MaxPatternWindow  int     `yaml:"max_pattern_window"`
	MinPatternWindow  int     `yaml:"min_pattern_window"`
	MinContentWordLen int     `yaml:"min_content_word_length"`
	FingerprintWidth  int     `yaml:"fingerprint_width"`
}

type FetcherConfig struct {
	BinaryPath     string `yaml:"binary_path"`
	Language       string `yaml:"language"`
	SubtitleFormat string `yaml:"subtitle_format"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates the YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Dedup.PatternThreshold < 0 || c.Dedup.PatternThreshold > 1 {
		return fmt.Errorf("dedup.pattern_threshold must be between 0 and 1")
	}
	if c.Dedup.SentenceThreshold < 0 || c.Dedup.SentenceThreshold > 1 {
		return fmt.Errorf("dedup.sentence_threshold must be between 0 and 1")
	}
	if c.Dedup.MinPatternWindow < 0 || c.Dedup.MaxPatternWindow < 0 {
		return fmt.Errorf("dedup pattern windows must not be negative")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Dedup.PatternThreshold == 0 {
		c.Dedup.PatternThreshold = 0.85
	}
	if c.Dedup.SentenceThreshold == 0 {
		c.Dedup.SentenceThreshold = 0.8
	}
	if c.Dedup.MaxPatternWindow == 0 {
		c.Dedup.MaxPatternWindow = 20
	}
	if c.Dedup.MinPatternWindow == 0 {
		c.Dedup.MinPatternWindow = 2
	}
	if c.Dedup.MinContentWordLen == 0 {
		c.Dedup.MinContentWordLen = 3
	}
	if c.Dedup.FingerprintWidth == 0 {
		c.Dedup.FingerprintWidth = 5
	}
	if c.Dedup.MinPatternWindow > c.Dedup.MaxPatternWindow {
		return fmt.Errorf("dedup.min_pattern_window must not exceed dedup.max_pattern_window")
	}
	if c.Fetcher.BinaryPath == "" {
		c.Fetcher.BinaryPath = "yt-dlp"
	}
	if c.Fetcher.Language == "" {
		c.Fetcher.Language = "en"
	}
	if c.Fetcher.SubtitleFormat == "" {
		c.Fetcher.SubtitleFormat = "vtt"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
