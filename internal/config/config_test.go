package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing input path",
			config: Config{
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing output path",
			config: Config{
				Paths: PathsConfig{
					Input: "data/input",
				},
			},
			wantErr: true,
		},
		{
			name: "pattern threshold out of range",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
				Dedup: DedupConfig{
					PatternThreshold: 1.5,
				},
			},
			wantErr: true,
		},
		{
			name: "min window above max window",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
				Dedup: DedupConfig{
					MinPatternWindow: 30,
					MaxPatternWindow: 20,
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Dedup.PatternThreshold != 0.85 {
		t.Errorf("PatternThreshold = %v, want 0.85", cfg.Dedup.PatternThreshold)
	}
	if cfg.Dedup.SentenceThreshold != 0.8 {
		t.Errorf("SentenceThreshold = %v, want 0.8", cfg.Dedup.SentenceThreshold)
	}
	if cfg.Dedup.MaxPatternWindow != 20 {
		t.Errorf("MaxPatternWindow = %v, want 20", cfg.Dedup.MaxPatternWindow)
	}
	if cfg.Dedup.MinPatternWindow != 2 {
		t.Errorf("MinPatternWindow = %v, want 2", cfg.Dedup.MinPatternWindow)
	}
	if cfg.Dedup.FingerprintWidth != 5 {
		t.Errorf("FingerprintWidth = %v, want 5", cfg.Dedup.FingerprintWidth)
	}
	if cfg.Fetcher.BinaryPath != "yt-dlp" {
		t.Errorf("BinaryPath = %v, want yt-dlp", cfg.Fetcher.BinaryPath)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  input: "data/input"
  output: "data/output"

dedup:
  pattern_threshold: 0.9
  sentence_threshold: 0.75
  max_pattern_window: 15

fetcher:
  binary_path: "/usr/local/bin/yt-dlp"
  language: "en"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if cfg.Dedup.PatternThreshold != 0.9 {
		t.Errorf("PatternThreshold = %v, want 0.9", cfg.Dedup.PatternThreshold)
	}
	if cfg.Dedup.MaxPatternWindow != 15 {
		t.Errorf("MaxPatternWindow = %v, want 15", cfg.Dedup.MaxPatternWindow)
	}
	if cfg.Fetcher.BinaryPath != "/usr/local/bin/yt-dlp" {
		t.Errorf("BinaryPath = %v, want /usr/local/bin/yt-dlp", cfg.Fetcher.BinaryPath)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
