// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/weave-lang/weave/internal/config"
	"github.com/weave-lang/weave/internal/lexer"
)

func TestLoad(t *testing.T) {
	t.Run("non-existent file", func(t *testing.T) {
		cfg, err := config.Load("non-existent-file.json", false)
		if err != nil {
			t.Errorf("expected no error for non-existent file, got %v", err)
		}
		if cfg.Arena.SegmentSize != config.Default().Arena.SegmentSize {
			t.Errorf("expected default arena segment size, got %d", cfg.Arena.SegmentSize)
		}
	})

	t.Run("directory error", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := config.Load(tmpDir, false)
		if err == nil {
			t.Errorf("expected error for directory, got nil")
		}
	})

	t.Run("empty config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")
		if err := os.WriteFile(configFile, []byte("{}"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, false)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if cfg.Cache.Entries != config.Default().Cache.Entries {
			t.Errorf("expected default cache entries, got %d", cfg.Cache.Entries)
		}
	})

	t.Run("partial config", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")

		testConfig := config.Config{
			Cache: config.CacheConfig{Entries: 9000},
		}
		data, err := json.Marshal(testConfig)
		if err != nil {
			t.Fatalf("failed to marshal test config: %v", err)
		}
		if err = os.WriteFile(configFile, data, 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, false)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if cfg.Cache.Entries != 9000 {
			t.Errorf("expected cache entries 9000, got %d", cfg.Cache.Entries)
		}
		// untouched field should remain at its default
		if cfg.Arena.SegmentSize != config.Default().Arena.SegmentSize {
			t.Errorf("expected default arena segment size to survive a partial override")
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")
		if err := os.WriteFile(configFile, []byte("not json"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, true)
		if err != nil {
			t.Errorf("expected no error for invalid JSON, got %v", err)
		}
		if cfg.Cache.Entries != config.Default().Cache.Entries {
			t.Errorf("expected default config for invalid JSON")
		}
	})

	t.Run("invalid trivia mode rejected", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")
		if err := os.WriteFile(configFile, []byte(`{"TriviaMode":"bogus"}`), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		if _, err := config.Load(configFile, false); err == nil {
			t.Errorf("expected an error for an invalid trivia mode")
		}
	})
}

func TestLexerTriviaMode(t *testing.T) {
	cases := map[string]lexer.TriviaMode{
		"":              lexer.TriviaAll,
		"all":           lexer.TriviaAll,
		"none":          lexer.TriviaNone,
		"documentation": lexer.TriviaDocumentation,
	}
	for mode, want := range cases {
		cfg := &config.Config{TriviaMode: mode}
		got, err := cfg.LexerTriviaMode()
		if err != nil {
			t.Errorf("TriviaMode %q: unexpected error %v", mode, err)
		}
		if got != want {
			t.Errorf("TriviaMode %q = %v, want %v", mode, got, want)
		}
	}

	cfg := &config.Config{TriviaMode: "bogus"}
	if _, err := cfg.LexerTriviaMode(); err == nil {
		t.Errorf("expected an error for an invalid trivia mode")
	}
}
