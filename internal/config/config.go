// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"reflect"

	"github.com/weave-lang/weave/cerrs"
	"github.com/weave-lang/weave/internal/lexer"
)

// Config controls how the tokenizer CLI scans source files: how much
// trivia it keeps, how its arenas are sized, where its lex-result cache
// lives, and how it logs.
type Config struct {
	// TriviaMode is one of "none", "documentation", or "all".
	TriviaMode string           `json:"TriviaMode,omitempty"`
	Arena      ArenaConfig      `json:"Arena"`
	StringPool StringPoolConfig `json:"StringPool"`
	Cache      CacheConfig      `json:"Cache"`
	Log        LogConfig        `json:"Log"`
}

// ArenaConfig sizes the byte-arena segments every Context allocates from.
type ArenaConfig struct {
	SegmentSize int `json:"SegmentSize,omitempty"`
}

// StringPoolConfig sizes a Context's identifier/literal interning table.
type StringPoolConfig struct {
	InitialBuckets int `json:"InitialBuckets,omitempty"`
}

// CacheConfig controls the on-disk cache of prior lex results, keyed by the
// SHA-256 of the scanned file's content.
type CacheConfig struct {
	Path    string `json:"Path,omitempty"`
	Entries int    `json:"Entries,omitempty"`
}

// LogConfig controls the CLI's log output.
type LogConfig struct {
	File bool `json:"File,omitempty"`
	Time bool `json:"Time,omitempty"`
}

// Default returns a Config with the tokenizer's recommended settings.
func Default() *Config {
	return &Config{
		TriviaMode: "all",
		Arena: ArenaConfig{
			SegmentSize: 64 << 10,
		},
		StringPool: StringPoolConfig{
			InitialBuckets: 4096,
		},
		Cache: CacheConfig{
			Path:    "weave-lex-cache.db",
			Entries: 4096,
		},
		Log: LogConfig{
			File: false,
			Time: true,
		},
	}
}

// LexerTriviaMode translates TriviaMode into the value the lexer package
// expects.
func (c *Config) LexerTriviaMode() (lexer.TriviaMode, error) {
	switch c.TriviaMode {
	case "", "all":
		return lexer.TriviaAll, nil
	case "none":
		return lexer.TriviaNone, nil
	case "documentation":
		return lexer.TriviaDocumentation, nil
	default:
		return lexer.TriviaAll, fmt.Errorf("%s: %w", c.TriviaMode, cerrs.ErrInvalidTriviaMode)
	}
}

// Load reads name as JSON, merging any non-zero fields it sets over
// Default's values. A missing or unreadable file is not an error; Load
// falls back to Default and logs why when debug is set.
func Load(name string, debug bool) (*Config, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", name)
	}
	cfg := Default()

	sb, err := os.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err != nil {
		return cfg, nil
	} else if sb.Mode().IsDir() {
		return cfg, cerrs.ErrIsDirectory
	} else if !sb.Mode().IsRegular() {
		return cfg, cerrs.ErrIsNotAFile
	}

	data, err := os.ReadFile(name)
	if err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	}

	var tmp Config
	if err = json.Unmarshal(data, &tmp); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		}
	}

	if tmp.TriviaMode != "" {
		if _, err = tmp.LexerTriviaMode(); err != nil {
			return nil, err
		}
	}
	if tmp.Cache.Entries < 0 {
		return nil, fmt.Errorf("cache: entries must not be negative")
	}

	copyNonZeroFields(&tmp, cfg)
	return cfg, nil
}

// copyNonZeroFields recursively copies non-zero fields from src to dst using
// reflection, so a partial config file only overrides the settings it names.
func copyNonZeroFields(src, dst interface{}) {
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)

	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if dstVal.Kind() == reflect.Ptr {
		dstVal = dstVal.Elem()
	}
	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		dstField := dstVal.Field(i)

		if !srcField.CanInterface() || !dstField.CanSet() {
			continue
		}
		if srcField.IsZero() {
			continue
		}

		switch srcField.Kind() {
		case reflect.Struct:
			copyNonZeroFields(srcField.Interface(), dstField.Addr().Interface())
		default:
			dstField.Set(srcField)
		}
	}
}
