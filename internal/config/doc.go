// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package config manages JSON configuration loading for the tokenizer CLI.
// It handles arena and string-pool sizing, trivia retention, the lex-result
// cache, and logging, loaded from a weave.json file with sensible defaults.
package config
