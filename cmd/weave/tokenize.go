// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/weave-lang/weave/cerrs"
	"github.com/weave-lang/weave/internal/cache"
	"github.com/weave-lang/weave/internal/diag"
	"github.com/weave-lang/weave/internal/lexer"
	"github.com/weave-lang/weave/internal/source"
	"github.com/weave-lang/weave/internal/token"
)

// stdoutMu serializes printToken's writes to stdout across goroutines
// tokenizing files concurrently, so the lines printed for one token are never
// split by another file's output. It is held per token, not per file: when
// several files are tokenized at once, their tokens may alternate in stdout.
var stdoutMu sync.Mutex

var argsTokenize struct {
	showTrivia bool
	noCache    bool
}

var cmdTokenize = &cobra.Command{
	Use:   "tokenize <files...>",
	Short: "Tokenize one or more source files",
	Long:  `Lex each file into a token stream, printing tokens and diagnostics.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTokenize(args)
	},
}

func runTokenize(paths []string) error {
	runID := uuid.New()

	var lexCache *cache.Cache
	if !argsTokenize.noCache {
		c, err := cache.Open(globalConfig.Cache.Path, globalConfig.Cache.Entries)
		if err != nil {
			log.Printf("[%s] cache: %v (continuing without a cache)\n", runID, err)
		} else {
			lexCache = c
			defer func() { _ = lexCache.Close() }()
		}
	}

	const maxConcurrency = 8
	sem := make(chan struct{}, maxConcurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, path := range paths {
		path := path
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			log.Printf("[%s] tokenizing %q\n", runID, path)
			if err := tokenizeFile(path, lexCache); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				log.Printf("[%s] %q: %v\n", runID, path, err)
			}
		}()
	}
	wg.Wait()

	return firstErr
}

func tokenizeFile(path string, lexCache *cache.Cache) error {
	if err := validateFilePath(path); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	if lexCache != nil {
		if prior, ok := lexCache.Get(checksum); ok {
			log.Printf("%s: seen before at %s (%d tokens, %d diagnostics)\n",
				path, prior.LexedAt.Format(time.RFC3339), prior.TokenCount, prior.DiagnosticCount)
		}
	}

	triviaMode, err := globalConfig.LexerTriviaMode()
	if err != nil {
		return err
	}

	text := source.New(data)
	ctx := lexer.NewContextSize(triviaMode, globalConfig.Arena.SegmentSize, globalConfig.StringPool.InitialBuckets)
	sink := diag.NewConsoleSinkColor(os.Stderr, path, text, isColorEnabled())

	started := time.Now()
	tokens := lexer.TokenizeAll(text, ctx, sink)
	elapsed := time.Since(started)

	for _, tok := range tokens {
		printToken(path, text, tok)
	}

	usage := ctx.QueryMemoryUsage()
	fmt.Fprintf(os.Stdout, "%s: %d tokens, %d diagnostics, %s allocated of %s reserved, %s\n",
		path, len(tokens), sink.Count(), humanize.Bytes(uint64(usage.Allocated)), humanize.Bytes(uint64(usage.Reserved)), elapsed)

	if lexCache != nil {
		err := lexCache.Put(cache.Summary{
			Checksum:        checksum,
			Path:            path,
			TokenCount:      len(tokens),
			DiagnosticCount: sink.Count(),
			LexedAt:         time.Now(),
		})
		if err != nil {
			log.Printf("%s: cache: %v\n", path, err)
		}
	}

	return nil
}

// validateFilePath rejects an empty path, a path naming a directory, or a
// path naming something other than a regular file, before it ever reaches
// os.ReadFile. Mirrors the checks config.Load applies to weave.json.
func validateFilePath(path string) error {
	if path == "" {
		return cerrs.ErrInvalidPath
	}
	sb, err := os.Stat(path)
	if err != nil {
		return err
	}
	if sb.Mode().IsDir() {
		return fmt.Errorf("%s: %w", path, cerrs.ErrIsDirectory)
	}
	if !sb.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, cerrs.ErrIsNotAFile)
	}
	return nil
}

func isColorEnabled() bool {
	if argsRoot.noColor {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printToken writes one line describing tok: its kind, its line:column
// position, and -- for literal and identifier kinds -- a short summary of
// its payload.
func printToken(path string, text *source.Text, tok *token.Token) {
	pos := text.GetLinePosition(tok.Source.Start)

	stdoutMu.Lock()
	defer stdoutMu.Unlock()

	fmt.Fprintf(os.Stdout, "%s:%d:%d: %s%s\n", path, pos.Line+1, pos.Column+1, tok.Kind, payloadSummary(tok))

	if argsTokenize.showTrivia && tok.Trivia != nil {
		for _, trv := range tok.Trivia.Leading {
			fmt.Fprintf(os.Stdout, "  leading %s %v\n", trv.Kind, trv.Source)
		}
		for _, trv := range tok.Trivia.Trailing {
			fmt.Fprintf(os.Stdout, "  trailing %s %v\n", trv.Kind, trv.Source)
		}
	}
}

func payloadSummary(tok *token.Token) string {
	switch tok.Kind {
	case token.IntegerLiteral:
		if lit, ok := tok.Integer(); ok {
			return fmt.Sprintf(" %s%s%s", lit.Prefix, lit.Digits, lit.Suffix)
		}
	case token.FloatLiteral:
		if lit, ok := tok.Float(); ok {
			return fmt.Sprintf(" %s%s", lit.Digits, lit.Suffix)
		}
	case token.StringLiteral:
		if lit, ok := tok.StringValue(); ok {
			return fmt.Sprintf(" %q", string(lit.Value))
		}
	case token.CharacterLiteral:
		if lit, ok := tok.Character(); ok {
			return fmt.Sprintf(" %q%s", lit.Value, lit.Suffix)
		}
	case token.Identifier:
		if lit, ok := tok.Identifier(); ok {
			return fmt.Sprintf(" %s", lit.Value)
		}
	}
	if tok.HasErrors() {
		return " (errors)"
	}
	return ""
}
