// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cache remembers the result of lexing a source file -- its path,
// token count, diagnostic count, and when it was lexed -- keyed by the
// SHA-256 checksum of the file's bytes. A summary does not record how long
// lexing took. A CLI run that sees the same checksum again can report when
// that content was last lexed.
//
// An in-process LRU sits in front of a sqlite-backed table so summaries
// survive across CLI invocations.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/weave-lang/weave/cerrs"
	_ "modernc.org/sqlite"
)

// Summary is the cached result of lexing one file.
type Summary struct {
	Checksum        string
	Path            string
	TokenCount      int
	DiagnosticCount int
	LexedAt         time.Time
}

// Cache is a two-tier store: an LRU front cache and a sqlite-backed table.
type Cache struct {
	front *lru.Cache[string, Summary]
	db    *sql.DB
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS lex_cache (
	checksum         TEXT PRIMARY KEY,
	path             TEXT NOT NULL,
	token_count      INTEGER NOT NULL,
	diagnostic_count INTEGER NOT NULL,
	lexed_at         INTEGER NOT NULL
)`

// Open opens (creating if necessary) the sqlite-backed cache at path and
// wraps it with an LRU front cache sized by entries.
func Open(path string, entries int) (*Cache, error) {
	if entries <= 0 {
		entries = 1
	}
	front, err := lru.New[string, Summary](entries)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("cache: open: %q: %v\n", path, err)
		return nil, err
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		log.Printf("cache: create schema: %v\n", err)
		return nil, errors.Join(cerrs.ErrCreateSchema, err)
	}

	return &Cache{front: front, db: db}, nil
}

// Close closes the underlying database handle.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Get returns the cached summary for checksum, checking the LRU front cache
// before falling back to the sqlite table.
func (c *Cache) Get(checksum string) (Summary, bool) {
	if c.db == nil {
		return Summary{}, false
	}
	if s, ok := c.front.Get(checksum); ok {
		return s, true
	}

	row := c.db.QueryRow(`SELECT path, token_count, diagnostic_count, lexed_at FROM lex_cache WHERE checksum = ?`, checksum)
	var s Summary
	var lexedAt int64
	if err := row.Scan(&s.Path, &s.TokenCount, &s.DiagnosticCount, &lexedAt); err != nil {
		return Summary{}, false
	}
	s.Checksum = checksum
	s.LexedAt = time.Unix(lexedAt, 0)
	c.front.Add(checksum, s)
	return s, true
}

// Put records a summary for checksum. A checksum already associated with a
// different path is reported via cerrs.ErrDuplicateChecksum: the cache keys
// on content, and the same content living at two paths is a caller bug, not
// something the cache should silently overwrite.
func (c *Cache) Put(s Summary) error {
	if c.db == nil {
		return cerrs.ErrCacheClosed
	}
	if existing, ok := c.Get(s.Checksum); ok && existing.Path != s.Path {
		return fmt.Errorf("%s: %w", s.Checksum, cerrs.ErrDuplicateChecksum)
	}

	_, err := c.db.Exec(
		`INSERT INTO lex_cache (checksum, path, token_count, diagnostic_count, lexed_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(checksum) DO UPDATE SET
			path = excluded.path,
			token_count = excluded.token_count,
			diagnostic_count = excluded.diagnostic_count,
			lexed_at = excluded.lexed_at`,
		s.Checksum, s.Path, s.TokenCount, s.DiagnosticCount, s.LexedAt.Unix(),
	)
	if err != nil {
		return err
	}

	c.front.Add(s.Checksum, s)
	return nil
}
