// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package stringpool implements content-addressed interning of byte strings
// on top of the arena allocator, so the lexer can deduplicate identifiers and
// literal text without per-token heap allocation.
package stringpool

import (
	"hash/fnv"

	"github.com/weave-lang/weave/internal/arena"
)

// DefaultBuckets is the initial bucket-table size.
const DefaultBuckets = 4096

// RehashFactor controls when the table grows: a rehash happens once
// count > buckets/RehashFactor.
const RehashFactor = 4

// entry is one chained hash-table node. Chain nodes live in a typed arena;
// the interned bytes themselves live in the untyped byte arena so their
// lifetime matches the pool's, not the caller's.
type entry struct {
	next  *entry
	value []byte
	hash  uint64
}

// Pool interns byte strings. Equal-by-bytes inputs always return the same
// slice (same pointer, same length), so callers may compare interned values
// by pointer instead of by content.
type Pool struct {
	storage *arena.Allocator
	entries *arena.Typed[entry]
	buckets []*entry
	count   int
}

// New creates a Pool with the default bucket-table size.
func New() *Pool {
	return NewSize(DefaultBuckets)
}

// NewSize creates a Pool whose bucket table starts with the given size; a
// size of 0 or less selects DefaultBuckets.
func NewSize(buckets int) *Pool {
	if buckets <= 0 {
		buckets = DefaultBuckets
	}
	return &Pool{
		storage: arena.New(0),
		entries: arena.NewTyped[entry](0),
		buckets: make([]*entry, buckets),
	}
}

func hashBytes(value []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(value)
	return h.Sum64()
}

// Get interns value, returning the pool-owned, stable slice for it. The
// returned slice must not be mutated by the caller.
func (p *Pool) Get(value []byte) []byte {
	hash := hashBytes(value)
	idx := hash % uint64(len(p.buckets))

	for e := p.buckets[idx]; e != nil; e = e.next {
		if e.hash == hash && string(e.value) == string(value) {
			return e.value
		}
	}

	stored := p.storage.Allocate(len(value), 1)
	copy(stored, value)

	node := p.entries.Emplace()
	node.next = p.buckets[idx]
	node.value = stored
	node.hash = hash
	p.buckets[idx] = node
	p.count++

	if p.count > len(p.buckets)/RehashFactor {
		p.rehash()
	}

	return stored
}

// GetString is a convenience wrapper for Get that avoids an explicit
// []byte(s) conversion at call sites.
func (p *Pool) GetString(s string) []byte {
	return p.Get([]byte(s))
}

func (p *Pool) rehash() {
	newBuckets := make([]*entry, len(p.buckets)*2)

	p.entries.Enumerate(func(e *entry) bool {
		idx := e.hash % uint64(len(newBuckets))
		// re-link: preserve node identity, only the bucket head changes.
		next := newBuckets[idx]
		e.next = next
		newBuckets[idx] = e
		return true
	})

	p.buckets = newBuckets
}

// Count returns the number of distinct interned strings.
func (p *Pool) Count() int {
	return p.count
}

// Enumerate visits every interned string in unspecified order.
func (p *Pool) Enumerate(fn func(value []byte) bool) {
	p.entries.Enumerate(func(e *entry) bool {
		return fn(e.value)
	})
}

// QueryUsage reports allocated and reserved bytes across the byte storage,
// the chain-node arena, and the bucket-pointer table.
func (p *Pool) QueryUsage() (allocated, reserved int) {
	allocated, reserved = p.storage.QueryUsage()

	entryAllocated, entryReserved := p.entries.QueryUsage(entrySize)
	allocated += entryAllocated
	reserved += entryReserved

	bucketBytes := len(p.buckets) * pointerSize
	allocated += bucketBytes
	reserved += bucketBytes

	return allocated, reserved
}

// entrySize and pointerSize are rough, platform-independent stand-ins for
// sizeof(entry) and sizeof(*entry) used only for memory-usage reporting;
// they do not need to be exact.
const (
	entrySize   = 40
	pointerSize = 8
)
