// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package arena implements segment-chained bump allocation for the lexer.
//
// An Allocator owns a list of byte segments and hands out aligned, contiguous
// byte ranges from the tail segment. Individual allocations are never freed;
// the whole allocator is reclaimed at once when it becomes unreachable. This
// lets the tokenizer mint millions of tokens, trivia spans, and literal
// payloads without per-object heap churn.
package arena

import (
	"fmt"

	"github.com/weave-lang/weave/cerrs"
)

// DefaultSegmentSize is used when an Allocator is created with New(0).
const DefaultSegmentSize = 64 << 10

// segment is one contiguous allocation: a fixed-size backing buffer and a
// bump pointer (used) marking the boundary between allocated and free bytes.
type segment struct {
	buf  []byte
	used int
}

func (s *segment) remaining() int { return len(s.buf) - s.used }

// Allocator is an ordered slice of segments with bump allocation on the
// tail. Zero value is not usable; construct with New.
type Allocator struct {
	segments    []*segment
	segmentSize int
	reserved    int
}

// New creates an Allocator whose normal segments are segmentSize bytes.
// A segmentSize of 0 selects DefaultSegmentSize.
func New(segmentSize int) *Allocator {
	if segmentSize <= 0 {
		segmentSize = DefaultSegmentSize
	}
	a := &Allocator{segmentSize: segmentSize}
	a.pushSegment(a.segmentSize)
	return a
}

func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

func (a *Allocator) pushSegment(size int) *segment {
	s := &segment{buf: make([]byte, size)}
	a.segments = append(a.segments, s)
	a.reserved += size
	return s
}

// needsSeparateSegment reports whether size is large enough that it should
// get a dedicated segment rather than evicting the shared one.
func (a *Allocator) needsSeparateSegment(size int) bool {
	return size > a.segmentSize/4
}

// Allocate returns a zeroed, size-byte region aligned to align (a power of
// two). The region remains valid for the Allocator's lifetime.
func (a *Allocator) Allocate(size, align int) []byte {
	tail := a.segments[len(a.segments)-1]
	off := alignUp(tail.used, align)
	end := off + size
	if end <= len(tail.buf) {
		tail.used = end
		return tail.buf[off:end]
	}
	return a.allocateSlow(size, align)
}

// allocateSlow handles the two cases that don't fit in the tail segment's
// remaining space: a dedicated segment for large allocations (spliced before
// the tail so the tail stays the active bump target), or a fresh segment of
// the normal size.
func (a *Allocator) allocateSlow(size, align int) []byte {
	if size < 0 || align <= 0 {
		panic(fmt.Sprintf("arena: invalid allocation size=%d align=%d", size, align))
	}

	if a.needsSeparateSegment(size) {
		dedicated := size + align // enough slack to satisfy any alignment from offset 0
		if dedicated < size {
			panic(cerrs.ErrArenaOverflow)
		}
		s := &segment{buf: make([]byte, dedicated)}
		a.reserved += dedicated

		// splice `s` immediately before the current tail segment.
		tailIdx := len(a.segments) - 1
		a.segments = append(a.segments, nil)
		copy(a.segments[tailIdx+1:], a.segments[tailIdx:])
		a.segments[tailIdx] = s

		off := alignUp(0, align)
		s.used = off + size
		return s.buf[off : off+size]
	}

	a.pushSegment(a.segmentSize)
	return a.Allocate(size, align)
}

// QueryUsage reports bytes actually bumped into (allocated) versus total
// bytes reserved across all segments.
func (a *Allocator) QueryUsage() (allocated, reserved int) {
	for _, s := range a.segments {
		allocated += s.used
	}
	return allocated, a.reserved
}
