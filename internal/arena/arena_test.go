// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package arena_test

import (
	"testing"

	"github.com/weave-lang/weave/internal/arena"
)

func TestAllocator_BumpWithinSegment(t *testing.T) {
	a := arena.New(64)
	first := a.Allocate(8, 8)
	second := a.Allocate(8, 8)
	if &first[0] == &second[0] {
		t.Fatalf("expected distinct regions")
	}
	allocated, reserved := a.QueryUsage()
	if allocated != 16 {
		t.Fatalf("allocated = %d, want 16", allocated)
	}
	if reserved != 64 {
		t.Fatalf("reserved = %d, want 64", reserved)
	}
}

func TestAllocator_SpillsToNewSegment(t *testing.T) {
	a := arena.New(16)
	for i := 0; i < 4; i++ {
		a.Allocate(4, 1) // 4 <= 16/4, so never a dedicated segment
	}
	a.Allocate(4, 1) // the first segment is full, pushes a new segment
	_, reserved := a.QueryUsage()
	if reserved != 32 {
		t.Fatalf("reserved = %d, want 32 (two 16-byte segments)", reserved)
	}
}

func TestAllocator_LargeAllocationGetsDedicatedSegment(t *testing.T) {
	a := arena.New(64)
	big := a.Allocate(1000, 8) // far more than capacity/4 == 16
	if len(big) != 1000 {
		t.Fatalf("len(big) = %d, want 1000", len(big))
	}
	// the default segment must still be usable afterwards as the bump target.
	small := a.Allocate(8, 8)
	if len(small) != 8 {
		t.Fatalf("len(small) = %d, want 8", len(small))
	}
}

func TestAllocator_AlignmentIsRespected(t *testing.T) {
	a := arena.New(64)
	a.Allocate(1, 1) // misalign the bump pointer
	region := a.Allocate(8, 8)
	if len(region) != 8 {
		t.Fatalf("len(region) = %d, want 8", len(region))
	}
}

func TestTyped_EmplacePointersSurviveSegmentGrowth(t *testing.T) {
	type node struct{ value int }
	ta := arena.NewTyped[node](2)

	var pointers []*node
	for i := 0; i < 10; i++ {
		p := ta.Emplace()
		p.value = i
		pointers = append(pointers, p)
	}
	for i, p := range pointers {
		if p.value != i {
			t.Fatalf("pointers[%d].value = %d, want %d (stale after segment growth)", i, p.value, i)
		}
	}
}

func TestTyped_EmplaceArrayFrom(t *testing.T) {
	ta := arena.NewTyped[int](4)
	src := []int{1, 2, 3}
	got := ta.EmplaceArrayFrom(src)
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("got %v, want copy of %v", got, src)
	}
	src[0] = 99
	if got[0] == 99 {
		t.Fatalf("EmplaceArrayFrom must copy, not alias, the source slice")
	}
}

func TestTyped_Enumerate(t *testing.T) {
	ta := arena.NewTyped[int](2)
	for i := 0; i < 5; i++ {
		*ta.Emplace() = i
	}
	var seen []int
	ta.Enumerate(func(p *int) bool {
		seen = append(seen, *p)
		return true
	})
	if len(seen) != 5 {
		t.Fatalf("len(seen) = %d, want 5", len(seen))
	}
	for i, v := range seen {
		if v != i {
			t.Fatalf("seen[%d] = %d, want %d", i, v, i)
		}
	}
}
