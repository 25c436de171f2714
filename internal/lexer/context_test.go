// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer_test

import (
	"testing"

	"github.com/weave-lang/weave/internal/lexer"
	"github.com/weave-lang/weave/internal/source"
	"github.com/weave-lang/weave/internal/token"
)

func TestContext_CreateSharesEmptyTriviaRange(t *testing.T) {
	ctx := lexer.NewContext()
	a := ctx.Create(token.Plus, source.Span{Start: 0, End: 1}, nil, nil)
	b := ctx.Create(token.Minus, source.Span{Start: 1, End: 2}, nil, nil)
	if a.Trivia != b.Trivia {
		t.Errorf("expected both tokens to share the same empty TriviaRange pointer")
	}
	if !a.Trivia.Empty() {
		t.Errorf("expected the shared TriviaRange to be Empty")
	}
}

func TestContext_CreateMissing(t *testing.T) {
	ctx := lexer.NewContext()
	tok := ctx.CreateMissing(token.Semicolon, 5)
	if !tok.IsMissing() {
		t.Errorf("expected FlagMissing to be set")
	}
	if tok.Source.Start != 5 || tok.Source.End != 5 {
		t.Errorf("expected a zero-width span at 5, got %+v", tok.Source)
	}
}

func TestContext_CreateErrorSetsErrorKind(t *testing.T) {
	ctx := lexer.NewContext()
	tok := ctx.CreateError(source.Span{Start: 0, End: 1}, nil, nil)
	if tok.Kind != token.Error {
		t.Errorf("got kind %v, want Error", tok.Kind)
	}
}

func TestContext_IdenticalBytesInternToSamePointer(t *testing.T) {
	ctx := lexer.NewContext()
	a := ctx.Intern([]byte("hello"))
	b := ctx.Intern([]byte("hello"))
	if len(a) == 0 || &a[0] != &b[0] {
		t.Errorf("expected identical byte content to intern to the same backing array")
	}
}

func TestContext_QueryMemoryUsageGrowsWithAllocations(t *testing.T) {
	ctx := lexer.NewContextSize(lexer.TriviaAll, 0, 0)
	before := ctx.QueryMemoryUsage()

	for i := 0; i < 64; i++ {
		ctx.Create(token.Plus, source.Span{Start: source.Position(i), End: source.Position(i + 1)}, nil, nil)
	}

	after := ctx.QueryMemoryUsage()
	if after.Allocated <= before.Allocated {
		t.Errorf("expected allocated bytes to grow, before=%d after=%d", before.Allocated, after.Allocated)
	}
	if after.Reserved < after.Allocated {
		t.Errorf("reserved (%d) should never be less than allocated (%d)", after.Reserved, after.Allocated)
	}
}

func TestContext_NewContextSizeRejectsInvalidModeSilently(t *testing.T) {
	ctx := lexer.NewContextSize(lexer.TriviaMode(99), 0, 0)
	if ctx.Mode() != lexer.TriviaAll {
		t.Errorf("expected an invalid mode to fall back to TriviaAll, got %v", ctx.Mode())
	}
}
