// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package lexer turns source text into a stream of tokens: the Tokenizer
// drives the scan, and a Context owns the arenas every produced Token,
// Trivia item, and literal payload is allocated from.
package lexer

import (
	"github.com/weave-lang/weave/internal/source"
	"github.com/weave-lang/weave/internal/stringpool"
	"github.com/weave-lang/weave/internal/token"

	"github.com/weave-lang/weave/internal/arena"
)

// TriviaMode controls how much trivia the tokenizer attaches to tokens.
type TriviaMode uint8

const (
	// TriviaNone discards whitespace and comments entirely; tokens carry the
	// Context's shared, empty Trivia range.
	TriviaNone TriviaMode = iota
	// TriviaDocumentation keeps only documentation comments.
	TriviaDocumentation
	// TriviaAll keeps every trivia item: whitespace, end-of-line markers,
	// and comments.
	TriviaAll
)

func (m TriviaMode) valid() bool {
	return m == TriviaNone || m == TriviaDocumentation || m == TriviaAll
}

// Context owns every arena the tokenizer allocates from while producing a
// token stream: one string pool for interned identifier and literal text,
// and one typed arena per token/trivia/payload shape. A Context is not safe
// for concurrent use; give each goroutine scanning source text its own.
type Context struct {
	mode TriviaMode

	pool *stringpool.Pool

	tokens       *arena.Typed[token.Token]
	triviaItems  *arena.Typed[token.Trivia]
	triviaRanges *arena.Typed[token.TriviaRange]

	integers    *arena.Typed[token.IntegerLiteral]
	floats      *arena.Typed[token.FloatLiteral]
	strings     *arena.Typed[token.StringLiteral]
	characters  *arena.Typed[token.CharacterLiteral]
	identifiers *arena.Typed[token.IdentifierLiteral]

	emptyTrivia token.TriviaRange
}

// NewContext creates a Context with default arena and string-pool sizes and
// TriviaAll trivia retention.
func NewContext() *Context {
	return NewContextSize(TriviaAll, 0, 0)
}

// NewContextSize creates a Context with the given trivia mode and explicit
// arena segment size / string-pool bucket count (0 selects each package's
// default).
func NewContextSize(mode TriviaMode, segmentSize, poolBuckets int) *Context {
	if !mode.valid() {
		mode = TriviaAll
	}
	return &Context{
		mode: mode,

		pool: stringpool.NewSize(poolBuckets),

		tokens:       arena.NewTyped[token.Token](0),
		triviaItems:  arena.NewTyped[token.Trivia](0),
		triviaRanges: arena.NewTyped[token.TriviaRange](0),

		integers:    arena.NewTyped[token.IntegerLiteral](0),
		floats:      arena.NewTyped[token.FloatLiteral](0),
		strings:     arena.NewTyped[token.StringLiteral](0),
		characters:  arena.NewTyped[token.CharacterLiteral](0),
		identifiers: arena.NewTyped[token.IdentifierLiteral](0),
	}
}

// Mode reports the Context's trivia retention mode.
func (c *Context) Mode() TriviaMode { return c.mode }

// Intern returns the Context's pool-owned, stable copy of value.
func (c *Context) Intern(value []byte) []byte { return c.pool.Get(value) }

// triviaRange builds the TriviaRange for a token from its leading and
// trailing trivia lists, copying both into the trivia-item arena. A token
// with no trivia at all shares one empty sentinel instead of allocating.
func (c *Context) triviaRange(leading, trailing []token.Trivia) *token.TriviaRange {
	if len(leading) == 0 && len(trailing) == 0 {
		return &c.emptyTrivia
	}
	tr := c.triviaRanges.Emplace()
	tr.Leading = c.triviaItems.EmplaceArrayFrom(leading)
	tr.Trailing = c.triviaItems.EmplaceArrayFrom(trailing)
	return tr
}

func (c *Context) newToken(kind token.Kind, span source.Span, leading, trailing []token.Trivia, flags token.Flags, payload any) *token.Token {
	t := c.tokens.Emplace()
	t.Kind = kind
	t.Source = span
	t.Trivia = c.triviaRange(leading, trailing)
	t.Flags = flags
	t.Payload = payload
	return t
}

// Create builds a payload-less token: punctuation, Underscore, EndOfFile, or
// a keyword.
func (c *Context) Create(kind token.Kind, span source.Span, leading, trailing []token.Trivia) *token.Token {
	return c.newToken(kind, span, leading, trailing, token.FlagNone, nil)
}

// CreateError builds a token for a span the tokenizer could not otherwise
// classify. The diagnostic itself is reported separately, through the
// Tokenizer's diag.Sink.
func (c *Context) CreateError(span source.Span, leading, trailing []token.Trivia) *token.Token {
	return c.newToken(token.Error, span, leading, trailing, token.FlagHasErrors, nil)
}

// CreateMissing builds a zero-width token flagged FlagMissing, for a parser
// layered above the tokenizer to synthesize a stand-in at a span the
// tokenizer never produced a token for.
func (c *Context) CreateMissing(kind token.Kind, at source.Position) *token.Token {
	return c.newToken(kind, source.Span{Start: at, End: at}, nil, nil, token.FlagMissing, nil)
}

// CreateInteger builds an IntegerLiteral token, interning digits and suffix.
func (c *Context) CreateInteger(span source.Span, leading, trailing []token.Trivia, prefix token.LiteralPrefix, digits, suffix string, hasErrors bool) *token.Token {
	lit := c.integers.Emplace()
	lit.Prefix = prefix
	lit.Digits = string(c.pool.GetString(digits))
	lit.Suffix = string(c.pool.GetString(suffix))
	return c.newToken(token.IntegerLiteral, span, leading, trailing, errorFlags(hasErrors), *lit)
}

// CreateFloat builds a FloatLiteral token, interning digits and suffix.
func (c *Context) CreateFloat(span source.Span, leading, trailing []token.Trivia, prefix token.LiteralPrefix, digits, suffix string, hasErrors bool) *token.Token {
	lit := c.floats.Emplace()
	lit.Prefix = prefix
	lit.Digits = string(c.pool.GetString(digits))
	lit.Suffix = string(c.pool.GetString(suffix))
	return c.newToken(token.FloatLiteral, span, leading, trailing, errorFlags(hasErrors), *lit)
}

// CreateString builds a StringLiteral token. value is the decoded byte
// content (escapes already resolved), interned in the string pool.
func (c *Context) CreateString(span source.Span, leading, trailing []token.Trivia, prefix token.LiteralPrefix, value []byte, hasErrors bool) *token.Token {
	lit := c.strings.Emplace()
	lit.Prefix = prefix
	lit.Value = c.pool.Get(value)
	return c.newToken(token.StringLiteral, span, leading, trailing, errorFlags(hasErrors), *lit)
}

// CreateCharacter builds a CharacterLiteral token, interning suffix.
func (c *Context) CreateCharacter(span source.Span, leading, trailing []token.Trivia, prefix token.LiteralPrefix, value rune, suffix string, hasErrors bool) *token.Token {
	lit := c.characters.Emplace()
	lit.Prefix = prefix
	lit.Value = value
	lit.Suffix = string(c.pool.GetString(suffix))
	return c.newToken(token.CharacterLiteral, span, leading, trailing, errorFlags(hasErrors), *lit)
}

// CreateIdentifier builds an Identifier token. contextualKeyword is
// token.None unless text spells a keyword the grammar only recognizes in
// specific positions; see internal/keyword.
func (c *Context) CreateIdentifier(span source.Span, leading, trailing []token.Trivia, text []byte, contextualKeyword token.Kind) *token.Token {
	lit := c.identifiers.Emplace()
	lit.ContextualKeyword = contextualKeyword
	lit.Value = c.pool.Get(text)
	return c.newToken(token.Identifier, span, leading, trailing, token.FlagNone, *lit)
}

func errorFlags(hasErrors bool) token.Flags {
	if hasErrors {
		return token.FlagHasErrors
	}
	return token.FlagNone
}

// MemoryUsage reports bytes actually used versus reserved across every
// arena and the string pool this Context owns.
type MemoryUsage struct {
	Allocated int
	Reserved  int
}

// QueryMemoryUsage sums usage across the string pool and every typed arena.
func (c *Context) QueryMemoryUsage() MemoryUsage {
	var u MemoryUsage
	add := func(a, r int) {
		u.Allocated += a
		u.Reserved += r
	}

	add(c.pool.QueryUsage())
	add(c.tokens.QueryUsage(tokenSize))
	add(c.triviaItems.QueryUsage(triviaSize))
	add(c.triviaRanges.QueryUsage(triviaRangeSize))
	add(c.integers.QueryUsage(literalSize))
	add(c.floats.QueryUsage(literalSize))
	add(c.strings.QueryUsage(literalSize))
	add(c.characters.QueryUsage(literalSize))
	add(c.identifiers.QueryUsage(literalSize))

	return u
}

// Rough, platform-independent stand-ins for sizeof(T); exactness doesn't
// matter since QueryMemoryUsage is diagnostic, not accounting.
const (
	tokenSize       = 64
	triviaSize      = 24
	triviaRangeSize = 48
	literalSize     = 48
)
