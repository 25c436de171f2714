// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package token

import "github.com/weave-lang/weave/internal/source"

// Flags decorate a Token with facts that are not part of its Kind.
type Flags uint8

const (
	FlagNone Flags = 0
	// FlagMissing marks a zero-width token synthesized by a parser to stand
	// in for one the tokenizer never produced. The tokenizer itself never
	// sets this flag; the model only needs to carry it.
	FlagMissing Flags = 1 << iota
	// FlagHasErrors marks a token whose body was diagnosed as malformed but
	// for which the tokenizer still produced a best-effort result.
	FlagHasErrors
)

// Has reports whether all bits of want are set in f.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Token is an immutable node in the token stream: a kind, a source span,
// leading/trailing trivia, flags, and -- for the kinds that carry one -- a
// payload. Tokens are owned by the lexer Context that produced them; see
// internal/lexer.
type Token struct {
	Kind    Kind
	Source  source.Span
	Trivia  *TriviaRange
	Flags   Flags
	Payload any
}

// IsMissing reports whether FlagMissing is set.
func (t *Token) IsMissing() bool { return t.Flags.Has(FlagMissing) }

// HasErrors reports whether FlagHasErrors is set.
func (t *Token) HasErrors() bool { return t.Flags.Has(FlagHasErrors) }

// Integer returns t's IntegerLiteral payload and whether t.Kind is
// IntegerLiteral.
func (t *Token) Integer() (IntegerLiteral, bool) {
	v, ok := t.Payload.(IntegerLiteral)
	return v, ok
}

// Float returns t's FloatLiteral payload and whether t.Kind is FloatLiteral.
func (t *Token) Float() (FloatLiteral, bool) {
	v, ok := t.Payload.(FloatLiteral)
	return v, ok
}

// StringValue returns t's StringLiteral payload and whether t.Kind is
// StringLiteral.
func (t *Token) StringValue() (StringLiteral, bool) {
	v, ok := t.Payload.(StringLiteral)
	return v, ok
}

// Character returns t's CharacterLiteral payload and whether t.Kind is
// CharacterLiteral.
func (t *Token) Character() (CharacterLiteral, bool) {
	v, ok := t.Payload.(CharacterLiteral)
	return v, ok
}

// Identifier returns t's IdentifierLiteral payload and whether t.Kind is
// Identifier.
func (t *Token) Identifier() (IdentifierLiteral, bool) {
	v, ok := t.Payload.(IdentifierLiteral)
	return v, ok
}
