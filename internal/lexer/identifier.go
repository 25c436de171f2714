// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer

import (
	"github.com/weave-lang/weave/internal/charclass"
	"github.com/weave-lang/weave/internal/keyword"
	"github.com/weave-lang/weave/internal/source"
	"github.com/weave-lang/weave/internal/token"
)

// tryReadRawIdentifier reads r#name: an 'r#' marker that forces name to
// tokenize as an Identifier even when it spells a keyword. It must be tried
// before both tryReadStringLiteral (which claims r#"..."#) and
// tryReadIdentifier (which would otherwise stop at the bare 'r').
func (t *Tokenizer) tryReadRawIdentifier() (tokenInfo, bool) {
	if t.cursor.Peek() != 'r' || t.cursor.PeekAt(1) != '#' {
		return tokenInfo{}, false
	}
	if !charclass.IsIdentifierStart(t.cursor.PeekAt(2)) {
		return tokenInfo{}, false
	}

	t.cursor.Advance() // 'r'
	t.cursor.Advance() // '#'
	start := t.cursor.GetCurrentPosition()
	for charclass.IsIdentifierContinuation(t.cursor.Peek()) {
		t.cursor.Advance()
	}
	text := t.sliceFrom(start, t.cursor.GetCurrentPosition())
	return tokenInfo{kind: token.Identifier, identText: text, contextualKeyword: token.None}, true
}

// tryReadIdentifier reads a plain identifier, a lone underscore, or a
// keyword. A spelling in the contextual-keyword table tokenizes as
// Identifier with its keyword Kind tagged on the payload rather than as the
// keyword Kind itself.
func (t *Tokenizer) tryReadIdentifier() (tokenInfo, bool) {
	c := t.cursor.Peek()
	if c == source.EndOfFile || c == source.InvalidRune || !charclass.IsIdentifierStart(c) {
		return tokenInfo{}, false
	}

	start := t.cursor.GetCurrentPosition()
	t.cursor.Advance()
	for charclass.IsIdentifierContinuation(t.cursor.Peek()) {
		t.cursor.Advance()
	}
	text := t.sliceFrom(start, t.cursor.GetCurrentPosition())

	if len(text) == 1 && text[0] == '_' {
		return tokenInfo{kind: token.Underscore}, true
	}

	if kind, ok := keyword.Lookup(text); ok {
		if keyword.IsContextual(kind) {
			return tokenInfo{kind: token.Identifier, identText: text, contextualKeyword: kind}, true
		}
		return tokenInfo{kind: kind}, true
	}

	return tokenInfo{kind: token.Identifier, identText: text, contextualKeyword: token.None}, true
}
