// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer

import (
	"github.com/weave-lang/weave/internal/charclass"
	"github.com/weave-lang/weave/internal/diag"
	"github.com/weave-lang/weave/internal/source"
	"github.com/weave-lang/weave/internal/token"
)

// Tokenizer scans one Text into a stream of Tokens. It is not safe for
// concurrent use; scan one file per Tokenizer.
type Tokenizer struct {
	text   *source.Text
	cursor *source.Cursor
	ctx    *Context
	sink   diag.Sink

	// errored is set by error() and cleared at the start of each Lex call,
	// so a single flag captures whether the token body just scanned was
	// diagnosed without every sub-scanner threading its own bool back up.
	errored bool
}

// New creates a Tokenizer over text, allocating tokens from ctx and
// reporting diagnostics to sink. sink may be nil to discard diagnostics.
func New(text *source.Text, ctx *Context, sink diag.Sink) *Tokenizer {
	return &Tokenizer{text: text, cursor: source.NewCursor(text), ctx: ctx, sink: sink}
}

func (t *Tokenizer) error(span source.Span, message string) {
	t.errored = true
	if t.sink != nil {
		t.sink.AddError(span, message)
	}
}

func (t *Tokenizer) sliceFrom(start, end source.Position) []byte {
	return t.text.Bytes()[start:end]
}

// tokenInfo accumulates what Lex learns about a token's body before it is
// handed to the Context to allocate: the factory needs leading and trailing
// trivia decided before it builds the final Token, so the body scan and
// trivia scans must both finish first.
type tokenInfo struct {
	kind      token.Kind
	span      source.Span
	hasErrors bool

	prefix token.LiteralPrefix

	intDigits, intSuffix     string
	floatDigits, floatSuffix string
	strValue                 []byte
	charValue                rune
	charSuffix               string
	identText                []byte
	contextualKeyword        token.Kind
}

// Lex scans and returns the next token, including its surrounding trivia.
// Lex never returns nil; scanning past end of file repeatedly yields
// zero-width EndOfFile tokens.
func (t *Tokenizer) Lex() *token.Token {
	leading := t.readTrivia(true)

	t.cursor.Start()
	t.errored = false
	info := t.readToken()
	info.span = t.cursor.GetSpan()
	info.hasErrors = info.hasErrors || t.errored

	trailing := t.readTrivia(false)

	return t.materialize(info, leading, trailing)
}

// TokenizeAll drains t to end of file and returns every token produced,
// including the final EndOfFile token.
func TokenizeAll(text *source.Text, ctx *Context, sink diag.Sink) []*token.Token {
	t := New(text, ctx, sink)
	var tokens []*token.Token
	for {
		tok := t.Lex()
		tokens = append(tokens, tok)
		if tok.Kind == token.EndOfFile {
			return tokens
		}
	}
}

func (t *Tokenizer) materialize(info tokenInfo, leading, trailing []token.Trivia) *token.Token {
	switch info.kind {
	case token.IntegerLiteral:
		return t.ctx.CreateInteger(info.span, leading, trailing, info.prefix, info.intDigits, info.intSuffix, info.hasErrors)
	case token.FloatLiteral:
		return t.ctx.CreateFloat(info.span, leading, trailing, info.prefix, info.floatDigits, info.floatSuffix, info.hasErrors)
	case token.StringLiteral:
		return t.ctx.CreateString(info.span, leading, trailing, info.prefix, info.strValue, info.hasErrors)
	case token.CharacterLiteral:
		return t.ctx.CreateCharacter(info.span, leading, trailing, info.prefix, info.charValue, info.charSuffix, info.hasErrors)
	case token.Identifier:
		return t.ctx.CreateIdentifier(info.span, leading, trailing, info.identText, info.contextualKeyword)
	case token.Error:
		return t.ctx.CreateError(info.span, leading, trailing)
	default:
		return t.ctx.Create(info.kind, info.span, leading, trailing)
	}
}

// readToken dispatches to the token body scanners in the order a maximal
// munge requires: a raw identifier must be tried before a plain identifier
// would otherwise eat its "r", a string/character prefix must be tried
// before the identifier it would otherwise look like, and punctuation is
// tried only once every literal shape has had a chance to claim the input.
func (t *Tokenizer) readToken() tokenInfo {
	if t.cursor.IsEnd() {
		return tokenInfo{kind: token.EndOfFile}
	}
	if info, ok := t.tryReadRawIdentifier(); ok {
		return info
	}
	if info, ok := t.tryReadStringLiteral(); ok {
		return info
	}
	if info, ok := t.tryReadCharacterLiteral(); ok {
		return info
	}
	if info, ok := t.tryReadNumericLiteral(); ok {
		return info
	}
	if info, ok := t.tryReadPunctuation(); ok {
		return info
	}
	if info, ok := t.tryReadIdentifier(); ok {
		return info
	}
	return t.readUnexpectedCharacter()
}

func (t *Tokenizer) readUnexpectedCharacter() tokenInfo {
	c := t.cursor.Peek()
	span := t.cursor.GetSpanForCurrent()
	if c == source.InvalidRune {
		t.error(span, "invalid UTF-8 encoding")
	} else {
		t.error(span, "unexpected character")
	}
	t.cursor.Advance()
	return tokenInfo{kind: token.Error}
}

// readTrivia consumes a run of whitespace, end-of-line markers, and
// comments. Leading trivia runs until the token body itself; trailing
// trivia stops right after the first end-of-line it consumes, so a
// comment on the following line attaches as leading trivia to the next
// token instead of trailing trivia to this one.
func (t *Tokenizer) readTrivia(leading bool) []token.Trivia {
	var items []token.Trivia
	for {
		c := t.cursor.Peek()
		switch {
		case c == source.EndOfFile:
			return items

		case charclass.IsWhitespace(c):
			item := t.readWhitespaceTrivia()
			if t.keepTrivia(item.Kind) {
				items = append(items, item)
			}

		case charclass.IsNewLine(c):
			item, ok := t.readEndOfLineTrivia()
			if !ok {
				// a lone '\r': leave it for the token-body dispatch to
				// diagnose, per the tokenizer's documented quirk.
				return items
			}
			if t.keepTrivia(item.Kind) {
				items = append(items, item)
			}
			if !leading {
				return items
			}

		case c == '/' && t.cursor.PeekAt(1) == '/':
			item := t.readSingleLineComment()
			if t.keepTrivia(item.Kind) {
				items = append(items, item)
			}

		case c == '/' && t.cursor.PeekAt(1) == '*':
			item := t.readMultiLineComment()
			if t.keepTrivia(item.Kind) {
				items = append(items, item)
			}

		default:
			return items
		}
	}
}

// keepTrivia reports whether an item of kind should be retained under the
// tokenizer's configured trivia mode: TriviaNone keeps nothing, Trivia
// Documentation keeps only single/multi-line doc comments, and TriviaAll
// keeps everything. The item is always scanned either way -- this only
// decides whether it is attached to the token stream.
func (t *Tokenizer) keepTrivia(kind token.TriviaKind) bool {
	switch t.ctx.mode {
	case TriviaNone:
		return false
	case TriviaDocumentation:
		return kind == token.TriviaSingleLineDocComment || kind == token.TriviaMultiLineDocComment
	default:
		return true
	}
}

func (t *Tokenizer) readWhitespaceTrivia() token.Trivia {
	t.cursor.Start()
	for charclass.IsWhitespace(t.cursor.Peek()) {
		t.cursor.Advance()
	}
	return token.Trivia{Kind: token.TriviaWhitespace, Source: t.cursor.GetSpan()}
}

// readEndOfLineTrivia consumes "\n" or "\r\n" as a single trivia item. A
// lone "\r" is never consumed here -- the cursor is left untouched and ok
// is false -- since the source text's own line index treats it as
// ordinary content, not a line terminator.
func (t *Tokenizer) readEndOfLineTrivia() (token.Trivia, bool) {
	t.cursor.Start()
	switch t.cursor.Peek() {
	case '\n':
		t.cursor.Advance()
		return token.Trivia{Kind: token.TriviaEndOfLine, Source: t.cursor.GetSpan()}, true
	case '\r':
		if t.cursor.PeekAt(1) != '\n' {
			return token.Trivia{}, false
		}
		t.cursor.Advance()
		t.cursor.Advance()
		return token.Trivia{Kind: token.TriviaEndOfLine, Source: t.cursor.GetSpan()}, true
	default:
		return token.Trivia{}, false
	}
}

func (t *Tokenizer) readSingleLineComment() token.Trivia {
	t.cursor.Start()
	t.cursor.Advance() // '/'
	t.cursor.Advance() // '/'

	kind := token.TriviaSingleLineComment
	if (t.cursor.Peek() == '/' && t.cursor.PeekAt(1) != '/') || t.cursor.Peek() == '!' {
		kind = token.TriviaSingleLineDocComment
	}

	for !charclass.IsNewLine(t.cursor.Peek()) && t.cursor.Peek() != source.EndOfFile {
		t.cursor.Advance()
	}
	return token.Trivia{Kind: kind, Source: t.cursor.GetSpan()}
}

// readMultiLineComment consumes a /* ... */ comment, tracking nesting depth
// so "/* a /* b */ c */" closes only at the final "*/".
func (t *Tokenizer) readMultiLineComment() token.Trivia {
	t.cursor.Start()
	t.cursor.Advance() // '/'
	t.cursor.Advance() // '*'

	kind := token.TriviaMultiLineComment
	if (t.cursor.Peek() == '*' && t.cursor.PeekAt(1) != '/') || t.cursor.Peek() == '!' {
		kind = token.TriviaMultiLineDocComment
	}

	for depth := 1; depth > 0; {
		switch {
		case t.cursor.Peek() == source.EndOfFile:
			t.error(t.cursor.GetSpan(), "unterminated multi-line comment")
			depth = 0
		case t.cursor.Peek() == '/' && t.cursor.PeekAt(1) == '*':
			t.cursor.Advance()
			t.cursor.Advance()
			depth++
		case t.cursor.Peek() == '*' && t.cursor.PeekAt(1) == '/':
			t.cursor.Advance()
			t.cursor.Advance()
			depth--
		default:
			t.cursor.Advance()
		}
	}
	return token.Trivia{Kind: kind, Source: t.cursor.GetSpan()}
}
