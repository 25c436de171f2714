// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package token

import "github.com/weave-lang/weave/internal/source"

// TriviaKind identifies the category of a piece of preserved, non-semantic
// source text.
type TriviaKind uint8

const (
	TriviaNone TriviaKind = iota
	TriviaWhitespace
	TriviaEndOfLine
	TriviaSingleLineComment
	TriviaMultiLineComment
	TriviaSingleLineDocComment
	TriviaMultiLineDocComment
)

// IsDocumentation reports whether k is one of the two documentation-comment
// kinds.
func (k TriviaKind) IsDocumentation() bool {
	return k == TriviaSingleLineDocComment || k == TriviaMultiLineDocComment
}

func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "whitespace"
	case TriviaEndOfLine:
		return "end-of-line"
	case TriviaSingleLineComment:
		return "single-line-comment"
	case TriviaMultiLineComment:
		return "multi-line-comment"
	case TriviaSingleLineDocComment:
		return "single-line-doc-comment"
	case TriviaMultiLineDocComment:
		return "multi-line-doc-comment"
	default:
		return "none"
	}
}

// Trivia is one lexically-preserved, non-semantic span of source: a run of
// whitespace, a newline, or a comment.
type Trivia struct {
	Kind   TriviaKind
	Source source.Span
}

// TriviaRange is the leading/trailing pair of trivia attached to a token.
// The tokenizer's factory reuses a single empty TriviaRange (see
// internal/lexer's Context) when both slices are empty, so that the common
// case of an un-surrounded token costs no allocation.
type TriviaRange struct {
	Leading  []Trivia
	Trailing []Trivia
}

// Empty reports whether both slices are empty.
func (r TriviaRange) Empty() bool {
	return len(r.Leading) == 0 && len(r.Trailing) == 0
}
