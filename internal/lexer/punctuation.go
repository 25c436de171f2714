// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer

import "github.com/weave-lang/weave/internal/token"

// tryReadPunctuation performs the maximal-munch match over every
// punctuation spelling: at each leading character it tries the longest
// spelling first, falling back to shorter ones.
func (t *Tokenizer) tryReadPunctuation() (tokenInfo, bool) {
	c0 := t.cursor.Peek()
	c1 := t.cursor.PeekAt(1)
	c2 := t.cursor.PeekAt(2)

	take := func(n int, kind token.Kind) (tokenInfo, bool) {
		for i := 0; i < n; i++ {
			t.cursor.Advance()
		}
		return tokenInfo{kind: kind}, true
	}

	switch c0 {
	case '!':
		if c1 == '=' {
			return take(2, token.BangEqual)
		}
		if c1 == '[' {
			return take(2, token.BangLBrack)
		}
		return take(1, token.Bang)
	case '+':
		if c1 == '+' {
			return take(2, token.PlusPlus)
		}
		if c1 == '=' {
			return take(2, token.PlusEqual)
		}
		return take(1, token.Plus)
	case '-':
		if c1 == '-' {
			return take(2, token.MinusMinus)
		}
		if c1 == '=' {
			return take(2, token.MinusEqual)
		}
		if c1 == '>' {
			return take(2, token.MinusArrow)
		}
		return take(1, token.Minus)
	case '*':
		if c1 == '=' {
			return take(2, token.StarEqual)
		}
		return take(1, token.Star)
	case '/':
		if c1 == '=' {
			return take(2, token.SlashEqual)
		}
		return take(1, token.Slash)
	case '%':
		if c1 == '=' {
			return take(2, token.PercentEq)
		}
		return take(1, token.Percent)
	case '&':
		if c1 == '&' {
			return take(2, token.AmpAmp)
		}
		if c1 == '=' {
			return take(2, token.AmpEqual)
		}
		return take(1, token.Amp)
	case '|':
		if c1 == '|' {
			return take(2, token.PipePipe)
		}
		if c1 == '=' {
			return take(2, token.PipeEqual)
		}
		return take(1, token.Pipe)
	case '^':
		if c1 == '=' {
			return take(2, token.CaretEqual)
		}
		return take(1, token.Caret)
	case '=':
		if c1 == '=' {
			return take(2, token.EqualEqual)
		}
		if c1 == '>' {
			return take(2, token.EqualArrow)
		}
		return take(1, token.Equal)
	case '<':
		if c1 == '<' && c2 == '=' {
			return take(3, token.LessLessEq)
		}
		if c1 == '<' {
			return take(2, token.LessLess)
		}
		if c1 == '=' {
			return take(2, token.LessEqual)
		}
		return take(1, token.Less)
	case '>':
		if c1 == '>' && c2 == '=' {
			return take(3, token.GreaterGtEq)
		}
		if c1 == '>' {
			return take(2, token.GreaterGt)
		}
		if c1 == '=' {
			return take(2, token.GreaterEq)
		}
		return take(1, token.Greater)
	case '?':
		if c1 == '?' && c2 == '=' {
			return take(3, token.QuestionQEq)
		}
		if c1 == '?' {
			return take(2, token.QuestionQ)
		}
		return take(1, token.Question)
	case '.':
		if c1 == '.' && c2 == '.' {
			return take(3, token.DotDotDot)
		}
		if c1 == '.' {
			return take(2, token.DotDot)
		}
		return take(1, token.Dot)
	case ':':
		if c1 == ':' && c2 == '<' {
			return take(3, token.ColonColonL)
		}
		if c1 == ':' && c2 == '[' {
			return take(3, token.ColonColonB)
		}
		if c1 == ':' {
			return take(2, token.ColonColon)
		}
		return take(1, token.Colon)
	case '#':
		if c1 == '[' {
			return take(2, token.HashLBrack)
		}
		return take(1, token.Hash)
	case '~':
		return take(1, token.Tilde)
	case '(':
		return take(1, token.LParen)
	case ')':
		return take(1, token.RParen)
	case '{':
		return take(1, token.LBrace)
	case '}':
		return take(1, token.RBrace)
	case '[':
		return take(1, token.LBrack)
	case ']':
		return take(1, token.RBrack)
	case ';':
		return take(1, token.Semicolon)
	case '@':
		return take(1, token.At)
	case '$':
		return take(1, token.Dollar)
	case '\\':
		return take(1, token.Backslash)
	case ',':
		return take(1, token.Comma)
	default:
		return tokenInfo{}, false
	}
}
