// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer

import (
	"fmt"

	"github.com/weave-lang/weave/internal/charclass"
	"github.com/weave-lang/weave/internal/token"
)

// tryReadNumericLiteral reads an integer or float literal: an optional base
// prefix, a digit run, an optional fractional part and exponent (decimal
// literals only, or hexadecimal literals with a 'p' exponent), and a suffix
// read directly from the source text.
func (t *Tokenizer) tryReadNumericLiteral() (tokenInfo, bool) {
	if !charclass.IsDecimalDigit(t.cursor.Peek()) {
		return tokenInfo{}, false
	}

	prefix := token.PrefixDefault
	digitPred := charclass.IsDecimalDigit

	if t.cursor.Peek() == '0' {
		switch t.cursor.PeekAt(1) {
		case 'b', 'B':
			if t.cursor.PeekAt(1) == 'B' {
				t.error(t.cursor.GetSpanForCurrent(), "binary literal prefix must be lowercase")
			}
			prefix, digitPred = token.PrefixBinary, charclass.IsBinaryDigit
			t.cursor.Advance()
			t.cursor.Advance()
		case 'o', 'O':
			if t.cursor.PeekAt(1) == 'O' {
				t.error(t.cursor.GetSpanForCurrent(), "octal literal prefix must be lowercase")
			}
			prefix, digitPred = token.PrefixOctal, charclass.IsOctalDigit
			t.cursor.Advance()
			t.cursor.Advance()
		case 'x', 'X':
			if t.cursor.PeekAt(1) == 'X' {
				t.error(t.cursor.GetSpanForCurrent(), "hexadecimal literal prefix must be lowercase")
			}
			prefix, digitPred = token.PrefixHexadecimal, charclass.IsHexadecimalDigit
			t.cursor.Advance()
			t.cursor.Advance()
		}
	}

	digits, ok := t.readDigitRun(digitPred, wrongDigitBase(prefix))
	if !ok {
		if prefix != token.PrefixDefault {
			t.error(t.cursor.GetSpan(), "numeric literal has no digits")
		}
		digits = []byte("0")
	}

	var isFloat bool
	switch prefix {
	case token.PrefixBinary, token.PrefixOctal:
		digits, isFloat = t.readDisallowedBinaryOctalFloat(digits, digitPred, prefix)
	default:
		var sawExponent bool
		digits, isFloat, sawExponent = t.readFractionAndExponent(digits, digitPred, prefix)
		if prefix == token.PrefixHexadecimal && isFloat && !sawExponent {
			t.error(t.cursor.GetSpan(), "hexadecimal floating literal requires exponent")
		}
	}

	suffix := t.readLiteralSuffixFromSpan()

	if isFloat {
		return tokenInfo{kind: token.FloatLiteral, prefix: prefix, floatDigits: string(digits), floatSuffix: suffix}, true
	}
	return tokenInfo{kind: token.IntegerLiteral, prefix: prefix, intDigits: string(digits), intSuffix: suffix}, true
}

// wrongDigitBase returns the base to name in an "invalid digit for base N
// literal" diagnostic, or 0 when digitPred for prefix already accepts every
// decimal digit (decimal and hexadecimal literals never have a "wrong"
// decimal digit; binary and octal do).
func wrongDigitBase(prefix token.LiteralPrefix) int {
	switch prefix {
	case token.PrefixBinary:
		return 2
	case token.PrefixOctal:
		return 8
	default:
		return 0
	}
}

// readFractionAndExponent reads the optional fractional part and exponent of
// a decimal or hexadecimal literal, appending their normalized digits to
// digits. It reports whether the literal turned out to be a float and
// whether an exponent marker was actually consumed, since a hexadecimal
// float without one is itself an error the caller diagnoses.
func (t *Tokenizer) readFractionAndExponent(digits []byte, digitPred func(rune) bool, prefix token.LiteralPrefix) ([]byte, bool, bool) {
	isFloat := false

	if t.cursor.Peek() == '.' {
		switch {
		case digitPred(t.cursor.PeekAt(1)):
			isFloat = true
			digits = append(digits, '.')
			t.cursor.Advance()
			frac, _ := t.readDigitRun(digitPred, wrongDigitBase(prefix))
			digits = append(digits, frac...)
		case t.cursor.PeekAt(1) == '_':
			// "1._5": diagnose, then roll the '.' back unconsumed so the
			// next token dispatch re-reads it as punctuation.
			save := t.cursor.GetCurrentPosition()
			t.cursor.Advance()
			t.error(t.cursor.GetSpanForCurrent(), "fractional part must not start with '_'")
			t.cursor.Reset(save)
		}
	}

	exponentPred := charclass.IsDecimalExponent
	if prefix == token.PrefixHexadecimal {
		exponentPred = charclass.IsHexadecimalExponent
	}

	sawExponent := false
	if exponentPred(t.cursor.Peek()) {
		save := t.cursor.GetCurrentPosition()
		mark := byte(t.cursor.Peek()) | 0x20 // 'E'/'P' normalize to 'e'/'p'
		t.cursor.Advance()

		var sign byte
		if t.cursor.Peek() == '+' || t.cursor.Peek() == '-' {
			sign = byte(t.cursor.Peek())
			t.cursor.Advance()
		}

		expDigits, ok := t.readDigitRun(charclass.IsDecimalDigit, 0)
		if !ok {
			// no digits after the exponent marker: it wasn't an
			// exponent after all, so don't consume it -- it may be
			// read back as part of the literal's suffix.
			t.cursor.Reset(save)
		} else {
			isFloat = true
			sawExponent = true
			digits = append(digits, mark)
			if sign != 0 {
				digits = append(digits, sign)
			}
			digits = append(digits, expDigits...)
		}
	}

	return digits, isFloat, sawExponent
}

// readDisallowedBinaryOctalFloat detects a fractional part or exponent
// trailing a binary or octal literal -- a shape the grammar has no meaning
// for -- and consumes it into a single diagnosed literal instead of leaving
// the rest of the input to re-lex as separate, unrelated tokens.
func (t *Tokenizer) readDisallowedBinaryOctalFloat(digits []byte, digitPred func(rune) bool, prefix token.LiteralPrefix) ([]byte, bool) {
	sawFraction := t.cursor.Peek() == '.' && charclass.IsDecimalDigit(t.cursor.PeekAt(1))
	if sawFraction {
		digits = append(digits, '.')
		t.cursor.Advance()
		frac, _ := t.readDigitRun(digitPred, wrongDigitBase(prefix))
		digits = append(digits, frac...)
	}

	sawExponent := charclass.IsDecimalExponent(t.cursor.Peek())
	if sawExponent {
		mark := byte(t.cursor.Peek())
		t.cursor.Advance()
		digits = append(digits, mark)
		if t.cursor.Peek() == '+' || t.cursor.Peek() == '-' {
			sign := byte(t.cursor.Peek())
			digits = append(digits, sign)
			t.cursor.Advance()
		}
		expDigits, _ := t.readDigitRun(charclass.IsDecimalDigit, 0)
		digits = append(digits, expDigits...)
	}

	if sawFraction || sawExponent {
		t.error(t.cursor.GetSpan(), "binary/octal float literals are not supported")
		return digits, true
	}
	return digits, false
}

// readDigitRun consumes a run of digits satisfying pred, along with '_'
// separators that appear between two digits; a trailing or isolated '_' is
// left unconsumed. The returned digits have every separator stripped.
// wrongBase, when non-zero, names the literal's base so a decimal digit
// that fails pred (e.g. '2' in a binary literal) is diagnosed and still
// consumed into the run, rather than left behind to re-lex as its own token.
func (t *Tokenizer) readDigitRun(pred func(rune) bool, wrongBase int) ([]byte, bool) {
	var buf []byte
	any := false
	for {
		c := t.cursor.Peek()
		if pred(c) {
			buf = append(buf, byte(c))
			t.cursor.Advance()
			any = true
			continue
		}
		if c == '_' && any && pred(t.cursor.PeekAt(1)) {
			t.cursor.Advance()
			continue
		}
		if wrongBase > 0 && charclass.IsDecimalDigit(c) {
			t.error(t.cursor.GetSpanForCurrent(), fmt.Sprintf("invalid digit for base %d literal", wrongBase))
			buf = append(buf, byte(c))
			t.cursor.Advance()
			any = true
			continue
		}
		break
	}
	return buf, any
}

// readLiteralSuffixFromSpan reads a suffix identifier (u8, i64, f32, ...)
// directly from the source text rather than from an accumulated buffer,
// since a suffix is never escape-processed or underscore-stripped.
func (t *Tokenizer) readLiteralSuffixFromSpan() string {
	if !charclass.IsIdentifierStartAscii(t.cursor.Peek()) {
		return ""
	}
	start := t.cursor.GetCurrentPosition()
	for charclass.IsIdentifierContinuationAscii(t.cursor.Peek()) {
		t.cursor.Advance()
	}
	return string(t.sliceFrom(start, t.cursor.GetCurrentPosition()))
}
