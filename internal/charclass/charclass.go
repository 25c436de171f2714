// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package charclass classifies Unicode code points the way the tokenizer
// needs: identifier boundaries, whitespace, newlines, and digit/exponent
// markers for the various numeric literal bases.
package charclass

// IsIdentifierStartAscii reports whether c is an ASCII identifier-start
// character: a letter or underscore.
func IsIdentifierStartAscii(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// IsIdentifierContinuationAscii reports whether c is an ASCII
// identifier-continuation character: a letter, digit, or underscore.
func IsIdentifierContinuationAscii(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

// IsDecimalExponent reports whether c marks a decimal float exponent ('e'/'E').
func IsDecimalExponent(c rune) bool {
	return c == 'e' || c == 'E'
}

// IsHexadecimalExponent reports whether c marks a hex float exponent ('p'/'P').
func IsHexadecimalExponent(c rune) bool {
	return c == 'p' || c == 'P'
}

// IsBinaryDigit reports whether c is '0' or '1'.
func IsBinaryDigit(c rune) bool {
	return c == '0' || c == '1'
}

// IsOctalDigit reports whether c is in the range '0'..'7'.
func IsOctalDigit(c rune) bool {
	return c >= '0' && c <= '7'
}

// IsDecimalDigit reports whether c is in the range '0'..'9'.
func IsDecimalDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// IsHexadecimalDigit reports whether c is a hex digit in any case.
func IsHexadecimalDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsNewLine reports whether c is '\n' or '\r'. Note this is a narrower test
// than a full line-break check: source.Text's line index treats a lone '\r'
// not followed by '\n' as ordinary content, not a line break. This predicate
// only answers "is this byte one of the two ASCII newline characters",
// which is what the tokenizer's readTrivia needs to decide whether to even
// attempt an end-of-line read.
func IsNewLine(c rune) bool {
	return c == '\n' || c == '\r'
}

// IsWhitespace reports whether c is inter-token whitespace. Newlines are
// excluded deliberately: they are lexed as their own trivia kind so the
// tokenizer can tell "blank space" from "line break" apart.
func IsWhitespace(c rune) bool {
	switch c {
	case 0x0009, // tab
		0x000B, // vertical tab
		0x000C, // form feed
		0x0020, // space
		0x0085, // next line
		0x200E, // left-to-right mark
		0x200F, // right-to-left mark
		0x2028, // line separator
		0x2029: // paragraph separator
		return true
	default:
		return false
	}
}

// identifierContinuationRange is an inclusive [Lo, Hi] code point range
// allowed for identifier continuation, per N1518 Annex X.1.
type identifierContinuationRange struct {
	Lo, Hi rune
}

// identifierContinuationRanges lists the non-ASCII ranges allowed for
// identifier continuation, per N1518 Annex X.1. Sorted by Lo so
// IsIdentifierContinuation can binary search.
var identifierContinuationRanges = []identifierContinuationRange{
	{0x00A8, 0x00A8},
	{0x00AA, 0x00AA},
	{0x00AD, 0x00AD},
	{0x00AF, 0x00AF},
	{0x00B2, 0x00B5},
	{0x00B7, 0x00BA},
	{0x00BC, 0x00BE},
	{0x00C0, 0x00D6},
	{0x00D8, 0x00F6},
	{0x00F8, 0x00FF},
	{0x0100, 0x167F},
	{0x1681, 0x180D},
	{0x180F, 0x1FFF},
	{0x200B, 0x200D},
	{0x202A, 0x202E},
	{0x203F, 0x2040},
	{0x2054, 0x2054},
	{0x2060, 0x206F},
	{0x2070, 0x218F},
	{0x2460, 0x24FF},
	{0x2776, 0x2793},
	{0x2C00, 0x2DFF},
	{0x2E80, 0x2FFF},
	{0x3004, 0x3007},
	{0x3021, 0x302F},
	{0x3031, 0x303F},
	{0x3040, 0xD7FF},
	{0xF900, 0xFD3D},
	{0xFD40, 0xFDCF},
	{0xFDF0, 0xFE44},
	{0xFE47, 0xFFF8},
	{0x10000, 0x1FFFD},
	{0x20000, 0x2FFFD},
	{0x30000, 0x3FFFD},
	{0x40000, 0x4FFFD},
	{0x50000, 0x5FFFD},
	{0x60000, 0x6FFFD},
	{0x70000, 0x7FFFD},
	{0x80000, 0x8FFFD},
	{0x90000, 0x9FFFD},
	{0xA0000, 0xAFFFD},
	{0xB0000, 0xBFFFD},
	{0xC0000, 0xCFFFD},
	{0xD0000, 0xDFFFD},
	{0xE0000, 0xEFFFD},
}

// identifierStartDisallowed lists the ranges that N1518 Annex X.2 excludes
// from identifier start, even though they are allowed to continue one.
var identifierStartDisallowed = []identifierContinuationRange{
	{0x0300, 0x036F},
	{0x1DC0, 0x1DFF},
	{0x20D0, 0x20FF},
	{0xFE20, 0xFE2F},
}

func inRanges(c rune, ranges []identifierContinuationRange) bool {
	lo, hi := 0, len(ranges)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		r := ranges[mid]
		switch {
		case c < r.Lo:
			hi = mid - 1
		case c > r.Hi:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// IsIdentifierContinuation reports whether c may appear after the first
// character of an identifier.
func IsIdentifierContinuation(c rune) bool {
	if c < 0x80 {
		return IsIdentifierContinuationAscii(c)
	}
	return inRanges(c, identifierContinuationRanges)
}

// IsIdentifierStart reports whether c may begin an identifier. Every
// identifier-start character is also a continuation character, but ASCII
// digits and the Annex X.2 combining-mark ranges are continuation-only; '$'
// is neither a start nor a continuation character.
func IsIdentifierStart(c rune) bool {
	if !IsIdentifierContinuation(c) {
		return false
	}
	if c < 0x80 && (IsDecimalDigit(c) || c == '$') {
		return false
	}
	if inRanges(c, identifierStartDisallowed) {
		return false
	}
	return true
}
