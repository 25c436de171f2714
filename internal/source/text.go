// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package source holds the lexer's view of a single input file: the raw
// bytes, a line-start index built once up front, and a cursor type for
// walking the bytes as Unicode code points.
package source

import "github.com/weave-lang/weave/cerrs"

// Position is a byte offset into a Text's content.
type Position int

// Span is a half-open byte range [Start, End) into a Text's content.
type Span struct {
	Start Position
	End   Position
}

// Len reports the span's width in bytes.
func (s Span) Len() int { return int(s.End - s.Start) }

// LinePosition is a zero-based line and column, where column is measured in
// bytes from the start of the line.
type LinePosition struct {
	Line   int
	Column int
}

// LineSpan is a LinePosition pair, the line-mapped counterpart of a Span.
type LineSpan struct {
	Start LinePosition
	End   LinePosition
}

// Text is an immutable view over one file's contents plus its line-start
// index. The zero value is not usable; construct with New.
//
// Line boundaries follow a single rule: a line ends at '\n', optionally
// preceded by '\r'. A lone '\r' not followed by '\n' never ends a line --
// it is ordinary line content. This matches the lexer's own end-of-line
// recognition so the two never disagree about where a line break falls.
type Text struct {
	buf   []byte
	lines []Position
}

// New builds a Text over content. content is retained, not copied.
func New(content []byte) *Text {
	t := &Text{buf: content, lines: []Position{0}}
	for i, b := range content {
		if b == '\n' {
			t.lines = append(t.lines, Position(i+1))
		}
	}
	return t
}

// NewFromString is a convenience wrapper for New.
func NewFromString(content string) *Text {
	return New([]byte(content))
}

// Bytes returns the full underlying content. Callers must not mutate it.
func (t *Text) Bytes() []byte { return t.buf }

// Len reports the content length in bytes.
func (t *Text) Len() int { return len(t.buf) }

// LineCount reports the number of lines, including a trailing empty line
// produced when the content ends in a line terminator.
func (t *Text) LineCount() int { return len(t.lines) }

// fullLineSpan returns the byte span of line index, including its
// terminator, and whether index is in range.
func (t *Text) fullLineSpan(index int) (Span, bool) {
	if index < 0 || index >= len(t.lines) {
		return Span{}, false
	}
	start := t.lines[index]
	end := Position(len(t.buf))
	if index+1 < len(t.lines) {
		end = t.lines[index+1]
	}
	return Span{start, end}, true
}

// terminatorLen reports how many trailing bytes of full (0, 1, or 2) are the
// line terminator, given that line index is not the content's last line.
func (t *Text) terminatorLen(full Span) int {
	end := int(full.End)
	if end >= 2 && t.buf[end-2] == '\r' && t.buf[end-1] == '\n' {
		return 2
	}
	if end >= 1 && t.buf[end-1] == '\n' {
		return 1
	}
	return 0
}

// GetLine returns the byte span of line index including its terminator.
func (t *Text) GetLine(index int) (Span, bool) {
	return t.fullLineSpan(index)
}

// GetLineContent returns the byte span of line index excluding its
// terminator.
func (t *Text) GetLineContent(index int) (Span, bool) {
	full, ok := t.fullLineSpan(index)
	if !ok {
		return Span{}, false
	}
	if index+1 >= len(t.lines) {
		return full, true
	}
	full.End -= Position(t.terminatorLen(full))
	return full, true
}

// GetLineText returns the text of line index including its terminator, or
// "" if index is out of range.
func (t *Text) GetLineText(index int) string {
	span, ok := t.GetLine(index)
	if !ok {
		return ""
	}
	return string(t.buf[span.Start:span.End])
}

// GetLineContentText returns the text of line index excluding its
// terminator, or "" if index is out of range.
func (t *Text) GetLineContentText(index int) string {
	span, ok := t.GetLineContent(index)
	if !ok {
		return ""
	}
	return string(t.buf[span.Start:span.End])
}

// LineIndex returns the zero-based line containing offset. Offsets at or
// past the end of content map to the last line.
func (t *Text) LineIndex(offset Position) int {
	lo, hi := 0, len(t.lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t.lines[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// GetLinePosition maps a byte offset to its line and column.
func (t *Text) GetLinePosition(offset Position) LinePosition {
	line := t.LineIndex(offset)
	return LinePosition{Line: line, Column: int(offset - t.lines[line])}
}

// GetLineSpan maps a byte Span to its LineSpan.
func (t *Text) GetLineSpan(span Span) LineSpan {
	return LineSpan{
		Start: t.GetLinePosition(span.Start),
		End:   t.GetLinePosition(span.End),
	}
}

// GetText returns the substring covered by span.
func (t *Text) GetText(span Span) (string, error) {
	if span.Start < 0 || span.End < span.Start || int(span.End) > len(t.buf) {
		return "", cerrs.ErrInvalidSpan
	}
	return string(t.buf[span.Start:span.End]), nil
}

// GetLinePositionChecked is like GetLinePosition but rejects an offset
// outside the content instead of clamping it into the nearest line; callers
// that did not derive offset from this same Text should use this form.
func (t *Text) GetLinePositionChecked(offset Position) (LinePosition, error) {
	if offset < 0 || int(offset) > len(t.buf) {
		return LinePosition{}, cerrs.ErrOffsetOutOfRange
	}
	return t.GetLinePosition(offset), nil
}
