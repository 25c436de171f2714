// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/weave-lang/weave/internal/source"
)

// ConsoleSink renders diagnostics as "path:line:col: message" to a writer,
// colorizing errors red when the writer is a terminal. It exists for
// cmd/weave; nothing in the core depends on it.
type ConsoleSink struct {
	w       io.Writer
	text    *source.Text
	path    string
	color   bool
	reports int
}

// NewConsoleSink builds a ConsoleSink that reports against text, labeling
// every diagnostic with path. Color is auto-detected from w using
// isatty.IsTerminal when w is an *os.File; pass an explicit color flag via
// NewConsoleSinkColor to override.
func NewConsoleSink(w io.Writer, path string, text *source.Text) *ConsoleSink {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return NewConsoleSinkColor(w, path, text, color)
}

// NewConsoleSinkColor is like NewConsoleSink but takes the color decision
// explicitly, for callers (tests, --no-color) that don't want auto-detection.
func NewConsoleSinkColor(w io.Writer, path string, text *source.Text, color bool) *ConsoleSink {
	return &ConsoleSink{w: w, text: text, path: path, color: color}
}

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// AddError implements Sink.
func (s *ConsoleSink) AddError(span source.Span, message string) {
	s.reports++
	pos, err := s.text.GetLinePositionChecked(span.Start)
	if err != nil {
		// A diagnostic anchored outside its own text is a caller bug; report
		// it at the origin rather than panicking or silently mislocating it.
		pos = source.LinePosition{}
	}
	line, col := pos.Line+1, pos.Column+1

	if s.color {
		fmt.Fprintf(s.w, "%s%s:%d:%d: error: %s%s\n", ansiRed, s.path, line, col, message, ansiReset)
	} else {
		fmt.Fprintf(s.w, "%s:%d:%d: error: %s\n", s.path, line, col, message)
	}
}

// Count returns the number of diagnostics reported so far.
func (s *ConsoleSink) Count() int {
	return s.reports
}
