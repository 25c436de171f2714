// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package diag defines the diagnostic sink the tokenizer reports errors
// through. The core never renders diagnostics itself -- it hands a span and
// a message to whatever Sink the caller supplied.
package diag

import "github.com/weave-lang/weave/internal/source"

// Severity classifies a Diagnostic. The tokenizer only ever emits Error;
// Warning and Info exist for callers layered above it (a parser, a linter)
// that share this sink shape.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "error"
	}
}

// Diagnostic is one reported problem: a severity, the source span it
// concerns, and a human-readable message.
type Diagnostic struct {
	Severity Severity
	Span     source.Span
	Message  string
}

// Sink receives diagnostics as the tokenizer produces them, in source order.
type Sink interface {
	AddError(span source.Span, message string)
}

// Collector is a Sink that accumulates diagnostics in memory, e.g. for
// tests or for a caller that wants to sort/filter before rendering.
type Collector struct {
	Diagnostics []Diagnostic
}

// AddError implements Sink.
func (c *Collector) AddError(span source.Span, message string) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Severity: SeverityError, Span: span, Message: message})
}

// Empty reports whether no diagnostics have been recorded.
func (c *Collector) Empty() bool {
	return len(c.Diagnostics) == 0
}
