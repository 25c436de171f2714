// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package source_test

import (
	"errors"
	"testing"

	"github.com/weave-lang/weave/cerrs"
	"github.com/weave-lang/weave/internal/source"
)

func TestText_Empty(t *testing.T) {
	txt := source.NewFromString("")
	if txt.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", txt.LineCount())
	}
	span, ok := txt.GetLine(0)
	if !ok || span.Start != 0 || span.End != 0 {
		t.Fatalf("GetLine(0) = %+v, ok=%v, want {0 0} true", span, ok)
	}
	if _, ok := txt.GetLine(1); ok {
		t.Fatalf("GetLine(1) should be out of range")
	}
}

func TestText_SingleLF(t *testing.T) {
	txt := source.NewFromString("\n")
	if txt.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", txt.LineCount())
	}
	full0, _ := txt.GetLine(0)
	if full0.Start != 0 || full0.End != 1 {
		t.Fatalf("GetLine(0) = %+v, want {0 1}", full0)
	}
	content0, _ := txt.GetLineContent(0)
	if content0.Start != 0 || content0.End != 0 {
		t.Fatalf("GetLineContent(0) = %+v, want {0 0}", content0)
	}
	if txt.GetLineText(0) != "\n" {
		t.Fatalf("GetLineText(0) = %q, want %q", txt.GetLineText(0), "\n")
	}
	full1, _ := txt.GetLine(1)
	if full1.Start != 1 || full1.End != 1 {
		t.Fatalf("GetLine(1) = %+v, want {1 1}", full1)
	}
}

func TestText_LoneCRIsNotALineBreak(t *testing.T) {
	txt := source.NewFromString("\r")
	if txt.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1 (lone CR is not a line terminator)", txt.LineCount())
	}
	full, _ := txt.GetLine(0)
	if full.Start != 0 || full.End != 1 {
		t.Fatalf("GetLine(0) = %+v, want {0 1}", full)
	}
	content, _ := txt.GetLineContent(0)
	if content.Start != 0 || content.End != 1 {
		t.Fatalf("GetLineContent(0) = %+v, want {0 1} (CR kept as content, not stripped)", content)
	}
}

func TestText_MultipleLoneCR(t *testing.T) {
	txt := source.NewFromString("\r\r\r")
	if txt.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", txt.LineCount())
	}
	if txt.GetLineText(0) != "\r\r\r" {
		t.Fatalf("GetLineText(0) = %q, want %q", txt.GetLineText(0), "\r\r\r")
	}
}

func TestText_CRLF(t *testing.T) {
	txt := source.NewFromString("\r\n")
	if txt.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", txt.LineCount())
	}
	full0, _ := txt.GetLine(0)
	if full0.Start != 0 || full0.End != 2 {
		t.Fatalf("GetLine(0) = %+v, want {0 2}", full0)
	}
	content0, _ := txt.GetLineContent(0)
	if content0.Start != 0 || content0.End != 0 {
		t.Fatalf("GetLineContent(0) = %+v, want {0 0}", content0)
	}
}

func TestText_MixedNewlines(t *testing.T) {
	txt := source.NewFromString("This\nis\r\nsome\ntext\n")
	if txt.LineCount() != 5 {
		t.Fatalf("LineCount() = %d, want 5", txt.LineCount())
	}
	wantStarts := []source.Position{0, 5, 9, 14, 19}
	for i, want := range wantStarts {
		full, ok := txt.GetLine(i)
		if !ok || full.Start != want {
			t.Fatalf("GetLine(%d).Start = %v, want %v", i, full.Start, want)
		}
	}
	cases := []struct {
		index       int
		text        string
		contentText string
	}{
		{0, "This\n", "This"},
		{1, "is\r\n", "is"},
		{2, "some\n", "some"},
		{3, "text\n", "text"},
		{4, "", ""},
	}
	for _, c := range cases {
		if got := txt.GetLineText(c.index); got != c.text {
			t.Fatalf("GetLineText(%d) = %q, want %q", c.index, got, c.text)
		}
		if got := txt.GetLineContentText(c.index); got != c.contentText {
			t.Fatalf("GetLineContentText(%d) = %q, want %q", c.index, got, c.contentText)
		}
	}
}

func TestText_NoTrailingNewline(t *testing.T) {
	txt := source.NewFromString("This\nis\r\nsome\ntext")
	if txt.LineCount() != 4 {
		t.Fatalf("LineCount() = %d, want 4", txt.LineCount())
	}
	if txt.GetLineText(3) != "text" {
		t.Fatalf("GetLineText(3) = %q, want %q", txt.GetLineText(3), "text")
	}
	if txt.GetLineContentText(3) != "text" {
		t.Fatalf("GetLineContentText(3) = %q, want %q", txt.GetLineContentText(3), "text")
	}
}

func TestText_LinePositionMapping(t *testing.T) {
	txt := source.NewFromString("S\n\tt\r\nr\tu\r\ng")
	want := []source.LinePosition{
		{0, 0}, {0, 1},
		{1, 0}, {1, 1}, {1, 2}, {1, 3},
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4},
		{3, 0},
	}
	for offset, expect := range want {
		got := txt.GetLinePosition(source.Position(offset))
		if got != expect {
			t.Fatalf("GetLinePosition(%d) = %+v, want %+v", offset, got, expect)
		}
	}
}

func TestText_GetTextRoundTrips(t *testing.T) {
	content := "S\n\tt\r\nr\tu\r\ng"
	txt := source.NewFromString(content)
	for i := 0; i <= len(content); i++ {
		for j := i; j <= len(content); j++ {
			got, err := txt.GetText(source.Span{Start: source.Position(i), End: source.Position(j)})
			if err != nil {
				t.Fatalf("GetText(%d,%d) error: %v", i, j, err)
			}
			if got != content[i:j] {
				t.Fatalf("GetText(%d,%d) = %q, want %q", i, j, got, content[i:j])
			}
		}
	}
}

func TestText_GetTextRejectsInvalidSpan(t *testing.T) {
	txt := source.NewFromString("abc")
	if _, err := txt.GetText(source.Span{Start: 2, End: 1}); err == nil {
		t.Fatalf("expected error for inverted span")
	}
	if _, err := txt.GetText(source.Span{Start: 0, End: 10}); err == nil {
		t.Fatalf("expected error for out-of-range span")
	}
}

func TestText_GetLinePositionCheckedRejectsOutOfRangeOffset(t *testing.T) {
	txt := source.NewFromString("abc")
	if _, err := txt.GetLinePositionChecked(-1); !errors.Is(err, cerrs.ErrOffsetOutOfRange) {
		t.Errorf("negative offset: got %v, want ErrOffsetOutOfRange", err)
	}
	if _, err := txt.GetLinePositionChecked(100); !errors.Is(err, cerrs.ErrOffsetOutOfRange) {
		t.Errorf("offset past end: got %v, want ErrOffsetOutOfRange", err)
	}
	pos, err := txt.GetLinePositionChecked(1)
	if err != nil || pos != (source.LinePosition{Line: 0, Column: 1}) {
		t.Errorf("GetLinePositionChecked(1) = %+v, %v", pos, err)
	}
}
