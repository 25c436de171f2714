// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package token_test

import (
	"testing"

	"github.com/weave-lang/weave/internal/source"
	"github.com/weave-lang/weave/internal/token"
)

func TestKind_String(t *testing.T) {
	cases := map[token.Kind]string{
		token.EndOfFile:     "end-of-file",
		token.Identifier:    "identifier",
		token.PlusPlus:      "++",
		token.KeywordReturn: "return",
		token.ColonColonB:   "::[",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestKind_IsKeyword(t *testing.T) {
	if !token.KeywordIf.IsKeyword() {
		t.Fatalf("KeywordIf.IsKeyword() = false, want true")
	}
	if token.Identifier.IsKeyword() {
		t.Fatalf("Identifier.IsKeyword() = true, want false")
	}
	if token.Plus.IsKeyword() {
		t.Fatalf("Plus.IsKeyword() = true, want false")
	}
}

func TestFlags_Has(t *testing.T) {
	f := token.FlagMissing | token.FlagHasErrors
	if !f.Has(token.FlagMissing) || !f.Has(token.FlagHasErrors) {
		t.Fatalf("Has failed to detect set flags")
	}
	if token.Flags(0).Has(token.FlagMissing) {
		t.Fatalf("Has(FlagMissing) = true on empty flags")
	}
}

func TestToken_PayloadAccessors(t *testing.T) {
	tok := &token.Token{
		Kind:   token.IntegerLiteral,
		Source: source.Span{Start: 0, End: 3},
		Payload: token.IntegerLiteral{
			Prefix: token.PrefixDefault,
			Digits: "123",
			Suffix: "",
		},
	}
	lit, ok := tok.Integer()
	if !ok || lit.Digits != "123" {
		t.Fatalf("Integer() = %+v, %v, want digits 123", lit, ok)
	}
	if _, ok := tok.Float(); ok {
		t.Fatalf("Float() succeeded on an IntegerLiteral token")
	}
}

func TestTriviaRange_Empty(t *testing.T) {
	var r token.TriviaRange
	if !r.Empty() {
		t.Fatalf("zero-value TriviaRange should be Empty")
	}
	r.Leading = []token.Trivia{{Kind: token.TriviaWhitespace}}
	if r.Empty() {
		t.Fatalf("TriviaRange with leading trivia should not be Empty")
	}
}
