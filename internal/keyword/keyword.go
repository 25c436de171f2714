// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package keyword holds the lexer's keyword table as data. Per the core's
// design, recognizing a keyword is a pure bytes-to-kind lookup: it carries
// no behavior of its own and is never extended at runtime.
package keyword

import "github.com/weave-lang/weave/internal/token"

// table maps an identifier's exact spelling to its keyword Kind.
var table = map[string]token.Kind{
	"public":    token.KeywordPublic,
	"private":   token.KeywordPrivate,
	"internal":  token.KeywordInternal,
	"unsafe":    token.KeywordUnsafe,
	"partial":   token.KeywordPartial,
	"readonly":  token.KeywordReadonly,
	"async":     token.KeywordAsync,
	"extern":    token.KeywordExtern,
	"native":    token.KeywordNative,
	"namespace": token.KeywordNamespace,
	"struct":    token.KeywordStruct,
	"extend":    token.KeywordExtend,
	"concept":   token.KeywordConcept,
	"function":  token.KeywordFunction,
	"let":       token.KeywordLet,
	"var":       token.KeywordVar,
	"const":     token.KeywordConst,
	"ref":       token.KeywordRef,
	"out":       token.KeywordOut,
	"in":        token.KeywordIn,
	"for":       token.KeywordFor,
	"foreach":   token.KeywordForeach,
	"where":     token.KeywordWhere,
	"self":      token.KeywordSelf,
	"type":      token.KeywordType,
	"yield":     token.KeywordYield,
	"break":     token.KeywordBreak,
	"continue":  token.KeywordContinue,
	"return":    token.KeywordReturn,
	"if":        token.KeywordIf,
	"else":      token.KeywordElse,
	"while":     token.KeywordWhile,
	"loop":      token.KeywordLoop,
	"match":     token.KeywordMatch,
	"true":      token.KeywordTrue,
	"false":     token.KeywordFalse,
	"null":      token.KeywordNull,
	"assert":    token.KeywordAssert,
	"ensures":   token.KeywordEnsures,
	"invariant": token.KeywordInvariant,
	"requires":  token.KeywordRequires,
	"eval":      token.KeywordEval,
	"using":     token.KeywordUsing,
}

// contextual is the subset of table that tokenizes as Identifier rather
// than as its keyword Kind: the spelling is only a keyword in specific
// grammar positions a parser recognizes, not unconditionally.
var contextual = map[token.Kind]bool{
	token.KeywordSelf:    true,
	token.KeywordVar:     true,
	token.KeywordWhere:   true,
	token.KeywordPartial: true,
	token.KeywordAsync:   true,
	token.KeywordUnsafe:  true,
}

// Lookup reports the Kind that text spells as a keyword, if any.
func Lookup(text []byte) (token.Kind, bool) {
	k, ok := table[string(text)]
	return k, ok
}

// IsContextual reports whether k is recognized as a keyword only in
// specific grammar positions. The tokenizer emits an Identifier token for
// these, tagging IdentifierLiteral.ContextualKeyword with k; a true keyword
// is emitted with Kind == k directly.
func IsContextual(k token.Kind) bool {
	return contextual[k]
}
