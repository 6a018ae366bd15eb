/*
Package scanner defines an interface for scanners to be used with the
parsers of package lr.

Two default scanner implementations are provided: (1) a thin wrapper
over the Go std lib 'text/scanner', and (2) an adapter for lexmachine,
living in sub-package lexmach. A third implementation — a DFA-backed
scanner built from tagged regular expressions — lives in package lexer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 David Lechner <david@lechner.dev>

*/
package scanner

import (
	"io"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"

	"github.com/dlechner/parlex"
)

// tracer traces with key 'parlex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("parlex.scanner")
}

// Token types of the default tokenizer are replicated from text/scanner
// for practical reasons. EOF is identical to parlex.EOFType.
const (
	EOF     = parlex.TokType(scanner.EOF)
	Ident   = parlex.TokType(scanner.Ident)
	Int     = parlex.TokType(scanner.Int)
	Float   = parlex.TokType(scanner.Float)
	Char    = parlex.TokType(scanner.Char)
	String  = parlex.TokType(scanner.String)
	Comment = parlex.TokType(scanner.Comment)
)

// Tokenizer is a scanner interface. Parsers pull tokens from it one at a
// time; after the input is exhausted it keeps producing EOF tokens.
type Tokenizer interface {
	NextToken() parlex.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// DefaultTokenizer is a default implementation, backed by
// scanner.Scanner from the standard library. Create one with
// GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	Error func(error) // error handler
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to
// the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() parlex.Token {
	r := t.Scan()
	if r == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	return Token{
		kind:   parlex.TokType(r),
		lexeme: t.TokenText(),
		span:   parlex.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// --- Default tokens --------------------------------------------------------

// Token is a plain token type, used by the Go tokenizer, the lexmachine
// adapter and the DFA lexer alike.
type Token struct {
	kind   parlex.TokType
	lexeme string
	Val    interface{}
	span   parlex.Span
}

var _ parlex.Token = Token{}

// MakeToken wraps a (type, lexeme, span) triple into a token.
func MakeToken(typ parlex.TokType, lexeme string, span parlex.Span) Token {
	return Token{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t Token) TokType() parlex.TokType {
	return t.kind
}

func (t Token) Value() interface{} {
	return t.Val
}

func (t Token) Lexeme() string {
	return t.lexeme
}

func (t Token) Span() parlex.Span {
	return t.span
}

// --- Scanner options for the default (Go) tokenizer ------------------------

// Option configures a default tokenizer.
type Option func(t *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}
