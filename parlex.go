package parlex

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Applications define their own
// token type constants; the only value with a fixed meaning is EOFType.
type TokType int

// EOFType marks the end of the input stream. It equals text/scanner.EOF,
// so tokenizers built on the standard library produce it naturally.
const EOFType TokType = -1

// TokTypeStringer is provided by a scanner/parser combination to be able
// to print out token categories.
type TokTypeStringer func(TokType) string

// Token represents an input token, usually produced by a scanner or lexer,
// reflecting a terminal of a language.
//
// An example would be a token for an identifier:
//
//	TokType = Ident      // category of this token (application specific)
//	Lexeme  = "counter"  // lexeme as it appeared in the input stream
//	Span    = 17…24      // input positions covered by the lexeme
//
// Parsers consult TokType first when matching a token against a grammar
// terminal, and fall back to the lexeme for literal terminals.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. For every
// terminal and non-terminal, a parse tracks which input positions the
// symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
