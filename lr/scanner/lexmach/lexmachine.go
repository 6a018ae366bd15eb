/*
Package lexmach adapts lexmachine-based lexers to the Tokenizer
interface of package scanner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 David Lechner <david@lechner.dev>

*/
package lexmach

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/dlechner/parlex"
	"github.com/dlechner/parlex/lr/scanner"
)

// tracer traces with key 'parlex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("parlex.scanner")
}

// LMAdapter wraps a lexmachine lexer for use as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values. Additional
// patterns may be registered through the init function.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{Lexer: lexmachine.NewLexer()}
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will
// implement the Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Scanner errors are
// handed to the error handler; scanning resumes behind the unconsumed
// input.
func (lms *LMScanner) NextToken() parlex.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeToken(scanner.EOF, "", parlex.Span{})
	}
	token := tok.(*lexmachine.Token)
	return scanner.MakeToken(
		parlex.TokType(token.Type),
		string(token.Lexeme),
		parlex.Span{uint64(token.StartColumn), uint64(token.EndColumn)},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a
// token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
