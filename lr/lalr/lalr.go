/*
Package lalr provides the LALR(1) shift-reduce parser. Clients have to
use the tools of package lr to prepare the necessary parse tables. The
parser utilizes these tables to create a rightmost derivation (in
reverse) for a given input, provided through a scanner interface.

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := lr.NewGrammarBuilder("Balanced Parentheses")
	b.LHS("S").T("(", '(').N("S").T(")", ')').End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()

This grammar is subjected to grammar analysis and table generation.

	ga := lr.Analysis(g)
	lrgen := lr.NewTableGenerator(ga)
	lrgen.CreateTables()
	if lrgen.HasConflicts { ... }  // inspect lrgen.Conflicts()

Finally parse some input:

	p := lalr.NewParser(lrgen)
	scan := scanner.GoTokenizer("input", strings.NewReader("(())"))
	accepted, err := p.Parse(scan)

There is no error recovery: the first failure terminates the parse.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 David Lechner <david@lechner.dev>

*/
package lalr

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/dlechner/parlex"
	"github.com/dlechner/parlex/lr"
	"github.com/dlechner/parlex/lr/scanner"
)

// tracer traces with key 'parlex.lr'.
func tracer() tracing.Trace {
	return tracing.Select("parlex.lr")
}

// Parser is an LALR(1) parser. Create and initialize one with
// lalr.NewParser(...).
type Parser struct {
	table *lr.TableGenerator
	stack []stackitem // parser stack
}

// We store pairs of state-ids and symbols on the parse stack.
type stackitem struct {
	state int         // id of an LALR state
	sym   lr.Symbol   // grammar symbol carried by this entry
	span  parlex.Span // input span over which this symbol reaches
}

// NewParser creates an LALR(1) parser from generated tables.
func NewParser(table *lr.TableGenerator) *Parser {
	return &Parser{
		table: table,
		stack: make([]stackitem, 0, 512),
	}
}

// Parse starts a new parse, with the scanner tokenizing the input.
// It returns true if the input has been accepted.
func (p *Parser) Parse(scan scanner.Tokenizer) (bool, error) {
	if p.table == nil {
		return false, fmt.Errorf("LALR(1)-parser not initialized")
	}
	tracer().Debugf("~~~ parse ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	p.stack = p.stack[:0]
	p.stack = append(p.stack, stackitem{state: p.table.InitialState()})
	g := p.table.Grammar()
	token := scan.NextToken()
	for {
		tos := p.stack[len(p.stack)-1]
		term, ok := p.terminalFor(g, token)
		if !ok {
			return false, fmt.Errorf("syntax error at %v: unknown terminal %q",
				token.Span(), token.Lexeme())
		}
		action, ok := p.table.Action(tos.state, term)
		if !ok {
			return false, fmt.Errorf("syntax error at %v on %q", token.Span(), term)
		}
		tracer().Debugf("action(%d,%s) = %v", tos.state, term, action)
		switch action.Kind {
		case lr.AcceptAction:
			return true, nil
		case lr.ShiftAction:
			p.stack = append(p.stack, stackitem{
				state: action.State,
				sym:   term,
				span:  token.Span(),
			})
			token = scan.NextToken()
		case lr.ReduceAction:
			if _, err := p.reduce(action.Prod, token); err != nil {
				return false, err
			}
		}
	}
}

// terminalFor resolves an input token to a grammar terminal. The
// end-of-input token maps to $; other tokens resolve by declared type
// first, with the lexeme as fallback.
func (p *Parser) terminalFor(g *lr.Grammar, token parlex.Token) (lr.Symbol, bool) {
	if token.TokType() == parlex.EOFType {
		return lr.EOF, true
	}
	return g.TerminalFor(token)
}

// reduce performs a reduce action for a production
//
//	LHS → X1 … Xn   (with X being terminals or non-terminals)
//
// by popping n entries (none for an epsilon-production), consulting
// GOTO[tos, LHS] and pushing the result.
func (p *Parser) reduce(prod *lr.Production, lookahead parlex.Token) (int, error) {
	tracer().Debugf("reduce %v", prod)
	var handlespan parlex.Span
	for n := prod.Len(); n > 0; n-- {
		if len(p.stack) <= 1 {
			panic("LALR parser: stack underflow during reduction")
		}
		popped := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		if handlespan.IsNull() {
			handlespan = popped.span
		} else {
			handlespan = handlespan.Extend(popped.span)
		}
	}
	if handlespan.IsNull() { // resulted from an epsilon production
		pos := lookahead.Span().From()
		if pos > 0 {
			pos--
		}
		handlespan = parlex.Span{pos, pos}
	}
	tos := p.stack[len(p.stack)-1]
	next, ok := p.table.Goto(tos.state, prod.LHS)
	if !ok {
		return 0, fmt.Errorf("syntax error: no goto(%d, %s)", tos.state, prod.LHS)
	}
	p.stack = append(p.stack, stackitem{state: next, sym: prod.LHS, span: handlespan})
	return next, nil
}

// ParseTokens parses a pre-tokenized input. A $ sentinel is appended
// internally.
func (p *Parser) ParseTokens(tokens []parlex.Token) (bool, error) {
	return p.Parse(&sliceTokenizer{tokens: tokens})
}

// sliceTokenizer feeds a fixed token slice, then EOF forever.
type sliceTokenizer struct {
	tokens []parlex.Token
	pos    int
}

func (st *sliceTokenizer) NextToken() parlex.Token {
	if st.pos >= len(st.tokens) {
		var span parlex.Span
		if n := len(st.tokens); n > 0 {
			span = parlex.Span{st.tokens[n-1].Span().To(), st.tokens[n-1].Span().To()}
		}
		return scanner.MakeToken(parlex.EOFType, "", span)
	}
	tok := st.tokens[st.pos]
	st.pos++
	return tok
}

func (st *sliceTokenizer) SetErrorHandler(func(error)) {}
