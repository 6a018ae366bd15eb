/*
Package lexer builds multi-token scanners from sets of tagged regular
expressions.

Every rule couples a pattern with a token type and a priority. The
rules' NFAs (Thompson construction) are combined into a single
multi-token NFA, converted to a DFA with the subset construction, and
minimized. When several rules accept the same lexeme, the rule with the
lower priority value wins; rules without an explicit priority rank by
declaration order. The compiled transition table is packed into a sparse
matrix for scanning.

Scanners produced by a Lexer implement the Tokenizer interface of
package lr/scanner and apply maximal munch.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 David Lechner <david@lechner.dev>

*/
package lexer

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/dlechner/parlex"
	"github.com/dlechner/parlex/fa"
	"github.com/dlechner/parlex/fa/regex"
	"github.com/dlechner/parlex/lr/scanner"
	"github.com/dlechner/parlex/sparse"
)

// tracer traces with key 'parlex.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("parlex.lexer")
}

// Rule couples a token pattern with the type of the tokens it produces.
type Rule struct {
	Name     string         // display name of the token category
	Pattern  string         // regular expression (operators: | · * + ? ( ))
	Type     parlex.TokType // token type to emit
	Priority int            // lower wins; 0 means "rank by declaration order"
	Skip     bool           // matched lexemes are dropped (whitespace etc.)
}

// Lexer is a compiled multi-token scanner generator. Create one with
// New, then call Scanner for each input.
type Lexer struct {
	dfa   *fa.DFA
	alpha *fa.Alphabet
	table *sparse.IntMatrix // packed transitions: state × alphabet index
	cols  map[rune]int      // symbol → column
	rules map[parlex.TokType]Rule
}

// New compiles a set of rules into a lexer. Rule patterns share one
// state arena; the union NFA is determinized over the alphabet of all
// pattern literals and minimized.
func New(rules ...Rule) (*Lexer, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("lexer: no rules")
	}
	c := regex.NewCompiler()
	patterns := make([]string, len(rules))
	nfas := make([]fa.NFA, len(rules))
	byType := make(map[parlex.TokType]Rule)
	for i, rule := range rules {
		nfa, err := c.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("lexer rule %q: %w", rule.Name, err)
		}
		prio := rule.Priority
		if prio == 0 {
			prio = i + 1
		}
		c.Graph().State(nfa.End).MakeFinalWithPriority(rule.Type, prio)
		patterns[i] = rule.Pattern
		nfas[i] = nfa
		if prev, dup := byType[rule.Type]; dup {
			return nil, fmt.Errorf("lexer rules %q and %q share token type %d",
				prev.Name, rule.Name, rule.Type)
		}
		byType[rule.Type] = rule
	}
	union := fa.Union(c.Graph(), nfas)
	alpha := regex.AlphabetOf(patterns...)
	dfa := fa.Minimize(fa.BuildDFA(union, alpha), alpha)
	tracer().Infof("lexer: %d rules compiled into %d DFA states",
		len(rules), len(dfa.States))

	lx := &Lexer{
		dfa:   dfa,
		alpha: alpha,
		cols:  make(map[rune]int),
		rules: byType,
	}
	lx.pack()
	return lx, nil
}

// pack flattens the DFA transition function into a sparse matrix.
func (lx *Lexer) pack() {
	col := 0
	lx.alpha.Each(func(a rune) {
		lx.cols[a] = col
		col++
	})
	lx.table = sparse.NewIntMatrix(len(lx.dfa.States), col, sparse.DefaultNullValue)
	for _, s := range lx.dfa.States {
		s.EachTransition(lx.alpha, func(a rune, to *fa.DFAState) {
			lx.table.Set(s.ID, lx.cols[a], int32(to.ID))
		})
	}
}

// DFA exposes the compiled (minimized) automaton.
func (lx *Lexer) DFA() *fa.DFA {
	return lx.dfa
}

// next returns the follow state for (state, symbol), or -1.
func (lx *Lexer) next(state int, a rune) int {
	col, ok := lx.cols[a]
	if !ok {
		return -1
	}
	v := lx.table.Value(state, col)
	if v == lx.table.NullValue() {
		return -1
	}
	return int(v)
}

// Scanner creates a scanner over the given input. It implements the
// Tokenizer interface of package lr/scanner.
func (lx *Lexer) Scanner(input string) *Scanner {
	return &Scanner{
		lx:    lx,
		input: []rune(input),
		Error: func(e error) { tracer().Errorf("lexer error: %v", e) },
	}
}

// Scanner walks an input string, emitting the longest match at every
// position (maximal munch). On input no rule matches, the error handler
// is called and scanning resumes behind the offending rune.
type Scanner struct {
	lx    *Lexer
	input []rune
	pos   int
	Error func(error)
}

var _ scanner.Tokenizer = (*Scanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h != nil {
		s.Error = h
	}
}

// NextToken is part of the Tokenizer interface. After the end of input
// it keeps returning EOF tokens.
func (s *Scanner) NextToken() parlex.Token {
	for s.pos < len(s.input) {
		length, typ := s.match()
		if length <= 0 {
			s.Error(fmt.Errorf("no token matches at position %d (%q)", s.pos, s.input[s.pos]))
			s.pos++
			continue
		}
		lexeme := string(s.input[s.pos : s.pos+length])
		span := parlex.Span{uint64(s.pos), uint64(s.pos + length)}
		s.pos += length
		rule := s.lx.rules[typ]
		if rule.Skip {
			continue
		}
		tracer().Debugf("token %s %q %v", rule.Name, lexeme, span)
		return scanner.MakeToken(typ, lexeme, span)
	}
	return scanner.MakeToken(parlex.EOFType, "",
		parlex.Span{uint64(len(s.input)), uint64(len(s.input))})
}

// match runs the DFA from the current position, recording the last
// accepting state passed.
func (s *Scanner) match() (int, parlex.TokType) {
	state := s.lx.dfa.Start.ID
	best, btype := -1, parlex.TokType(0)
	if st := s.lx.dfa.States[state]; st.Final {
		best, btype = 0, st.TokType
	}
	for i := s.pos; i < len(s.input); i++ {
		state = s.lx.next(state, s.input[i])
		if state < 0 {
			break
		}
		if st := s.lx.dfa.States[state]; st.Final {
			best, btype = i-s.pos+1, st.TokType
		}
	}
	return best, btype
}
