package lr

import (
	"fmt"
	"strings"

	"github.com/dlechner/parlex"
)

// SymbolKind distinguishes terminals from non-terminals.
type SymbolKind int8

// The two kinds of grammar symbols.
const (
	Terminal SymbolKind = iota
	NonTerminal
)

// Symbol is a grammar symbol: a name tagged with a kind. Symbols are
// value types; equality and hashing are by (name, kind).
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Two reserved terminals: end-of-input and the empty-word marker.
var (
	EOF     = Symbol{Name: "$", Kind: Terminal}
	Epsilon = Symbol{Name: "ε", Kind: Terminal}
)

// IsTerminal is true for terminal symbols.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

func (s Symbol) String() string {
	return s.Name
}

// Production is a grammar rule: a left-hand non-terminal deriving a
// sequence of symbols. The right-hand side may be empty
// (epsilon-production). Productions are interned in their grammar and
// referenced by pointer; Serial is the declaration index.
type Production struct {
	Serial int
	LHS    Symbol
	rhs    []Symbol
}

// RHS returns the right-hand side symbols.
func (p *Production) RHS() []Symbol {
	return p.rhs
}

// Len returns the number of right-hand side symbols, 0 for an
// epsilon-production.
func (p *Production) Len() int {
	return len(p.rhs)
}

// Equals compares two productions structurally.
func (p *Production) Equals(other *Production) bool {
	if p.LHS != other.LHS || len(p.rhs) != len(other.rhs) {
		return false
	}
	for i, sym := range p.rhs {
		if other.rhs[i] != sym {
			return false
		}
	}
	return true
}

func (p *Production) String() string {
	var b strings.Builder
	b.WriteString(p.LHS.Name)
	b.WriteString(" → ")
	if len(p.rhs) == 0 {
		b.WriteString("ε")
	}
	for i, sym := range p.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sym.Name)
	}
	return b.String()
}

// Grammar is an immutable context-free grammar: a start symbol, ordered
// collections of terminals, non-terminals and productions, and the
// token-type association of its terminals. Construct one with a
// GrammarBuilder.
type Grammar struct {
	Name         string
	rules        []*Production
	terminals    []Symbol // declaration order
	nonterminals []Symbol // declaration order
	start        Symbol
	toktypes     map[Symbol]parlex.TokType
	termsByType  map[parlex.TokType]Symbol
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns production no. n.
func (g *Grammar) Rule(n int) *Production {
	if n < 0 || n >= len(g.rules) {
		return nil
	}
	return g.rules[n]
}

// Productions returns all productions in declaration order.
func (g *Grammar) Productions() []*Production {
	return g.rules
}

// ProductionsFor returns the productions with the given left-hand side,
// in declaration order.
func (g *Grammar) ProductionsFor(nt Symbol) []*Production {
	var r []*Production
	for _, p := range g.rules {
		if p.LHS == nt {
			r = append(r, p)
		}
	}
	return r
}

// Terminals returns the terminal symbols in declaration order,
// ending with the reserved $ terminal.
func (g *Grammar) Terminals() []Symbol {
	return g.terminals
}

// NonTerminals returns the non-terminal symbols in declaration order.
func (g *Grammar) NonTerminals() []Symbol {
	return g.nonterminals
}

// EachSymbol calls f for every grammar symbol: terminals first, then
// non-terminals, each in declaration order. Iteration order is stable,
// which keeps the discovery order of LR states reproducible.
func (g *Grammar) EachSymbol(f func(sym Symbol)) {
	for _, t := range g.terminals {
		f(t)
	}
	for _, nt := range g.nonterminals {
		f(nt)
	}
}

// TokenType returns the token type associated with a terminal.
func (g *Grammar) TokenType(t Symbol) (parlex.TokType, bool) {
	tt, ok := g.toktypes[t]
	return tt, ok
}

// TerminalFor resolves an input token to a grammar terminal: by the
// token's declared type first, falling back to a terminal whose name
// equals the lexeme.
func (g *Grammar) TerminalFor(tok parlex.Token) (Symbol, bool) {
	if t, ok := g.termsByType[tok.TokType()]; ok {
		return t, true
	}
	t := Symbol{Name: tok.Lexeme(), Kind: Terminal}
	if _, ok := g.toktypes[t]; ok {
		return t, true
	}
	return Symbol{}, false
}

// Dump logs the grammar through the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("grammar %s, start symbol %s", g.Name, g.start)
	for _, p := range g.rules {
		tracer().Debugf("%2d: %v", p.Serial, p)
	}
}

// --- Grammar builder --------------------------------------------------

// GrammarBuilder is a fluent builder for grammars:
//
//	b := lr.NewGrammarBuilder("G")
//	b.LHS("S").T("(", '(').N("S").T(")", ')').End()
//	b.LHS("S").Epsilon()
//	g, err := b.Grammar()
//
// The LHS of the first rule becomes the start symbol.
type GrammarBuilder struct {
	name     string
	rules    []*Production
	toktypes map[Symbol]parlex.TokType
	ntseen   map[Symbol]bool
	tseen    map[Symbol]bool
	ntorder  []Symbol
	torder   []Symbol
	err      error
}

// NewGrammarBuilder creates a builder for a grammar with the given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:     name,
		toktypes: make(map[Symbol]parlex.TokType),
		ntseen:   make(map[Symbol]bool),
		tseen:    make(map[Symbol]bool),
	}
}

// RuleBuilder builds a single production; create one with LHS.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Symbol
	rhs []Symbol
}

// LHS starts a new rule with the given left-hand side non-terminal.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	nt := Symbol{Name: name, Kind: NonTerminal}
	gb.recordNonTerminal(nt)
	return &RuleBuilder{gb: gb, lhs: nt}
}

func (gb *GrammarBuilder) recordNonTerminal(nt Symbol) {
	if !gb.ntseen[nt] {
		gb.ntseen[nt] = true
		gb.ntorder = append(gb.ntorder, nt)
	}
}

func (gb *GrammarBuilder) recordTerminal(t Symbol, tt parlex.TokType) {
	if prev, ok := gb.toktypes[t]; ok && prev != tt && gb.err == nil {
		gb.err = fmt.Errorf("grammar %s: terminal %s declared with token types %d and %d",
			gb.name, t, prev, tt)
	}
	if !gb.tseen[t] {
		gb.tseen[t] = true
		gb.torder = append(gb.torder, t)
		gb.toktypes[t] = tt
	}
}

// N appends a non-terminal to the rule's right-hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	nt := Symbol{Name: name, Kind: NonTerminal}
	rb.gb.recordNonTerminal(nt)
	rb.rhs = append(rb.rhs, nt)
	return rb
}

// T appends a terminal with the given token type to the rule's
// right-hand side.
func (rb *RuleBuilder) T(name string, tt parlex.TokType) *RuleBuilder {
	t := Symbol{Name: name, Kind: Terminal}
	rb.gb.recordTerminal(t, tt)
	rb.rhs = append(rb.rhs, t)
	return rb
}

// EOF appends the reserved end-of-input terminal and finishes the rule.
func (rb *RuleBuilder) EOF() *Production {
	rb.gb.recordTerminal(EOF, parlex.EOFType)
	rb.rhs = append(rb.rhs, EOF)
	return rb.End()
}

// End finishes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Production {
	p := &Production{Serial: len(rb.gb.rules), LHS: rb.lhs, rhs: rb.rhs}
	rb.gb.rules = append(rb.gb.rules, p)
	return p
}

// Epsilon finishes the rule with an empty right-hand side.
func (rb *RuleBuilder) Epsilon() *Production {
	rb.rhs = nil
	return rb.End()
}

// Grammar validates the rules and returns the finished grammar. Every
// non-terminal must appear as the left-hand side of at least one rule.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if len(gb.rules) == 0 {
		return nil, fmt.Errorf("grammar %s has no rules", gb.name)
	}
	defined := make(map[Symbol]bool)
	for _, p := range gb.rules {
		defined[p.LHS] = true
	}
	for _, nt := range gb.ntorder {
		if !defined[nt] {
			return nil, fmt.Errorf("grammar %s: non-terminal %s has no production", gb.name, nt)
		}
	}
	gb.recordTerminal(EOF, parlex.EOFType)
	g := &Grammar{
		Name:         gb.name,
		rules:        gb.rules,
		terminals:    gb.torder,
		nonterminals: gb.ntorder,
		start:        gb.rules[0].LHS,
		toktypes:     gb.toktypes,
		termsByType:  make(map[parlex.TokType]Symbol),
	}
	for _, t := range gb.torder { // declaration order, first terminal wins a type
		tt := gb.toktypes[t]
		if _, taken := g.termsByType[tt]; !taken {
			g.termsByType[tt] = t
		}
	}
	return g, nil
}
