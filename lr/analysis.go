package lr

import (
	"sort"
	"strings"
)

// SymbolSet is a set of grammar symbols, used for FIRST sets and
// lookahead computation.
type SymbolSet map[Symbol]struct{}

var exists = struct{}{}

// Add inserts sym; returns true if it was new.
func (set SymbolSet) Add(sym Symbol) bool {
	if _, ok := set[sym]; ok {
		return false
	}
	set[sym] = exists
	return true
}

// Contains checks membership of sym.
func (set SymbolSet) Contains(sym Symbol) bool {
	_, ok := set[sym]
	return ok
}

// Size returns the cardinality of the set.
func (set SymbolSet) Size() int {
	return len(set)
}

// AppendTo appends the members to syms, sorted by kind and name, and
// returns the extended slice. Sorting keeps downstream iteration
// deterministic.
func (set SymbolSet) AppendTo(syms []Symbol) []Symbol {
	start := len(syms)
	for sym := range set {
		syms = append(syms, sym)
	}
	sorted := syms[start:]
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Kind != sorted[j].Kind {
			return sorted[i].Kind < sorted[j].Kind
		}
		return sorted[i].Name < sorted[j].Name
	})
	return syms
}

func (set SymbolSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, sym := range set.AppendTo(nil) {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sym.Name)
	}
	b.WriteString("}")
	return b.String()
}

// LRAnalysis holds the results of static grammar analysis, i.e. the
// FIRST sets of all grammar symbols. Create one with Analysis.
type LRAnalysis struct {
	g     *Grammar
	first map[Symbol]SymbolSet
}

// Analysis computes the FIRST sets for grammar g.
func Analysis(g *Grammar) *LRAnalysis {
	ga := &LRAnalysis{g: g, first: make(map[Symbol]SymbolSet)}
	ga.computeFirstSets()
	return ga
}

// Grammar returns the analysed grammar.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(sym). For a terminal t this is {t}.
func (ga *LRAnalysis) First(sym Symbol) SymbolSet {
	if set, ok := ga.first[sym]; ok {
		return set
	}
	if sym.IsTerminal() {
		return SymbolSet{sym: exists}
	}
	return SymbolSet{}
}

// FIRST sets are computed by iterating the standard rules to a fixed
// point: for each production A → X₁…Xₙ, add FIRST(Xᵢ) \ {ε} to
// FIRST(A) up to and including the first Xᵢ whose FIRST set lacks ε;
// if all n are nullable (or n = 0), add ε.
func (ga *LRAnalysis) computeFirstSets() {
	for _, t := range ga.g.Terminals() {
		ga.first[t] = SymbolSet{t: exists}
	}
	if _, ok := ga.first[EOF]; !ok {
		ga.first[EOF] = SymbolSet{EOF: exists}
	}
	for _, nt := range ga.g.NonTerminals() {
		ga.first[nt] = SymbolSet{}
	}
	changed := true
	for changed {
		changed = false
		for _, p := range ga.g.Productions() {
			fA := ga.first[p.LHS]
			if p.Len() == 0 {
				if fA.Add(Epsilon) {
					changed = true
				}
				continue
			}
			allNullable := true
			for _, X := range p.RHS() {
				fX := ga.first[X]
				for sym := range fX {
					if sym != Epsilon && fA.Add(sym) {
						changed = true
					}
				}
				if !fX.Contains(Epsilon) {
					allNullable = false
					break
				}
			}
			if allNullable && fA.Add(Epsilon) {
				changed = true
			}
		}
	}
	for _, nt := range ga.g.NonTerminals() {
		tracer().Debugf("FIRST(%s) = %v", nt, ga.first[nt])
	}
}

// FirstOfSeq computes FIRST of a symbol sequence: the non-ε elements of
// FIRST(Xᵢ) accumulate until one Xᵢ lacks ε; if every element contains
// ε (or the sequence is empty), ε is included.
func (ga *LRAnalysis) FirstOfSeq(seq []Symbol) SymbolSet {
	result := SymbolSet{}
	if len(seq) == 0 {
		result.Add(Epsilon)
		return result
	}
	for i, X := range seq {
		fX := ga.First(X)
		for sym := range fX {
			if sym != Epsilon {
				result.Add(sym)
			}
		}
		if !fX.Contains(Epsilon) {
			break
		}
		if i == len(seq)-1 {
			result.Add(Epsilon)
		}
	}
	return result
}
