package lr

// Construction of the canonical LR(1) collection.
//
// Refer to "Compilers: Principles, Techniques, and Tools" by Aho, Lam,
// Sethi & Ullman, section 4.7.2 (canonical LR(1) items).

// LR1Automaton is the canonical collection of LR(1) item sets for an
// augmented grammar, together with the GOTO transitions between them.
// States are referenced by index in discovery order; state 0 is the
// closure of the augmented start item.
type LR1Automaton struct {
	g         *Grammar
	ga        *LRAnalysis
	augmented *Production
	states    []itemSet
	trans     map[int]map[Symbol]int
	index     map[string]int // canonical item-set key → state index
}

// NewAutomaton creates an LR(1) automaton builder for a previously
// analysed grammar. Call Build to construct the collection.
func NewAutomaton(ga *LRAnalysis) *LR1Automaton {
	return &LR1Automaton{g: ga.Grammar(), ga: ga}
}

// Grammar returns the underlying (un-augmented) grammar.
func (a *LR1Automaton) Grammar() *Grammar {
	return a.g
}

// AugmentedProduction returns the synthetic production S' → S. Its
// reduction means ACCEPT; clients detect it by identity, never by the
// symbol's name.
func (a *LR1Automaton) AugmentedProduction() *Production {
	return a.augmented
}

// StateCount returns the number of states in the collection.
func (a *LR1Automaton) StateCount() int {
	return len(a.states)
}

// State returns the items of state n in canonical order.
func (a *LR1Automaton) State(n int) []Item {
	return a.states[n].values()
}

// Transitions returns the transition map: state index → symbol → state
// index.
func (a *LR1Automaton) Transitions() map[int]map[Symbol]int {
	return a.trans
}

// augment introduces the fresh start symbol S' and the production
// S' → S. The production is tagged by identity (and by a reserved
// serial), so a grammar which happens to contain a symbol named "S'"
// cannot be mistaken for it.
func (a *LR1Automaton) augment() {
	start := a.g.Start()
	a.augmented = &Production{
		Serial: -1,
		LHS:    Symbol{Name: start.Name + "'", Kind: NonTerminal},
		rhs:    []Symbol{start},
	}
}

// Closure computes the LR(1) closure of a set of items with the standard
// worklist algorithm: for each item [A → α · B β, a] with non-terminal
// B and each production B → γ, the items [B → · γ, b] are added for
// every b ∈ FIRST(βa).
func (a *LR1Automaton) closure(S itemSet) itemSet {
	C := newItemSet()
	var worklist []Item
	for i := range S {
		C.add(i)
		worklist = append(worklist, i)
	}
	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]
		B, ok := item.PeekSymbol()
		if !ok || B.IsTerminal() {
			continue
		}
		betaA := append(append([]Symbol(nil), item.Suffix()...), item.Lookahead)
		lookaheads := a.ga.FirstOfSeq(betaA)
		for _, p := range a.g.ProductionsFor(B) {
			for la := range lookaheads {
				if la == Epsilon {
					continue
				}
				ni := Item{Prod: p, Dot: 0, Lookahead: la}
				if C.add(ni) {
					worklist = append(worklist, ni)
				}
			}
		}
	}
	return C
}

// gotoSet advances the dot over symbol X for every item of S which has
// X after the dot, and returns the closure of the result.
func (a *LR1Automaton) gotoSet(S itemSet, X Symbol) itemSet {
	moved := newItemSet()
	for i := range S {
		if sym, ok := i.PeekSymbol(); ok && sym == X {
			moved.add(i.Advance())
		}
	}
	if len(moved) == 0 {
		return moved
	}
	return a.closure(moved)
}

// Build constructs the canonical collection: starting from
// I₀ = CLOSURE({[S' → · S, $]}), states are discovered with a worklist,
// computing GOTO(I, X) for every grammar symbol X in declaration order.
// New states are found-or-inserted by the canonical hash of their item
// set; discovery order is deterministic.
func (a *LR1Automaton) Build() {
	a.states = nil
	a.trans = make(map[int]map[Symbol]int)
	a.index = make(map[string]int)
	a.augment()

	initial := Item{Prod: a.augmented, Dot: 0, Lookahead: EOF}
	I0 := a.closure(newItemSet(initial))
	a.states = append(a.states, I0)
	a.index[I0.key()] = 0
	worklist := []int{0}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		I := a.states[cur]
		a.g.EachSymbol(func(X Symbol) {
			J := a.gotoSet(I, X)
			if len(J) == 0 {
				return
			}
			key := J.key()
			target, ok := a.index[key]
			if !ok {
				target = len(a.states)
				a.states = append(a.states, J)
				a.index[key] = target
				worklist = append(worklist, target)
				tracer().Debugf("state %d --%s--> new state %d", cur, X, target)
			}
			if a.trans[cur] == nil {
				a.trans[cur] = make(map[Symbol]int)
			}
			a.trans[cur][X] = target
		})
	}
	tracer().Infof("canonical LR(1) collection: %d states", len(a.states))
}
