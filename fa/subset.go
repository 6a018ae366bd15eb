package fa

// Subset construction, NFA → DFA.
//
// Refer to "Compilers: Principles, Techniques, and Tools" by Aho, Lam,
// Sethi & Ullman, section 3.7.1 (the classic worklist formulation).

// EpsilonClosure computes the smallest superset of set which is closed
// under epsilon transitions.
func EpsilonClosure(g *Graph, set StateSet) StateSet {
	closure := NewStateSet(set.IDs()...)
	stack := append([]StateID(nil), set.IDs()...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range g.State(id).EpsilonMoves() {
			if closure.Add(to) {
				stack = append(stack, to)
			}
		}
	}
	return closure
}

// Move computes the set of states reachable from any member of set by a
// single transition labelled exactly a.
func Move(g *Graph, set StateSet, a rune) StateSet {
	var result StateSet
	for _, id := range set.IDs() {
		for _, to := range g.State(id).Moves(a) {
			result.Add(to)
		}
	}
	return result
}

// BuildDFA converts an NFA into a DFA over the given input alphabet,
// using the subset construction. DFA states are discovered breadth-first;
// with the alphabet iterated in sorted order the discovery order — and
// with it the state ids — is deterministic.
//
// An empty or non-matching alphabet yields a degenerate DFA consisting
// of the start closure only.
func BuildDFA(nfa NFA, alpha *Alphabet) *DFA {
	g := nfa.G
	startName := EpsilonClosure(g, NewStateSet(nfa.Start))
	start := newDFAState(0, startName)
	start.deriveAcceptance(g)

	states := []*DFAState{start}
	byName := map[string]*DFAState{startName.Key(): start}
	worklist := []*DFAState{start}

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]
		alpha.Each(func(a rune) {
			T := EpsilonClosure(g, Move(g, current.Name, a))
			if T.Empty() {
				return
			}
			target, ok := byName[T.Key()]
			if !ok {
				target = newDFAState(len(states), T)
				target.deriveAcceptance(g)
				states = append(states, target)
				byName[T.Key()] = target
				worklist = append(worklist, target)
			}
			current.AddTransition(a, target)
		})
	}
	tracer().Debugf("subset construction: %d NFA states → %d DFA states",
		g.StateCount(), len(states))
	return &DFA{Start: start, States: states, Alpha: alpha}
}
