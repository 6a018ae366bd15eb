package fa

import "sort"

// DFA minimization with the table-filling algorithm (Hopcroft & Ullman's
// "mark distinguishable pairs" formulation), followed by a union-find
// partitioning of the unmarked pairs.

type statePair struct {
	a, b int // DFA state ids, a < b
}

// canonical order: lower id first
func makePair(p, q int) statePair {
	if p <= q {
		return statePair{p, q}
	}
	return statePair{q, p}
}

// Minimize builds the minimal DFA equivalent to dfa over the given
// alphabet. Equivalence classes are computed with the table-filling
// algorithm; each class is represented by its lowest-id member, and the
// minimized states are created in ascending representative order, so the
// outcome is reproducible.
func Minimize(dfa *DFA, alpha *Alphabet) *DFA {
	states := append([]*DFAState(nil), dfa.States...)
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })

	// A pair is initially distinguishable iff exactly one member accepts.
	marked := make(map[statePair]bool)
	for i := 0; i < len(states); i++ {
		for j := i + 1; j < len(states); j++ {
			pair := makePair(states[i].ID, states[j].ID)
			marked[pair] = states[i].Final != states[j].Final
		}
	}
	byID := make(map[int]*DFAState, len(states))
	for _, s := range states {
		byID[s.ID] = s
	}

	changed := true
	for changed {
		changed = false
		for pair, dist := range marked {
			if dist {
				continue
			}
			p, q := byID[pair.a], byID[pair.b]
			alpha.Each(func(a rune) {
				if marked[pair] {
					return
				}
				pn, qn := p.Transition(a), q.Transition(a)
				if pn == nil && qn == nil {
					return
				}
				if pn == nil || qn == nil {
					marked[pair] = true
					changed = true
					return
				}
				if marked[makePair(pn.ID, qn.ID)] {
					marked[pair] = true
					changed = true
				}
			})
		}
	}

	// Union every unmarked pair.
	uf := newUnionFind(len(states))
	index := make(map[int]int, len(states)) // state id → slice index
	for i, s := range states {
		index[s.ID] = i
	}
	for pair, dist := range marked {
		if !dist {
			uf.union(index[pair.a], index[pair.b])
		}
	}

	classes := make(map[int][]*DFAState)
	for i, s := range states {
		root := uf.find(i)
		classes[root] = append(classes[root], s)
	}
	// Order classes by their representative (lowest member id), so that
	// minimized state ids are reproducible.
	groups := make([][]*DFAState, 0, len(classes))
	for _, group := range classes {
		rep := 0
		for i, s := range group {
			if s.ID < group[rep].ID {
				rep = i
			}
		}
		group[0], group[rep] = group[rep], group[0]
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0].ID < groups[j][0].ID })

	minimized := make([]*DFAState, 0, len(groups))
	classOf := make(map[int]*DFAState) // old state id → minimized state
	for _, group := range groups {
		rep := group[0]
		ns := newDFAState(len(minimized), rep.Name)
		for _, s := range group {
			if !s.Final {
				continue
			}
			// same tie-break as subset construction: min priority, lowest id
			if !ns.Final || s.priority < ns.priority {
				ns.Final = true
				ns.priority = s.priority
				ns.TokType = s.TokType
			}
		}
		minimized = append(minimized, ns)
		for _, s := range group {
			classOf[s.ID] = ns
		}
	}

	// Transitions are reconstructed from each class representative.
	for _, group := range groups {
		rep := group[0]
		ns := classOf[rep.ID]
		alpha.Each(func(a rune) {
			if target := rep.Transition(a); target != nil {
				ns.AddTransition(a, classOf[target.ID])
			}
		})
	}

	tracer().Debugf("minimization: %d → %d states", len(states), len(minimized))
	return &DFA{Start: classOf[dfa.Start.ID], States: minimized, Alpha: alpha}
}

// --- Union-find with path compression ----------------------------------

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	if uf.parent[x] == x {
		return x
	}
	root := uf.find(uf.parent[x])
	uf.parent[x] = root
	return root
}

func (uf *unionFind) union(x, y int) {
	rx, ry := uf.find(x), uf.find(y)
	if rx != ry {
		uf.parent[ry] = rx
	}
}
