package fa

import (
	"math"

	"github.com/dlechner/parlex"
)

// DFAState is a state of a deterministic automaton. It is named by the
// set of NFA states it represents and additionally carries a serial id
// reflecting discovery order. Transitions are functional: at most one
// destination per input symbol.
type DFAState struct {
	ID      int
	Name    StateSet
	Final   bool
	TokType parlex.TokType
	// priority of the winning accepting NFA member, for minimizer tie-breaks
	priority int
	next     map[rune]*DFAState
}

func newDFAState(id int, name StateSet) *DFAState {
	return &DFAState{
		ID:       id,
		Name:     name,
		priority: math.MaxInt,
		next:     make(map[rune]*DFAState),
	}
}

// Transition returns the destination state for symbol a, or nil.
func (d *DFAState) Transition(a rune) *DFAState {
	return d.next[a]
}

// AddTransition sets the destination for symbol a. Transitions are
// functional, a second destination for the same symbol replaces the
// first.
func (d *DFAState) AddTransition(a rune, to *DFAState) {
	d.next[a] = to
}

// EachTransition calls f for every outgoing edge, in alphabet order.
func (d *DFAState) EachTransition(alpha *Alphabet, f func(a rune, to *DFAState)) {
	alpha.Each(func(a rune) {
		if to := d.next[a]; to != nil {
			f(a, to)
		}
	})
}

// deriveAcceptance marks d final iff any member NFA state is final. When
// several members are final, the token type is taken from the member
// with minimum priority; ties break to the lowest state id (members are
// visited in ascending id order).
func (d *DFAState) deriveAcceptance(g *Graph) {
	for _, id := range d.Name.IDs() {
		s := g.State(id)
		if !s.Final {
			continue
		}
		if !d.Final || s.Priority < d.priority {
			d.Final = true
			d.priority = s.Priority
			d.TokType = s.TokType
		}
	}
}

// DFA is a deterministic finite automaton. States is the list of all
// states in discovery order; Start is States[0].
type DFA struct {
	Start  *DFAState
	States []*DFAState
	Alpha  *Alphabet
}

// Accepts runs the automaton over input and reports whether it ends in
// an accepting state having consumed the whole string.
func (dfa *DFA) Accepts(input string) bool {
	cur := dfa.Start
	for _, r := range input {
		cur = cur.Transition(r)
		if cur == nil {
			return false
		}
	}
	return cur.Final
}

// Match runs the automaton over input with maximal munch, starting at
// the first rune. It returns the length in runes of the longest
// accepted prefix and the token type of the accepting state, or -1 if
// no prefix is accepted.
func (dfa *DFA) Match(input []rune) (int, parlex.TokType) {
	cur := dfa.Start
	best, btype := -1, parlex.TokType(0)
	if cur.Final {
		best, btype = 0, cur.TokType
	}
	for i, r := range input {
		cur = cur.Transition(r)
		if cur == nil {
			break
		}
		if cur.Final {
			best, btype = i+1, cur.TokType
		}
	}
	return best, btype
}
