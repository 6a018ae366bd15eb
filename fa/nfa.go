package fa

import (
	"math"

	"github.com/dlechner/parlex"
)

// Epsilon labels transitions which consume no input.
const Epsilon rune = -1

// StateID identifies an NFA state within its Graph.
type StateID int

// NoState is the id of a non-existing state.
const NoState StateID = -1

// Transition is a directed edge to another state of the same graph,
// labelled with an input symbol (or Epsilon).
type Transition struct {
	Symbol rune
	To     StateID
}

// State is a state within an NFA. States are created through a Graph,
// which hands out monotonically increasing ids. A state may be marked
// final, in which case it carries the token type it recognizes and a
// priority for tie-breaking between competing final states (lower wins).
type State struct {
	ID          StateID
	transitions []Transition
	Final       bool
	TokType     parlex.TokType
	Priority    int
}

// MakeFinal marks s as an accepting state for token type tt.
// The priority defaults to the maximum int value, i.e. lowest precedence.
func (s *State) MakeFinal(tt parlex.TokType) {
	s.Final = true
	s.TokType = tt
}

// MakeFinalWithPriority marks s as an accepting state for token type tt
// and assigns a tie-breaking priority (lower values win).
func (s *State) MakeFinalWithPriority(tt parlex.TokType, prio int) {
	s.Final = true
	s.TokType = tt
	s.Priority = prio
}

// Transitions returns the outgoing edges of s.
func (s *State) Transitions() []Transition {
	return s.transitions
}

// EpsilonMoves returns the ids of states reachable from s by a single
// epsilon transition.
func (s *State) EpsilonMoves() []StateID {
	var r []StateID
	for _, t := range s.transitions {
		if t.Symbol == Epsilon {
			r = append(r, t.To)
		}
	}
	return r
}

// Moves returns the ids of states reachable from s by a single transition
// labelled with symbol a.
func (s *State) Moves(a rune) []StateID {
	var r []StateID
	for _, t := range s.transitions {
		if t.Symbol != Epsilon && t.Symbol == a {
			r = append(r, t.To)
		}
	}
	return r
}

// Graph is an arena of NFA states. All states of an automaton live in the
// same graph and reference each other by id. Ids are unique and
// monotonically increasing within a graph; independent builds use
// independent graphs.
type Graph struct {
	states []*State
}

// NewGraph creates an empty state arena.
func NewGraph() *Graph {
	return &Graph{}
}

// NewState creates a fresh state. Its id is the next free slot of the
// arena.
func (g *Graph) NewState() *State {
	s := &State{
		ID:       StateID(len(g.states)),
		Priority: math.MaxInt,
	}
	g.states = append(g.states, s)
	return s
}

// State returns the state with the given id, or nil for NoState.
func (g *Graph) State(id StateID) *State {
	if id == NoState {
		return nil
	}
	return g.states[id]
}

// StateCount returns the number of states in the arena.
func (g *Graph) StateCount() int {
	return len(g.states)
}

// AddTransition adds an edge from → to, labelled with symbol a
// (possibly Epsilon).
func (g *Graph) AddTransition(from StateID, a rune, to StateID) {
	s := g.states[from]
	s.transitions = append(s.transitions, Transition{Symbol: a, To: to})
}

// NFA is a non-deterministic finite automaton over a graph of states,
// denoted by its start and end state. Thompson fragments always have
// exactly one start and one end state. Automata without a single end
// state (see Union) carry NoState as End; their accepting states are the
// final-flagged states reachable from Start.
type NFA struct {
	G     *Graph
	Start StateID
	End   StateID
}

// Union builds a multi-pattern NFA: a fresh start state with epsilon
// edges to every input automaton's start. The result has no single end
// state; the accepting states are the individual automata's ends, each
// already tagged with a token type and priority. All inputs must share
// the graph g. This is the entry point for building a lexer NFA over
// many token patterns.
func Union(g *Graph, nfas []NFA) NFA {
	start := g.NewState()
	for _, n := range nfas {
		g.AddTransition(start.ID, Epsilon, n.Start)
	}
	tracer().Debugf("union of %d automata, start state %d", len(nfas), start.ID)
	return NFA{G: g, Start: start.ID, End: NoState}
}
