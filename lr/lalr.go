package lr

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// ActionKind enumerates the three LALR driver actions.
type ActionKind int8

// The parser actions.
const (
	ShiftAction ActionKind = iota
	ReduceAction
	AcceptAction
)

func (k ActionKind) String() string {
	switch k {
	case ShiftAction:
		return "shift"
	case ReduceAction:
		return "reduce"
	case AcceptAction:
		return "accept"
	}
	return "?"
}

// Action is an entry of the ACTION table: SHIFT to a state, REDUCE by a
// production, or ACCEPT.
type Action struct {
	Kind  ActionKind
	State int         // target state, for SHIFT
	Prod  *Production // production, for REDUCE
}

func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return fmt.Sprintf("shift %d", a.State)
	case ReduceAction:
		return fmt.Sprintf("reduce %v", a.Prod)
	}
	return "accept"
}

// Conflict describes a parse-table cell wanted by two distinct actions.
// The cell keeps its first-written action; every attempted overwrite is
// recorded as a conflict, so a conflicted table remains consultable.
type Conflict struct {
	State    int
	Symbol   Symbol
	Existing ActionKind
	Incoming ActionKind
}

// Category returns "shift/reduce", "reduce/reduce" or "accept" for the
// rare conflicts involving the accept action.
func (c Conflict) Category() string {
	if c.Existing == AcceptAction || c.Incoming == AcceptAction {
		return "accept"
	}
	if c.Existing == ReduceAction && c.Incoming == ReduceAction {
		return "reduce/reduce"
	}
	return "shift/reduce"
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s conflict in state %d on %s (existing=%s, new=%s)",
		c.Category(), c.State, c.Symbol, c.Existing, c.Incoming)
}

// TableGenerator constructs LALR(1) parser tables. Clients create a
// Grammar G, an LRAnalysis for G, and then a table generator;
// CreateTables builds the LR(1) collection, merges it into the LALR(1)
// automaton and fills the ACTION and GOTO tables.
type TableGenerator struct {
	g            *Grammar
	ga           *LRAnalysis
	auto         *LR1Automaton
	lalrStates   []itemSet
	lalrTrans    map[int]map[Symbol]int
	action       map[int]map[Symbol]Action
	gototable    map[int]map[Symbol]int
	conflicts    *arraylist.List
	initial      int
	HasConflicts bool
}

// NewTableGenerator creates a table generator for a (previously
// analysed) grammar.
func NewTableGenerator(ga *LRAnalysis) *TableGenerator {
	return &TableGenerator{
		g:         ga.Grammar(),
		ga:        ga,
		conflicts: arraylist.New(),
	}
}

// Automaton returns the underlying canonical LR(1) collection. It is
// built by CreateTables, but may be requested beforehand.
func (gen *TableGenerator) Automaton() *LR1Automaton {
	if gen.auto == nil {
		gen.auto = NewAutomaton(gen.ga)
		gen.auto.Build()
	}
	return gen.auto
}

// CreateTables builds the LR(1) collection, merges kernel-equivalent
// states and fills the ACTION/GOTO tables.
func (gen *TableGenerator) CreateTables() {
	gen.merge(gen.Automaton())
	gen.fillTables()
	gen.HasConflicts = gen.conflicts.Size() > 0
}

// InitialState returns the LALR state corresponding to LR(1) state 0.
func (gen *TableGenerator) InitialState() int {
	return gen.initial
}

// StateCount returns the number of LALR(1) states.
func (gen *TableGenerator) StateCount() int {
	return len(gen.lalrStates)
}

// State returns the items of LALR state n in canonical order.
func (gen *TableGenerator) State(n int) []Item {
	return gen.lalrStates[n].values()
}

// Transitions returns the LALR transition map.
func (gen *TableGenerator) Transitions() map[int]map[Symbol]int {
	return gen.lalrTrans
}

// Action looks up ACTION[state, sym].
func (gen *TableGenerator) Action(state int, sym Symbol) (Action, bool) {
	row, ok := gen.action[state]
	if !ok {
		return Action{}, false
	}
	a, ok := row[sym]
	return a, ok
}

// Goto looks up GOTO[state, nt].
func (gen *TableGenerator) Goto(state int, nt Symbol) (int, bool) {
	row, ok := gen.gototable[state]
	if !ok {
		return 0, false
	}
	t, ok := row[nt]
	return t, ok
}

// Conflicts returns the recorded table conflicts.
func (gen *TableGenerator) Conflicts() []Conflict {
	r := make([]Conflict, 0, gen.conflicts.Size())
	it := gen.conflicts.Iterator()
	for it.Next() {
		r = append(r, it.Value().(Conflict))
	}
	return r
}

// Grammar returns the generator's grammar.
func (gen *TableGenerator) Grammar() *Grammar {
	return gen.g
}

// AugmentedProduction returns the synthetic start production.
func (gen *TableGenerator) AugmentedProduction() *Production {
	return gen.Automaton().AugmentedProduction()
}

// merge groups the LR(1) states by kernel equivalence and builds one
// LALR state per group: for each kernel present, one item per lookahead
// in the union of the group's lookaheads for that kernel. Groups are
// formed in state-index order, so LALR ids are assigned in
// first-encounter order and the merge is deterministic. Transitions map
// through the old→new state mapping; kernel-equivalent sources agree on
// kernel-equivalent targets, so duplicates coalesce.
func (gen *TableGenerator) merge(auto *LR1Automaton) {
	aug := auto.AugmentedProduction()
	groupOf := make(map[string]int) // kernel key → LALR state id
	var groups [][]int              // LALR id → member LR(1) state ids
	mapping := make([]int, len(auto.states))
	for i, S := range auto.states {
		key := S.kernelKey(aug)
		id, ok := groupOf[key]
		if !ok {
			id = len(groups)
			groupOf[key] = id
			groups = append(groups, nil)
		}
		groups[id] = append(groups[id], i)
		mapping[i] = id
	}

	gen.lalrStates = make([]itemSet, len(groups))
	for id, members := range groups {
		merged := newItemSet()
		for _, sid := range members {
			for i := range auto.states[sid] {
				merged.add(i)
			}
		}
		gen.lalrStates[id] = merged
	}

	gen.lalrTrans = make(map[int]map[Symbol]int)
	for from, row := range auto.trans {
		for X, to := range row {
			nf, nt := mapping[from], mapping[to]
			if gen.lalrTrans[nf] == nil {
				gen.lalrTrans[nf] = make(map[Symbol]int)
			}
			gen.lalrTrans[nf][X] = nt
		}
	}
	gen.initial = mapping[0]
	tracer().Infof("LALR merge: %d LR(1) states → %d LALR states",
		len(auto.states), len(gen.lalrStates))
}

// setAction writes ACTION[state, sym] unless the cell is already taken,
// in which case the first-written action stays and a conflict is
// recorded.
func (gen *TableGenerator) setAction(state int, sym Symbol, a Action) {
	row := gen.action[state]
	if row == nil {
		row = make(map[Symbol]Action)
		gen.action[state] = row
	}
	if existing, ok := row[sym]; ok {
		if existing.Kind == ShiftAction && a.Kind == ShiftAction {
			return // same shift target, not a conflict
		}
		c := Conflict{
			State:    state,
			Symbol:   sym,
			Existing: existing.Kind,
			Incoming: a.Kind,
		}
		gen.conflicts.Add(c)
		tracer().Debugf("%v", c)
		return
	}
	row[sym] = a
}

// fillTables populates ACTION and GOTO from the merged automaton:
// terminal transitions become shifts, completed items become reductions
// on their lookahead (the completed augmented item with lookahead $
// becomes ACCEPT), and non-terminal transitions fill GOTO.
func (gen *TableGenerator) fillTables() {
	aug := gen.auto.AugmentedProduction()
	gen.action = make(map[int]map[Symbol]Action)
	gen.gototable = make(map[int]map[Symbol]int)
	gen.conflicts.Clear()

	for s := range gen.lalrStates {
		for X, t := range gen.lalrTrans[s] {
			if X.IsTerminal() {
				gen.setAction(s, X, Action{Kind: ShiftAction, State: t})
			} else {
				if gen.gototable[s] == nil {
					gen.gototable[s] = make(map[Symbol]int)
				}
				gen.gototable[s][X] = t
			}
		}
		for _, item := range gen.lalrStates[s].values() {
			if _, ok := item.PeekSymbol(); ok {
				continue // dot not at the end
			}
			if item.Prod == aug && item.Lookahead == EOF {
				gen.setAction(s, EOF, Action{Kind: AcceptAction})
				continue
			}
			gen.setAction(s, item.Lookahead, Action{Kind: ReduceAction, Prod: item.Prod})
		}
	}
}
