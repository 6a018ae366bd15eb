package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func makeTables(t *testing.T, g *Grammar) *TableGenerator {
	gen := NewTableGenerator(Analysis(g))
	gen.CreateTables()
	return gen
}

func TestParenGrammarConflictFree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	gen := makeTables(t, makeParenGrammar(t))
	if gen.HasConflicts {
		t.Errorf("S → ( S ) | ε is LALR(1), but conflicts were reported: %v",
			gen.Conflicts())
	}
	if gen.StateCount() > gen.Automaton().StateCount() {
		t.Errorf("LALR state count %d exceeds LR(1) state count %d",
			gen.StateCount(), gen.Automaton().StateCount())
	}
}

func TestAmbiguousExpressionGrammarHasConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	// E → E + E | id is ambiguous, a shift/reduce conflict is inevitable
	b := NewGrammarBuilder("Ambiguous Expressions")
	b.LHS("E").N("E").T("+", '+').N("E").End()
	b.LHS("E").T("id", 5).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	gen := makeTables(t, g)
	assert.True(t, gen.HasConflicts, "expected at least one conflict")
	found := false
	for _, c := range gen.Conflicts() {
		if c.Category() == "shift/reduce" {
			found = true
		}
	}
	assert.True(t, found, "expected a shift/reduce conflict, got %v", gen.Conflicts())
}

// S → a A a | b A b with A → c: the two states { A → c •, a } and
// { A → c •, b } have equal kernels and merge under LALR.
func TestLALRMergeShrinksCollection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Merge")
	b.LHS("S").T("a", 'a').N("A").T("a", 'a').End()
	b.LHS("S").T("b", 'b').N("A").T("b", 'b').End()
	b.LHS("A").T("c", 'c').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	gen := makeTables(t, g)
	if gen.HasConflicts {
		t.Errorf("grammar is LALR(1), but conflicts were reported: %v", gen.Conflicts())
	}
	if gen.StateCount() >= gen.Automaton().StateCount() {
		t.Errorf("expected LALR merge to shrink the collection: %d LR(1) vs %d LALR",
			gen.Automaton().StateCount(), gen.StateCount())
	}
}

func TestReduceReduceConflictFirstWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	// S → a A | a B with A → b, B → b: after "ab" both A → b and B → b
	// are complete on lookahead $, a reduce/reduce conflict. The cell
	// keeps its first-written action (A → b, the earlier production).
	b := NewGrammarBuilder("RR")
	b.LHS("S").T("a", 'a').N("A").End()
	b.LHS("S").T("a", 'a').N("B").End()
	b.LHS("A").T("b", 'b').End()
	b.LHS("B").T("b", 'b').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	gen := makeTables(t, g)
	assert.True(t, gen.HasConflicts)
	rr := false
	for _, c := range gen.Conflicts() {
		if c.Category() == "reduce/reduce" {
			rr = true
			if c.Symbol != EOF {
				t.Errorf("conflict should be on $, is on %v", c.Symbol)
			}
		}
	}
	assert.True(t, rr, "expected a reduce/reduce conflict, got %v", gen.Conflicts())
	// the conflicted cell still holds a consultable action
	var conflicted Conflict
	for _, c := range gen.Conflicts() {
		if c.Category() == "reduce/reduce" {
			conflicted = c
		}
	}
	action, ok := gen.Action(conflicted.State, conflicted.Symbol)
	if !ok {
		t.Fatal("conflicted cell lost its action")
	}
	if action.Kind != ReduceAction || action.Prod.Serial != 2 {
		t.Errorf("first-written action should be reduce A → b, is %v", action)
	}
}

func TestAcceptCell(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	gen := makeTables(t, makeParenGrammar(t))
	// exactly one state carries ACTION[s, $] = accept
	accepts := 0
	for s := 0; s < gen.StateCount(); s++ {
		if a, ok := gen.Action(s, EOF); ok && a.Kind == AcceptAction {
			accepts++
		}
	}
	assert.Equal(t, 1, accepts, "expected exactly one accepting state")
}

func TestTablesAreDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	first := makeTables(t, makeParenGrammar(t))
	for run := 0; run < 5; run++ {
		again := makeTables(t, makeParenGrammar(t))
		if again.StateCount() != first.StateCount() ||
			again.InitialState() != first.InitialState() {
			t.Fatalf("table shape differs between runs")
		}
		for s := 0; s < first.StateCount(); s++ {
			first.Grammar().EachSymbol(func(X Symbol) {
				a1, ok1 := first.Action(s, X)
				a2, ok2 := again.Action(s, X)
				if ok1 != ok2 || (ok1 && a1.String() != a2.String()) {
					t.Errorf("ACTION[%d,%v] differs between runs", s, X)
				}
			})
		}
	}
}
