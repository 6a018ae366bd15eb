package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// We use the small grammar from the package documentation:
//
//	S → A a
//	A → B D
//	B → b | ε
//	D → d | ε
func makeNullableGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Nullable")
	b.LHS("S").N("A").T("a", 1).End()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b", 2).End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d", 3).End()
	b.LHS("D").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func sym(name string, kind SymbolKind) Symbol {
	return Symbol{Name: name, Kind: kind}
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	g := makeNullableGrammar(t)
	if g.Size() != 6 {
		t.Errorf("grammar should have 6 productions, has %d", g.Size())
	}
	if g.Start() != sym("S", NonTerminal) {
		t.Errorf("start symbol should be S, is %v", g.Start())
	}
	if len(g.NonTerminals()) != 4 {
		t.Errorf("grammar should have 4 non-terminals, has %d", len(g.NonTerminals()))
	}
	// declared terminals plus the reserved $ terminal
	if len(g.Terminals()) != 4 {
		t.Errorf("grammar should have 4 terminals, has %d", len(g.Terminals()))
	}
	if ps := g.ProductionsFor(sym("B", NonTerminal)); len(ps) != 2 {
		t.Errorf("B should have 2 productions, has %d", len(ps))
	}
}

func TestFirstSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	ga := Analysis(makeNullableGrammar(t))
	cases := []struct {
		nt       string
		members  []Symbol
		nullable bool
	}{
		{"S", []Symbol{sym("a", Terminal), sym("b", Terminal), sym("d", Terminal)}, false},
		{"A", []Symbol{sym("b", Terminal), sym("d", Terminal)}, true},
		{"B", []Symbol{sym("b", Terminal)}, true},
		{"D", []Symbol{sym("d", Terminal)}, true},
	}
	for _, c := range cases {
		first := ga.First(sym(c.nt, NonTerminal))
		for _, m := range c.members {
			if !first.Contains(m) {
				t.Errorf("FIRST(%s) should contain %v, is %v", c.nt, m, first)
			}
		}
		if first.Contains(Epsilon) != c.nullable {
			t.Errorf("FIRST(%s) nullable = %v, want %v", c.nt, !c.nullable, c.nullable)
		}
		want := len(c.members)
		if c.nullable {
			want++
		}
		if first.Size() != want {
			t.Errorf("FIRST(%s) has %d members, want %d: %v", c.nt, first.Size(), want, first)
		}
	}
}

func TestFirstOfTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	ga := Analysis(makeNullableGrammar(t))
	a := sym("a", Terminal)
	if first := ga.First(a); first.Size() != 1 || !first.Contains(a) {
		t.Errorf("FIRST(a) should be {a}, is %v", first)
	}
	if first := ga.First(EOF); first.Size() != 1 || !first.Contains(EOF) {
		t.Errorf("FIRST($) should be {$}, is %v", first)
	}
}

func TestFirstOfSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	ga := Analysis(makeNullableGrammar(t))
	B, D := sym("B", NonTerminal), sym("D", NonTerminal)
	a := sym("a", Terminal)
	// B D a: B and D are nullable, so b, d and a are all possible starts
	first := ga.FirstOfSeq([]Symbol{B, D, a})
	for _, m := range []Symbol{sym("b", Terminal), sym("d", Terminal), a} {
		if !first.Contains(m) {
			t.Errorf("FIRST(B D a) should contain %v, is %v", m, first)
		}
	}
	if first.Contains(Epsilon) {
		t.Errorf("FIRST(B D a) must not contain ε, is %v", first)
	}
	// B D: all nullable → ε included
	first = ga.FirstOfSeq([]Symbol{B, D})
	if !first.Contains(Epsilon) {
		t.Errorf("FIRST(B D) should contain ε, is %v", first)
	}
	// empty sequence
	first = ga.FirstOfSeq(nil)
	if first.Size() != 1 || !first.Contains(Epsilon) {
		t.Errorf("FIRST(ε) should be {ε}, is %v", first)
	}
}
