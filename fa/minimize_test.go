package fa_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/dlechner/parlex/fa"
)

func TestMinimizeMergesEquivalentBranches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.fa")
	defer teardown()
	//
	// a|b: both branch targets accept and have no outgoing edges, so they
	// collapse into one state.
	_, nfa := compileNFA(t, "a|b")
	alpha := fa.NewAlphabet('a', 'b')
	dfa := fa.BuildDFA(nfa, alpha)
	min := fa.Minimize(dfa, alpha)
	if len(min.States) >= len(dfa.States) {
		t.Errorf("minimization should shrink the DFA: %d → %d states",
			len(dfa.States), len(min.States))
	}
	if len(min.States) != 2 {
		t.Errorf("minimal DFA for a|b has 2 states, got %d", len(min.States))
	}
}

func TestMinimizeAOrAA(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.fa")
	defer teardown()
	//
	_, nfa := compileNFA(t, "a|aa")
	alpha := fa.NewAlphabet('a')
	dfa := fa.BuildDFA(nfa, alpha)
	min := fa.Minimize(dfa, alpha)
	if len(min.States) > len(dfa.States) {
		t.Errorf("minimization must never grow the DFA")
	}
	if len(min.States) != 3 {
		t.Errorf("minimal DFA for a|aa has 3 states (start, one a, two a), got %d",
			len(min.States))
	}
	for _, w := range []string{"a", "aa"} {
		if !min.Accepts(w) {
			t.Errorf("minimized DFA should accept %q", w)
		}
	}
	for _, w := range []string{"", "aaa"} {
		if min.Accepts(w) {
			t.Errorf("minimized DFA should reject %q", w)
		}
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.fa")
	defer teardown()
	//
	_, nfa := compileNFA(t, "(a|b)*abb")
	alpha := fa.NewAlphabet('a', 'b')
	dfa := fa.BuildDFA(nfa, alpha)
	min := fa.Minimize(dfa, alpha)
	samples := []string{
		"", "a", "b", "ab", "abb", "aabb", "babb", "abab", "ababb",
		"bbabb", "abba", "abbabb",
	}
	for _, w := range samples {
		if dfa.Accepts(w) != min.Accepts(w) {
			t.Errorf("minimization changed the language on %q", w)
		}
	}
}

func TestMinimizeNoEquivalentStatesLeft(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.fa")
	defer teardown()
	//
	_, nfa := compileNFA(t, "(a|b)*abb")
	alpha := fa.NewAlphabet('a', 'b')
	min := fa.Minimize(fa.BuildDFA(nfa, alpha), alpha)
	// minimizing twice must be the identity on the state count
	again := fa.Minimize(min, alpha)
	if len(again.States) != len(min.States) {
		t.Errorf("minimized DFA still had equivalent states: %d → %d",
			len(min.States), len(again.States))
	}
}

func TestMinimizeIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.fa")
	defer teardown()
	//
	alpha := fa.NewAlphabet('a', 'b')
	var fingerprint []string
	for run := 0; run < 5; run++ {
		_, nfa := compileNFA(t, "(a|b)*abb")
		min := fa.Minimize(fa.BuildDFA(nfa, alpha), alpha)
		var fp []string
		for _, s := range min.States {
			row := ""
			s.EachTransition(alpha, func(a rune, to *fa.DFAState) {
				row += fmt.Sprintf("%c→%d ", a, to.ID)
			})
			if s.Final {
				row += "*"
			}
			fp = append(fp, row)
		}
		if run == 0 {
			fingerprint = fp
			continue
		}
		if len(fp) != len(fingerprint) {
			t.Fatalf("run %d produced %d states, first run %d", run, len(fp), len(fingerprint))
		}
		for i := range fp {
			if fp[i] != fingerprint[i] {
				t.Errorf("run %d state %d differs: %q vs %q", run, i, fp[i], fingerprint[i])
			}
		}
	}
}
