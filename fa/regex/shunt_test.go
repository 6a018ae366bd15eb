package regex

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsertConcatenation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.fa")
	defer teardown()
	//
	cases := []struct{ in, out string }{
		{"ab", "a·b"},
		{"a(b|c)*", "a·(b|c)*"},
		{"a*b", "a*·b"},
		{"a?b+c", "a?·b+·c"},
		{"(a)(b)", "(a)·(b)"},
		{"a|b", "a|b"},
		{"", ""},
	}
	for _, c := range cases {
		if got := InsertConcatenation(c.in); got != c.out {
			t.Errorf("insertConcatenation(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestToPostfix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.fa")
	defer teardown()
	//
	cases := []struct{ in, out string }{
		{"a(b|c)*", "abc|*·"},
		{"ab", "ab·"},
		{"a|b", "ab|"},
		{"a|bc", "abc·|"},
		{"(a|b)c", "ab|c·"},
		{"a*", "a*"},
		{"a+b?", "a+b?·"},
	}
	for _, c := range cases {
		got, err := ToPostfix(c.in)
		if err != nil {
			t.Errorf("toPostfix(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.out {
			t.Errorf("toPostfix(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestToPostfixIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.fa")
	defer teardown()
	//
	first, err := ToPostfix("a(b|c)*d?e+")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, _ := ToPostfix("a(b|c)*d?e+")
		if again != first {
			t.Errorf("run %d produced %q, first run produced %q", i, again, first)
		}
	}
}

func TestToPostfixUnbalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.fa")
	defer teardown()
	//
	for _, in := range []string{"(a", "a)", "((a)", "a(b|c"} {
		if _, err := ToPostfix(in); err == nil {
			t.Errorf("toPostfix(%q) should report unbalanced parentheses", in)
		}
	}
}
