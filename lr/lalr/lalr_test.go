package lalr

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/dlechner/parlex"
	"github.com/dlechner/parlex/lr"
	"github.com/dlechner/parlex/lr/scanner"
)

func makeParenParser(t *testing.T) *Parser {
	b := lr.NewGrammarBuilder("Balanced Parentheses")
	b.LHS("S").T("(", '(').N("S").T(")", ')').End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	gen := lr.NewTableGenerator(lr.Analysis(g))
	gen.CreateTables()
	if gen.HasConflicts {
		t.Fatalf("unexpected conflicts: %v", gen.Conflicts())
	}
	return NewParser(gen)
}

func TestParenParser(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	accepted := []string{"(())", "()", "", "((()))"}
	rejected := []string{"(()", "())", ")", "(", ")("}
	for n, input := range accepted {
		p := makeParenParser(t)
		scan := scanner.GoTokenizer(fmt.Sprintf("test #%d", n), strings.NewReader(input))
		ok, err := p.Parse(scan)
		if err != nil {
			t.Error(err)
		}
		if !ok {
			t.Errorf("valid input #%d not accepted: %q", n, input)
		}
	}
	for n, input := range rejected {
		p := makeParenParser(t)
		scan := scanner.GoTokenizer(fmt.Sprintf("test #%d", n), strings.NewReader(input))
		if ok, _ := p.Parse(scan); ok {
			t.Errorf("invalid input #%d accepted: %q", n, input)
		}
	}
}

func TestParseTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	p := makeParenParser(t)
	lp := scanner.MakeToken('(', "(", parlex.Span{0, 1})
	rp := scanner.MakeToken(')', ")", parlex.Span{1, 2})
	ok, err := p.ParseTokens([]parlex.Token{lp, rp})
	if err != nil {
		t.Error(err)
	}
	if !ok {
		t.Errorf("token stream ( ) not accepted")
	}
	// empty input is in the language
	if ok, _ = p.ParseTokens(nil); !ok {
		t.Errorf("empty token stream not accepted")
	}
}

// Tokens resolve to grammar terminals by type first, by lexeme as
// fallback when the type is unknown to the grammar.
func TestTerminalResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("Words")
	b.LHS("S").T("stop", 77).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	gen := lr.NewTableGenerator(lr.Analysis(g))
	gen.CreateTables()
	p := NewParser(gen)
	// by declared type, lexeme differs
	byType := scanner.MakeToken(77, "anything", parlex.Span{0, 8})
	if ok, err := p.ParseTokens([]parlex.Token{byType}); !ok {
		t.Errorf("token with declared type not accepted: %v", err)
	}
	// unknown type, lexeme matches the terminal name
	byLexeme := scanner.MakeToken(1234, "stop", parlex.Span{0, 4})
	if ok, err := p.ParseTokens([]parlex.Token{byLexeme}); !ok {
		t.Errorf("token with matching lexeme not accepted: %v", err)
	}
	// neither type nor lexeme known
	bogus := scanner.MakeToken(1234, "go", parlex.Span{0, 2})
	if ok, _ := p.ParseTokens([]parlex.Token{bogus}); ok {
		t.Errorf("unknown token accepted")
	}
}

// S → a A | a B with A → b, B → b has a reduce/reduce conflict on $; the
// conflicted table still accepts "ab" through its first-written action.
func TestParseWithConflictedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.lr")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("RR")
	b.LHS("S").T("a", 'a').N("A").End()
	b.LHS("S").T("a", 'a').N("B").End()
	b.LHS("A").T("b", 'b').End()
	b.LHS("B").T("b", 'b').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	gen := lr.NewTableGenerator(lr.Analysis(g))
	gen.CreateTables()
	if !gen.HasConflicts {
		t.Errorf("expected a reduce/reduce conflict")
	}
	p := NewParser(gen)
	toks := []parlex.Token{
		scanner.MakeToken('a', "a", parlex.Span{0, 1}),
		scanner.MakeToken('b', "b", parlex.Span{1, 2}),
	}
	ok, err := p.Parse(&replayTokenizer{tokens: toks})
	if err != nil {
		t.Error(err)
	}
	if !ok {
		t.Errorf("conflicted table should still accept \"ab\" via the first-written action")
	}
}

// replayTokenizer feeds a fixed list of tokens, then EOF.
type replayTokenizer struct {
	tokens []parlex.Token
	pos    int
}

func (rt *replayTokenizer) NextToken() parlex.Token {
	if rt.pos >= len(rt.tokens) {
		return scanner.MakeToken(parlex.EOFType, "", parlex.Span{})
	}
	tok := rt.tokens[rt.pos]
	rt.pos++
	return tok
}

func (rt *replayTokenizer) SetErrorHandler(func(error)) {}
