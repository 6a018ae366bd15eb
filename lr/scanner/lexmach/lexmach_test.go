package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"

	"github.com/dlechner/parlex/lr/scanner"
)

func TestLMScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parlex.scanner")
	defer teardown()
	//
	tokenIds := map[string]int{
		"NUM": 100,
		"+":   101,
		"-":   102,
	}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[0-9]+`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\t)+`), Skip)
	}
	LM, err := NewLMAdapter(init, []string{"+", "-"}, nil, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	inputs := []string{"1", "1+12", "3 - 4"}
	counts := []int{1, 3, 3}
	for i, input := range inputs {
		scan, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		count := 0
		token := scan.NextToken()
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %8s", token.TokType(), token.Lexeme())
			token = scan.NextToken()
			count++
		}
		if count != counts[i] {
			t.Errorf("expected token count for #%d to be %d, is %d", i, counts[i], count)
		}
	}
}
