/*
Command plex is an interactive front-end workbench.

It compiles regular expressions into minimized DFAs, tokenizes sample
input with lexer rule files, and prints automata transition tables.

	plex> :re a(b|c)*
	plex> :match abcb
	plex> :lex rules.toml
	plex> :scan x = 12

Rule files are TOML:

	[[token]]
	name     = "NUM"
	pattern  = "(0|1|2|3|4|5|6|7|8|9)+"
	type     = 3
	priority = 2
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/dlechner/parlex"
	"github.com/dlechner/parlex/fa"
	"github.com/dlechner/parlex/fa/regex"
	"github.com/dlechner/parlex/lexer"
)

type ruleFile struct {
	Token []struct {
		Name     string `toml:"name"`
		Pattern  string `toml:"pattern"`
		Type     int    `toml:"type"`
		Priority int    `toml:"priority"`
		Skip     bool   `toml:"skip"`
	} `toml:"token"`
}

type session struct {
	dfa *fa.DFA
	lx  *lexer.Lexer
}

func main() {
	rl, err := readline.New("plex> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()
	var s session
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			return
		}
		cmd, arg := line, ""
		if i := strings.IndexByte(line, ' '); i >= 0 {
			cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
		}
		switch cmd {
		case ":re":
			s.compileRegex(arg)
		case ":match":
			s.matchInput(arg)
		case ":lex":
			s.loadRules(arg)
		case ":scan":
			s.scanInput(arg)
		default:
			pterm.Warning.Printf("unknown command %q (:re :match :lex :scan :quit)\n", cmd)
		}
	}
}

func (s *session) compileRegex(pattern string) {
	dfa, err := regex.CompileToDFA(pattern, nil)
	if err != nil {
		pterm.Error.Printf("%v\n", err)
		return
	}
	s.dfa = dfa
	pterm.Success.Printf("minimized DFA with %d states\n", len(dfa.States))
	printDFA(dfa)
}

func (s *session) matchInput(input string) {
	if s.dfa == nil {
		pterm.Warning.Printf("no regex compiled, use :re first\n")
		return
	}
	if s.dfa.Accepts(input) {
		pterm.Success.Printf("accepted %q\n", input)
	} else {
		pterm.Error.Printf("rejected %q\n", input)
	}
}

func (s *session) loadRules(path string) {
	var rf ruleFile
	if _, err := toml.DecodeFile(path, &rf); err != nil {
		pterm.Error.Printf("cannot load %s: %v\n", path, err)
		return
	}
	rules := make([]lexer.Rule, len(rf.Token))
	for i, t := range rf.Token {
		rules[i] = lexer.Rule{
			Name:     t.Name,
			Pattern:  t.Pattern,
			Type:     parlex.TokType(t.Type),
			Priority: t.Priority,
			Skip:     t.Skip,
		}
	}
	lx, err := lexer.New(rules...)
	if err != nil {
		pterm.Error.Printf("%v\n", err)
		return
	}
	s.lx = lx
	pterm.Success.Printf("%d rules compiled into %d DFA states\n",
		len(rules), len(lx.DFA().States))
}

func (s *session) scanInput(input string) {
	if s.lx == nil {
		pterm.Warning.Printf("no rules loaded, use :lex first\n")
		return
	}
	scan := s.lx.Scanner(input)
	rows := pterm.TableData{{"type", "lexeme", "span"}}
	for {
		tok := scan.NextToken()
		if tok.TokType() == parlex.EOFType {
			break
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", tok.TokType()), tok.Lexeme(), tok.Span().String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func printDFA(dfa *fa.DFA) {
	header := []string{"state"}
	for _, a := range dfa.Alpha.Symbols() {
		header = append(header, string(a))
	}
	rows := pterm.TableData{header}
	for _, st := range dfa.States {
		name := fmt.Sprintf("%d", st.ID)
		if st.Final {
			name = "*" + name
		}
		row := []string{name}
		for _, a := range dfa.Alpha.Symbols() {
			if to := st.Transition(a); to != nil {
				row = append(row, fmt.Sprintf("%d", to.ID))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
