package fa

import (
	"fmt"
	"io"
)

// ToGraphViz exports a DFA to the Graphviz Dot format.
func (dfa *DFA) ToGraphViz(w io.Writer) {
	io.WriteString(w, `digraph {
graph [rankdir=LR, fontname=Helvetica, fontsize=10];
node [shape=circle, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range dfa.States {
		shape := "circle"
		if s.Final {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "s%03d [shape=%s label=\"%d\"]\n", s.ID, shape, s.ID)
	}
	for _, s := range dfa.States {
		s.EachTransition(dfa.Alpha, func(a rune, to *DFAState) {
			fmt.Fprintf(w, "s%03d -> s%03d [label=\"%c\"]\n", s.ID, to.ID, a)
		})
	}
	io.WriteString(w, "}\n")
}
