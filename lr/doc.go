/*
Package lr implements prerequisites for LALR(1) parsing.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry a token type value. Grammars may contain epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a", 1).End()  // S  ->  A a
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b", 2).End()         // B  ->  b
    b.LHS("B").Epsilon()               // B  ->
    b.LHS("D").T("d", 3).End()         // D  ->  d
    b.LHS("D").Epsilon()               // D  ->

The left-hand side of the first rule becomes the grammar's start symbol.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LRAnalysis object, which computes FIRST sets
for all symbols of the grammar (iterated to a fixed point over the
productions).

    ga := lr.Analysis(g)
    first := ga.First(lr.Symbol{Name: "A", Kind: lr.NonTerminal})

Parser Construction

Using grammar analysis as input, a bottom-up parser can be constructed.
First the canonical collection of LR(1) item sets is built from the
augmented grammar. The LR(1) states are then merged by kernel
equivalence into LALR(1) states, and ACTION and GOTO tables are filled
from the merged automaton. Conflicting table cells are kept with their
first-written action; every attempted overwrite is recorded as a
Conflict, so a conflicted table remains consultable.

Example:

    lrgen := lr.NewTableGenerator(ga)
    lrgen.CreateTables()
    if lrgen.HasConflicts { ... }  // inspect lrgen.Conflicts()

The resulting tables drive the shift-reduce parser of package lr/lalr.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 David Lechner <david@lechner.dev>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parlex.lr'.
func tracer() tracing.Trace {
	return tracing.Select("parlex.lr")
}
