/*
Package fa implements finite automata for lexical analysis.

NFA states live in an arena (a Graph) and are addressed by integer id.
Transitions store destination ids, never owning references; this keeps
the cyclic graphs produced by Kleene closures trivial to handle and makes
state identity and hashing cheap. An NFA value is a (start, end) pair of
state ids into its graph.

DFAs are produced from NFAs by the standard subset construction
(epsilon-closure plus move) and can be minimized with the table-filling
algorithm. A DFA state is named by the set of NFA states it represents;
two DFA states are equal iff their name sets are equal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 David Lechner <david@lechner.dev>

*/
package fa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parlex.fa'.
func tracer() tracing.Trace {
	return tracing.Select("parlex.fa")
}
