/*
Package regex compiles regular expressions into NFAs.

The operator alphabet is `| * ? + ( )` plus the explicit concatenation
marker `·`; every other character is an operand literal. Compilation
proceeds in two steps: the infix pattern is rewritten to postfix with the
shunting-yard algorithm (after inserting explicit concatenation markers),
and the postfix stream is folded into an NFA with Thompson's
construction.

A Compiler owns the state arena for all automata it produces, so that
several patterns can be combined into a single multi-token lexer NFA with
fa.Union.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 David Lechner <david@lechner.dev>

*/
package regex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parlex.fa'.
func tracer() tracing.Trace {
	return tracing.Select("parlex.fa")
}
