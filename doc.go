/*
Package parlex is a compiler front-end toolbox.

It covers the two classic front-end pipelines: compiling regular
expressions into minimized deterministic finite automata, and compiling
context-free grammars into LALR(1) parse tables driven by a shift-reduce
parser. Package structure is as follows:

■ fa: Package fa implements finite automata — NFA and DFA primitives,
subset construction and DFA minimization.

■ fa/regex: Package regex compiles regular expressions into NFAs using
the shunting-yard algorithm and Thompson's construction.

■ lr: Package lr implements grammars, grammar analysis and the
construction of LALR(1) parse tables from the canonical LR(1) collection.

■ lexer: Package lexer builds multi-token scanners from sets of tagged
regular expressions, running on a minimized DFA.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 David Lechner <david@lechner.dev>

*/
package parlex
