package regex

import (
	"fmt"

	"github.com/dlechner/parlex/fa"
)

// Compiler turns regular expressions into NFAs with Thompson's
// construction. All automata produced by one compiler share a single
// state arena, so their ids are unique within that arena and the
// automata may be combined with fa.Union. Independent compilations use
// independent compilers.
type Compiler struct {
	graph *fa.Graph
}

// NewCompiler creates a compiler with a fresh state arena.
func NewCompiler() *Compiler {
	return &Compiler{graph: fa.NewGraph()}
}

// Graph exposes the compiler's state arena.
func (c *Compiler) Graph() *fa.Graph {
	return c.graph
}

// Compile converts an infix pattern to an NFA.
func (c *Compiler) Compile(pattern string) (fa.NFA, error) {
	postfix, err := ToPostfix(pattern)
	if err != nil {
		return fa.NFA{}, err
	}
	tracer().Debugf("regex %q → postfix %q", pattern, postfix)
	return c.FromPostfix(postfix)
}

// FromPostfix folds a postfix stream into an NFA, maintaining a stack of
// fragments. Every fragment has exactly one start and one end state.
func (c *Compiler) FromPostfix(postfix string) (fa.NFA, error) {
	var stack []fa.NFA
	pop := func() fa.NFA {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}
	for _, ch := range postfix {
		switch {
		case ch == '?':
			if len(stack) < 1 {
				return fa.NFA{}, fmt.Errorf("malformed postfix %q: '?' lacks operand", postfix)
			}
			stack = append(stack, c.optional(pop()))
		case ch == '+':
			if len(stack) < 1 {
				return fa.NFA{}, fmt.Errorf("malformed postfix %q: '+' lacks operand", postfix)
			}
			stack = append(stack, c.plus(pop()))
		case IsOperand(ch):
			stack = append(stack, c.literal(ch))
		case ch == Concat:
			if len(stack) < 2 {
				return fa.NFA{}, fmt.Errorf("malformed postfix %q: '·' lacks operands", postfix)
			}
			b, a := pop(), pop()
			stack = append(stack, c.concat(a, b))
		case ch == '|':
			if len(stack) < 2 {
				return fa.NFA{}, fmt.Errorf("malformed postfix %q: '|' lacks operands", postfix)
			}
			b, a := pop(), pop()
			stack = append(stack, c.union(a, b))
		case ch == '*':
			if len(stack) < 1 {
				return fa.NFA{}, fmt.Errorf("malformed postfix %q: '*' lacks operand", postfix)
			}
			stack = append(stack, c.star(pop()))
		default:
			return fa.NFA{}, fmt.Errorf("invalid character in postfix regex: %q", ch)
		}
	}
	if len(stack) != 1 {
		return fa.NFA{}, fmt.Errorf("malformed postfix regex %q: %d fragments left", postfix, len(stack))
	}
	return stack[0], nil
}

// literal builds the fragment  s --ch--> e  with fresh s and e.
func (c *Compiler) literal(ch rune) fa.NFA {
	s := c.graph.NewState()
	e := c.graph.NewState()
	c.graph.AddTransition(s.ID, ch, e.ID)
	return fa.NFA{G: c.graph, Start: s.ID, End: e.ID}
}

// concat links a's end to b's start with an epsilon edge.
func (c *Compiler) concat(a, b fa.NFA) fa.NFA {
	c.graph.AddTransition(a.End, fa.Epsilon, b.Start)
	return fa.NFA{G: c.graph, Start: a.Start, End: b.End}
}

// union introduces fresh outer states around the two alternatives.
func (c *Compiler) union(a, b fa.NFA) fa.NFA {
	s := c.graph.NewState()
	e := c.graph.NewState()
	c.graph.AddTransition(s.ID, fa.Epsilon, a.Start)
	c.graph.AddTransition(s.ID, fa.Epsilon, b.Start)
	c.graph.AddTransition(a.End, fa.Epsilon, e.ID)
	c.graph.AddTransition(b.End, fa.Epsilon, e.ID)
	return fa.NFA{G: c.graph, Start: s.ID, End: e.ID}
}

// star: zero or more repetitions.
func (c *Compiler) star(a fa.NFA) fa.NFA {
	s := c.graph.NewState()
	e := c.graph.NewState()
	c.graph.AddTransition(s.ID, fa.Epsilon, a.Start)
	c.graph.AddTransition(s.ID, fa.Epsilon, e.ID)
	c.graph.AddTransition(a.End, fa.Epsilon, a.Start)
	c.graph.AddTransition(a.End, fa.Epsilon, e.ID)
	return fa.NFA{G: c.graph, Start: s.ID, End: e.ID}
}

// plus: one or more repetitions. There is no skip edge from s to e.
func (c *Compiler) plus(a fa.NFA) fa.NFA {
	s := c.graph.NewState()
	e := c.graph.NewState()
	c.graph.AddTransition(s.ID, fa.Epsilon, a.Start)
	c.graph.AddTransition(a.End, fa.Epsilon, a.Start)
	c.graph.AddTransition(a.End, fa.Epsilon, e.ID)
	return fa.NFA{G: c.graph, Start: s.ID, End: e.ID}
}

// optional: zero or one occurrence.
func (c *Compiler) optional(a fa.NFA) fa.NFA {
	s := c.graph.NewState()
	e := c.graph.NewState()
	c.graph.AddTransition(s.ID, fa.Epsilon, a.Start)
	c.graph.AddTransition(s.ID, fa.Epsilon, e.ID)
	c.graph.AddTransition(a.End, fa.Epsilon, e.ID)
	return fa.NFA{G: c.graph, Start: s.ID, End: e.ID}
}

// --- Convenience ------------------------------------------------------

// AlphabetOf collects the operand literals of the given patterns into an
// input alphabet for the subset construction.
func AlphabetOf(patterns ...string) *fa.Alphabet {
	alpha := fa.NewAlphabet()
	for _, p := range patterns {
		for _, ch := range p {
			if IsOperand(ch) {
				alpha.Add(ch)
			}
		}
	}
	return alpha
}

// CompileToDFA compiles a single pattern all the way to a minimized DFA
// over the given alphabet (pass nil to derive the alphabet from the
// pattern's literals).
func CompileToDFA(pattern string, alpha *fa.Alphabet) (*fa.DFA, error) {
	c := NewCompiler()
	nfa, err := c.Compile(pattern)
	if err != nil {
		return nil, err
	}
	c.graph.State(nfa.End).MakeFinal(0)
	if alpha == nil {
		alpha = AlphabetOf(pattern)
	}
	dfa := fa.BuildDFA(nfa, alpha)
	return fa.Minimize(dfa, alpha), nil
}
