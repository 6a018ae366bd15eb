package fa

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Alphabet is the set of input symbols for the subset construction and
// for DFA minimization. Symbols are kept sorted, so that iteration order
// — and with it the discovery order of DFA states — is deterministic.
type Alphabet struct {
	symbols *treeset.Set
}

// NewAlphabet creates an alphabet containing the given symbols.
func NewAlphabet(syms ...rune) *Alphabet {
	a := &Alphabet{symbols: treeset.NewWith(utils.RuneComparator)}
	for _, r := range syms {
		a.symbols.Add(r)
	}
	return a
}

// Add puts symbol r into the alphabet.
func (a *Alphabet) Add(r rune) {
	a.symbols.Add(r)
}

// Contains checks membership of symbol r.
func (a *Alphabet) Contains(r rune) bool {
	return a.symbols.Contains(r)
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return a.symbols.Size()
}

// Each calls f for every symbol, in sorted order.
func (a *Alphabet) Each(f func(r rune)) {
	it := a.symbols.Iterator()
	for it.Next() {
		f(it.Value().(rune))
	}
}

// Symbols returns the symbols in sorted order.
func (a *Alphabet) Symbols() []rune {
	r := make([]rune, 0, a.symbols.Size())
	a.Each(func(sym rune) {
		r = append(r, sym)
	})
	return r
}
