package lr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
)

// Item is an LR(1) item: a production with a dot position and a
// lookahead terminal. Items are value types; equality and hashing are
// structural on all three components (productions are interned in their
// grammar, so pointer identity is structural identity).
type Item struct {
	Prod      *Production
	Dot       int
	Lookahead Symbol
}

// PeekSymbol returns the symbol right after the dot, or ok=false when
// the dot is at the end of the production.
func (i Item) PeekSymbol() (Symbol, bool) {
	if i.Dot >= i.Prod.Len() {
		return Symbol{}, false
	}
	return i.Prod.RHS()[i.Dot], true
}

// Suffix returns the symbols after the one following the dot (β in
// [A → α · B β, a]).
func (i Item) Suffix() []Symbol {
	if i.Dot+1 >= i.Prod.Len() {
		return nil
	}
	return i.Prod.RHS()[i.Dot+1:]
}

// Advance moves the dot one symbol to the right.
func (i Item) Advance() Item {
	return Item{Prod: i.Prod, Dot: i.Dot + 1, Lookahead: i.Lookahead}
}

// Kernel returns the item stripped of its lookahead.
func (i Item) Kernel() Kernel {
	return Kernel{Prod: i.Prod, Dot: i.Dot}
}

func (i Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s → ", i.Prod.LHS.Name)
	for n, sym := range i.Prod.RHS() {
		if n == i.Dot {
			b.WriteString("•")
		}
		b.WriteString(sym.Name)
		if n < i.Prod.Len()-1 {
			b.WriteString(" ")
		}
	}
	if i.Dot >= i.Prod.Len() {
		b.WriteString("•")
	}
	fmt.Fprintf(&b, ", %s]", i.Lookahead.Name)
	return b.String()
}

// Kernel is the production-and-dot portion of an item, without the
// lookahead. Kernel equality is the basis for LALR state merging.
type Kernel struct {
	Prod *Production
	Dot  int
}

// --- Item sets ---------------------------------------------------------

// itemSet is a set of LR(1) items. State identity is structural equality
// of the set.
type itemSet map[Item]struct{}

func newItemSet(items ...Item) itemSet {
	S := make(itemSet)
	for _, i := range items {
		S[i] = exists
	}
	return S
}

func (S itemSet) add(i Item) bool {
	if _, ok := S[i]; ok {
		return false
	}
	S[i] = exists
	return true
}

func (S itemSet) equals(other itemSet) bool {
	if len(S) != len(other) {
		return false
	}
	for i := range S {
		if _, ok := other[i]; !ok {
			return false
		}
	}
	return true
}

// values returns the items in canonical order: production serial, dot
// position, lookahead.
func (S itemSet) values() []Item {
	items := make([]Item, 0, len(S))
	for i := range S {
		items = append(items, i)
	}
	sort.Slice(items, func(a, b int) bool {
		ia, ib := items[a], items[b]
		if ia.Prod.Serial != ib.Prod.Serial {
			return ia.Prod.Serial < ib.Prod.Serial
		}
		if ia.Dot != ib.Dot {
			return ia.Dot < ib.Dot
		}
		if ia.Lookahead.Kind != ib.Lookahead.Kind {
			return ia.Lookahead.Kind < ib.Lookahead.Kind
		}
		return ia.Lookahead.Name < ib.Lookahead.Name
	})
	return items
}

// hashable representation of an item; serials are unique per grammar
// (the augmented production carries a reserved serial).
type itemRepr struct {
	Serial int
	Dot    int
	La     string
	Kind   int8
}

// key returns a canonical hash key for the item set, insensitive to
// insertion order. Used for the find-or-insert step of the canonical
// collection build.
func (S itemSet) key() string {
	items := S.values()
	reprs := make([]itemRepr, len(items))
	for n, i := range items {
		reprs[n] = itemRepr{
			Serial: i.Prod.Serial,
			Dot:    i.Dot,
			La:     i.Lookahead.Name,
			Kind:   int8(i.Lookahead.Kind),
		}
	}
	h, err := structhash.Hash(struct {
		N     int
		Items []itemRepr
	}{len(reprs), reprs}, 1)
	if err != nil {
		panic(fmt.Sprintf("lr: cannot hash item set: %v", err))
	}
	return h
}

// kernels returns the distinct kernels of the set's kernel items: items
// with the dot past position 0, plus the augmented start item if
// present. Ordered canonically.
func (S itemSet) kernels(augmented *Production) []Kernel {
	seen := make(map[Kernel]struct{})
	var ks []Kernel
	for i := range S {
		if i.Dot == 0 && i.Prod != augmented {
			continue
		}
		k := i.Kernel()
		if _, ok := seen[k]; !ok {
			seen[k] = exists
			ks = append(ks, k)
		}
	}
	sort.Slice(ks, func(a, b int) bool {
		if ks[a].Prod.Serial != ks[b].Prod.Serial {
			return ks[a].Prod.Serial < ks[b].Prod.Serial
		}
		return ks[a].Dot < ks[b].Dot
	})
	return ks
}

// kernelKey returns a canonical hash key for the set's kernel. Two LR(1)
// states belong to the same LALR class iff their kernel keys are equal.
func (S itemSet) kernelKey(augmented *Production) string {
	ks := S.kernels(augmented)
	type kernelRepr struct {
		Serial int
		Dot    int
	}
	reprs := make([]kernelRepr, len(ks))
	for n, k := range ks {
		reprs[n] = kernelRepr{Serial: k.Prod.Serial, Dot: k.Dot}
	}
	h, err := structhash.Hash(struct {
		N       int
		Kernels []kernelRepr
	}{len(reprs), reprs}, 1)
	if err != nil {
		panic(fmt.Sprintf("lr: cannot hash kernel: %v", err))
	}
	return h
}

// Dump logs an item set through the tracer.
func Dump(items []Item) {
	for _, i := range items {
		tracer().Debugf("    %v", i)
	}
}
