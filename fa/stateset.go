package fa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
)

// StateSet is a set of NFA state ids, kept as a sorted slice. It names a
// DFA state: two DFA states are equal iff their state sets are equal.
type StateSet struct {
	ids []StateID
}

// NewStateSet creates a set from the given ids.
func NewStateSet(ids ...StateID) StateSet {
	var s StateSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id, keeping the slice sorted. Returns true if id was new.
func (s *StateSet) Add(id StateID) bool {
	i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	if i < len(s.ids) && s.ids[i] == id {
		return false
	}
	s.ids = append(s.ids, 0)
	copy(s.ids[i+1:], s.ids[i:])
	s.ids[i] = id
	return true
}

// Contains checks membership of id.
func (s StateSet) Contains(id StateID) bool {
	i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	return i < len(s.ids) && s.ids[i] == id
}

// Size returns the cardinality of the set.
func (s StateSet) Size() int {
	return len(s.ids)
}

// Empty is true for the empty set.
func (s StateSet) Empty() bool {
	return len(s.ids) == 0
}

// IDs returns the member ids in ascending order.
func (s StateSet) IDs() []StateID {
	return s.ids
}

// Equals compares two sets element-wise.
func (s StateSet) Equals(other StateSet) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for i, id := range s.ids {
		if other.ids[i] != id {
			return false
		}
	}
	return true
}

// Key returns a canonical hash key for the set, insensitive to insertion
// order (the slice is sorted). Used for looking up DFA states by name.
func (s StateSet) Key() string {
	h, err := structhash.Hash(struct {
		N   int
		IDs []StateID
	}{len(s.ids), s.ids}, 1)
	if err != nil {
		panic(fmt.Sprintf("fa: cannot hash state set: %v", err))
	}
	return h
}

func (s StateSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, id := range s.ids {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%d", id)
	}
	b.WriteString("}")
	return b.String()
}
