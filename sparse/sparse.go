/*
Package sparse implements a simple type for sparse integer matrices.
It is used for packed automaton transition tables, where most cells are
empty.

This implementation uses the COO algorithm (a.k.a. triplet-encoding):
values are stored as (row, column, value) triplets, sorted by position.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 David Lechner <david@lechner.dev>

*/
package sparse

import "sort"

// IntMatrix is a sparse matrix of int32 values. Construct with
//
//	M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//	M.Set(2, 3, 4711)              // set a value
//	v := M.Value(2, 3)             // returns 4711
//	v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Values cannot be deleted, but may be overwritten with the null-value.
// Space for null-values is not re-claimed.
type IntMatrix struct {
	triplets []triplet
	rowcnt   int
	colcnt   int
	nullval  int32
}

type triplet struct {
	row, col int
	value    int32
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue int32 = -2147483648

// NewIntMatrix creates a matrix of size m x n. The 3rd argument is a
// null-value, indicating empty entries (use DefaultNullValue if you
// haven't any specific requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value.
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of positions set.
func (m *IntMatrix) ValueCount() int {
	return len(m.triplets)
}

// locate returns the slice index of (i,j), or the insertion point and
// false.
func (m *IntMatrix) locate(i, j int) (int, bool) {
	n := sort.Search(len(m.triplets), func(k int) bool {
		t := m.triplets[k]
		return t.row > i || (t.row == i && t.col >= j)
	})
	if n < len(m.triplets) && m.triplets[n].row == i && m.triplets[n].col == j {
		return n, true
	}
	return n, false
}

// Value returns the value at position (i,j), or NullValue.
func (m *IntMatrix) Value(i, j int) int32 {
	if n, ok := m.locate(i, j); ok {
		return m.triplets[n].value
	}
	return m.nullval
}

// Set stores a value at position (i,j), keeping the triplets sorted.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	n, ok := m.locate(i, j)
	if ok {
		m.triplets[n].value = value
		return m
	}
	m.triplets = append(m.triplets, triplet{})
	copy(m.triplets[n+1:], m.triplets[n:])
	m.triplets[n] = triplet{row: i, col: j, value: value}
	return m
}
