package sparse

import "testing"

func TestSetAndValue(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("M(2,3) = %d, want 4711", v)
	}
	if v := M.Value(9, 9); v != -1 {
		t.Errorf("M(9,9) = %d, want the null value -1", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("value count = %d, want 1", M.ValueCount())
	}
}

func TestOverwrite(t *testing.T) {
	M := NewIntMatrix(4, 4, DefaultNullValue)
	M.Set(1, 1, 7)
	M.Set(1, 1, 8)
	if v := M.Value(1, 1); v != 8 {
		t.Errorf("M(1,1) = %d, want 8", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("overwriting must not grow the matrix, count = %d", M.ValueCount())
	}
}

func TestTripletOrdering(t *testing.T) {
	M := NewIntMatrix(5, 5, DefaultNullValue)
	// insert out of order
	M.Set(4, 0, 1)
	M.Set(0, 4, 2)
	M.Set(2, 2, 3)
	M.Set(0, 0, 4)
	cases := []struct{ i, j, v int }{
		{4, 0, 1}, {0, 4, 2}, {2, 2, 3}, {0, 0, 4},
	}
	for _, c := range cases {
		if v := M.Value(c.i, c.j); v != int32(c.v) {
			t.Errorf("M(%d,%d) = %d, want %d", c.i, c.j, v, c.v)
		}
	}
	if M.M() != 5 || M.N() != 5 {
		t.Errorf("matrix dimensions lost: %d x %d", M.M(), M.N())
	}
}
