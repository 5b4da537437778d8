package cover

import "testing"

func TestSet_DropsDuplicates(t *testing.T) {
	c := Community{3, 1, 3, 7, 1}

	set := c.Set()

	if len(set) != 3 {
		t.Errorf("Expected 3 distinct vertices, got %d", len(set))
	}
	for _, v := range []uint64{1, 3, 7} {
		if !set[v] {
			t.Errorf("Expected vertex %d in set", v)
		}
	}
}

func TestSize_CountsDistinctVertices(t *testing.T) {
	tests := []struct {
		name string
		c    Community
		want int
	}{
		{"empty", Community{}, 0},
		{"no duplicates", Community{0, 1, 2}, 3},
		{"all duplicates", Community{5, 5, 5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntersectionSize(t *testing.T) {
	a := Community{0, 1, 2, 3}.Set()
	b := Community{2, 3, 4}.Set()

	if got := IntersectionSize(a, b); got != 2 {
		t.Errorf("IntersectionSize = %d, want 2", got)
	}

	// Symmetric regardless of which set is smaller
	if got := IntersectionSize(b, a); got != 2 {
		t.Errorf("IntersectionSize reversed = %d, want 2", got)
	}
}

func TestIntersectionSize_Disjoint(t *testing.T) {
	a := Community{0, 1}.Set()
	b := Community{2, 3}.Set()

	if got := IntersectionSize(a, b); got != 0 {
		t.Errorf("IntersectionSize = %d, want 0", got)
	}
}

func TestIntersectionSize_Empty(t *testing.T) {
	a := Community{}.Set()
	b := Community{0, 1, 2}.Set()

	if got := IntersectionSize(a, b); got != 0 {
		t.Errorf("IntersectionSize with empty set = %d, want 0", got)
	}
}
