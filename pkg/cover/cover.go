// Package cover defines covers of a vertex universe: ordered collections of
// possibly-overlapping communities. Unlike a partition, a vertex may belong
// to any number of communities, including none.
package cover

// Community is an ordered list of vertex identifiers. Duplicates are
// immaterial; set semantics apply wherever overlap is computed.
type Community []uint64

// Cover is an ordered sequence of communities over a fixed vertex universe.
// Order has no mathematical meaning but fixes iteration order.
type Cover []Community

// Set converts the community to a membership set, dropping duplicates.
func (c Community) Set() map[uint64]bool {
	set := make(map[uint64]bool, len(c))
	for _, v := range c {
		set[v] = true
	}
	return set
}

// Size returns the number of distinct vertices in the community.
func (c Community) Size() int {
	return len(c.Set())
}

// IntersectionSize counts the vertices common to both sets.
// Iterates over the smaller set for efficiency.
func IntersectionSize(setA, setB map[uint64]bool) int {
	small, big := setA, setB
	if len(setA) > len(setB) {
		small, big = setB, setA
	}

	intersection := 0
	for v := range small {
		if big[v] {
			intersection++
		}
	}
	return intersection
}
