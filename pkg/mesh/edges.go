package mesh

import (
	"fmt"
	"slices"
)

// EdgeMode selects how polygon cycles are turned into line segments
type EdgeMode int

const (
	// EdgesCanonical yields sorted, deduplicated, loop-free edges
	EdgesCanonical EdgeMode = iota
	// EdgesRaw yields every polygon edge in declaration order
	EdgesRaw
)

func (m EdgeMode) String() string {
	switch m {
	case EdgesCanonical:
		return "canonical"
	case EdgesRaw:
		return "raw"
	}
	return fmt.Sprintf("EdgeMode(%d)", int(m))
}

// ParseEdgeMode parses "canonical" or "raw"
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch s {
	case "", "canonical":
		return EdgesCanonical, nil
	case "raw":
		return EdgesRaw, nil
	}
	return 0, fmt.Errorf("unknown edge mode %q (expected canonical or raw)", s)
}

// BuildEdges derives the flattened edge list [a0, b0, a1, b1, ...] in the
// given mode.
func BuildEdges(m *Mesh, mode EdgeMode) []uint32 {
	if mode == EdgesRaw {
		return BuildEdgesRaw(m)
	}
	return BuildEdgesCanonical(m)
}

// EdgesRaw is shorthand for BuildEdgesRaw(m)
func (m *Mesh) EdgesRaw() []uint32 {
	return BuildEdgesRaw(m)
}

// EdgesCanonical is shorthand for BuildEdgesCanonical(m)
func (m *Mesh) EdgesCanonical() []uint32 {
	return BuildEdgesCanonical(m)
}

// BuildEdgesRaw walks every polygon with at least two indices and emits
// each consecutive pair, including the closing pair from the last index back
// to the first. Nothing is sorted or removed: shared edges appear once per
// polygon, reversed duplicates and self-loops are kept.
func BuildEdgesRaw(m *Mesh) []uint32 {
	out := make([]uint32, 0, 2*rawEdgeCount(m.polygons))
	for _, poly := range m.polygons {
		idx := poly.Indices
		n := len(idx)
		if n < 2 {
			continue
		}
		for i := range n {
			out = append(out, uint32(idx[i]), uint32(idx[(i+1)%n]))
		}
	}
	return out
}

// BuildEdgesCanonical returns the undirected edge set of the mesh, smaller
// index first, sorted ascending by (min, max), without duplicates or
// self-loops. A two-index polygon contributes one edge: its closing pair is
// the same edge reversed and is removed by deduplication.
func BuildEdgesCanonical(m *Mesh) []uint32 {
	keys := make([]uint64, 0, rawEdgeCount(m.polygons))
	for _, poly := range m.polygons {
		idx := poly.Indices
		n := len(idx)
		if n < 2 {
			continue
		}
		for i := range n {
			a, b := uint32(idx[i]), uint32(idx[(i+1)%n])
			if a == b {
				continue
			}
			keys = append(keys, edgeKey(a, b))
		}
	}

	slices.Sort(keys)
	keys = slices.Compact(keys)

	out := make([]uint32, 2*len(keys))
	for i, k := range keys {
		out[2*i] = uint32(k >> 32)
		out[2*i+1] = uint32(k)
	}
	return out
}

// edgeKey packs the unordered pair with the smaller index in the high word
func edgeKey(a, b uint32) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

// rawEdgeCount is the number of pairs BuildEdgesRaw emits
func rawEdgeCount(polygons []Polygon) int {
	count := 0
	for _, poly := range polygons {
		if n := poly.Len(); n >= 2 {
			count += n
		}
	}
	return count
}
