package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unitTriangle = [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

// quad grid: two triangles sharing edge (1,2)
var twoTriangles = [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}

func TestBuildEdgesCanonicalTriangle(t *testing.T) {
	m := build(t, unitTriangle, []int{0, 1, 2})

	assert.Equal(t, []uint32{0, 1, 0, 2, 1, 2}, BuildEdgesCanonical(m))
}

func TestBuildEdgesRawTriangle(t *testing.T) {
	m := build(t, unitTriangle, []int{0, 1, 2})

	assert.Equal(t, []uint32{0, 1, 1, 2, 2, 0}, BuildEdgesRaw(m))
}

func TestSharedEdgesCollapse(t *testing.T) {
	m := build(t, twoTriangles, []int{0, 1, 2}, []int{2, 1, 3})

	raw := BuildEdgesRaw(m)
	canonical := BuildEdgesCanonical(m)

	assert.Len(t, raw, 12, "two triangles give six raw edges")
	assert.Equal(t, []uint32{0, 1, 0, 2, 1, 2, 1, 3, 2, 3}, canonical)
}

func TestDisjointPolygonsKeepAllEdges(t *testing.T) {
	coords := [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {5, 5, 5}, {6, 5, 5}, {6, 6, 5}}
	m := build(t, coords, []int{0, 1, 2, 3}, []int{4, 5, 6})

	assert.Len(t, BuildEdgesRaw(m), 2*7)
	assert.Len(t, BuildEdgesCanonical(m), 2*7)
}

func TestDigonContributesOneEdge(t *testing.T) {
	m := build(t, unitTriangle, []int{2, 0})

	assert.Equal(t, []uint32{2, 0, 0, 2}, BuildEdgesRaw(m))
	assert.Equal(t, []uint32{0, 2}, BuildEdgesCanonical(m))
}

func TestSelfLoopsDroppedOnlyInCanonical(t *testing.T) {
	m := build(t, unitTriangle, []int{0, 0, 1})

	assert.Equal(t, []uint32{0, 0, 0, 1, 1, 0}, BuildEdgesRaw(m))
	assert.Equal(t, []uint32{0, 1}, BuildEdgesCanonical(m))
}

func TestSingleIndexPolygonHasNoEdges(t *testing.T) {
	m := build(t, unitTriangle, []int{1})

	assert.Empty(t, BuildEdgesRaw(m))
	assert.Empty(t, BuildEdgesCanonical(m))
	assert.Zero(t, m.EdgeCount())
}

func TestEmptyMeshEdges(t *testing.T) {
	m := New()

	assert.Empty(t, m.EdgesRaw())
	assert.Empty(t, m.EdgesCanonical())
}

func TestCanonicalEdgeProperties(t *testing.T) {
	coords := make([][3]float64, 12)
	m := build(t, coords,
		[]int{0, 5, 3, 9, 11},
		[]int{11, 9, 3},
		[]int{4, 4, 7, 2},
		[]int{10, 1},
		[]int{1, 10, 6, 8, 0},
		[]int{8, 6},
	)

	edges := BuildEdgesCanonical(m)
	require.Zero(t, len(edges)%2)

	seen := make(map[[2]uint32]bool)
	var prev [2]uint32
	for i := 0; i < len(edges); i += 2 {
		a, b := edges[i], edges[i+1]
		assert.Less(t, a, b, "canonical edge must be ordered and loop-free")

		pair := [2]uint32{a, b}
		assert.False(t, seen[pair], "duplicate edge %v", pair)
		seen[pair] = true

		if i > 0 {
			less := prev[0] < a || (prev[0] == a && prev[1] < b)
			assert.True(t, less, "edges not sorted at %v after %v", pair, prev)
		}
		prev = pair
	}
}

func TestBuildEdgesMode(t *testing.T) {
	m := build(t, twoTriangles, []int{0, 1, 2}, []int{2, 1, 3})

	assert.Equal(t, BuildEdgesRaw(m), BuildEdges(m, EdgesRaw))
	assert.Equal(t, BuildEdgesCanonical(m), BuildEdges(m, EdgesCanonical))
}

func TestParseEdgeMode(t *testing.T) {
	mode, err := ParseEdgeMode("raw")
	require.NoError(t, err)
	assert.Equal(t, EdgesRaw, mode)

	mode, err = ParseEdgeMode("")
	require.NoError(t, err)
	assert.Equal(t, EdgesCanonical, mode)
	assert.Equal(t, "canonical", mode.String())

	_, err = ParseEdgeMode("dedup")
	assert.Error(t, err)
}
