package main

import (
	"testing"

	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/mesh"
	"github.com/stretchr/testify/assert"
)

func TestPerimeter(t *testing.T) {
	b := mesh.NewBuilder(3, 3)
	b.AddVertex(geometry.NewVector3(0, 0, 0))
	b.AddVertex(geometry.NewVector3(3, 0, 0))
	b.AddVertex(geometry.NewVector3(3, 4, 0))
	b.AddPolygon([]int{0, 1, 2})
	b.AddPolygon([]int{0, 1})
	b.AddPolygon([]int{2})
	m := b.Build()

	polys := m.Polygons()
	assert.InDelta(t, 12.0, perimeter(m, polys[0]), 1e-12)
	assert.InDelta(t, 6.0, perimeter(m, polys[1]), 1e-12)
	assert.Zero(t, perimeter(m, polys[2]))
}

func TestFormatIndices(t *testing.T) {
	assert.Equal(t, "0 1 2", formatIndices([]int{0, 1, 2}))

	long := make([]int, 15)
	for i := range long {
		long[i] = i
	}
	assert.Equal(t, "0 1 2 3 4 5 6 7 8 9 10 11 ... (3 more)", formatIndices(long))
}
