// Package mesh holds the in-memory polygon mesh produced by the loaders,
// its affine transforms and the derivation of wireframe edges.
//
// A Mesh carries no locks. Callers that share one between goroutines must
// ensure at most one load or transform runs against it at a time.
package mesh

import (
	"github.com/philipparndt/gowire/pkg/geometry"
)

// Vertex is a mesh position. Its ID is its index in Mesh.Vertices.
type Vertex = geometry.Vector3

// Polygon is an ordered cycle of 0-based vertex indices
type Polygon struct {
	Indices []int
}

// Len returns the number of vertices in the polygon
func (p Polygon) Len() int {
	return len(p.Indices)
}

// Mesh represents a loaded polygon mesh
type Mesh struct {
	vertices    []Vertex
	polygons    []Polygon
	numVertices int
	numEdges    int
}

// New creates an empty mesh
func New() *Mesh {
	return &Mesh{}
}

// Vertices returns the vertex positions. The slice is shared with the mesh
// and must be treated as read-only.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Polygons returns the polygons in declaration order. The slice is shared
// with the mesh and must be treated as read-only.
func (m *Mesh) Polygons() []Polygon {
	return m.polygons
}

// VertexCount returns the vertex count cached at load time
func (m *Mesh) VertexCount() int {
	return m.numVertices
}

// EdgeCount returns the raw edge count cached at load time
func (m *Mesh) EdgeCount() int {
	return m.numEdges
}

// PolygonCount returns the number of stored polygons
func (m *Mesh) PolygonCount() int {
	return len(m.polygons)
}

// Empty reports whether the mesh has no vertices
func (m *Mesh) Empty() bool {
	return len(m.vertices) == 0
}

// Reset drops all contents, leaving the mesh as New returns it.
func (m *Mesh) Reset() {
	*m = Mesh{}
}

// ComputeAabb returns the axis-aligned bounding box of the vertices.
// It is recomputed on every call.
func (m *Mesh) ComputeAabb() geometry.BoundingBox {
	return geometry.BoundingBoxOf(m.vertices)
}

// Builder assembles a Mesh from an ordered stream of vertices and
// polygons. Indices given to AddPolygon are resolved by the caller.
type Builder struct {
	vertices []Vertex
	polygons []Polygon
}

// NewBuilder creates a builder with room for the given number of vertices
// and polygons. Hints only affect allocation.
func NewBuilder(vertexHint, polygonHint int) *Builder {
	return &Builder{
		vertices: make([]Vertex, 0, max(vertexHint, 0)),
		polygons: make([]Polygon, 0, max(polygonHint, 0)),
	}
}

// AddVertex appends a vertex
func (b *Builder) AddVertex(v Vertex) {
	b.vertices = append(b.vertices, v)
}

// VertexCount returns the number of vertices added so far
func (b *Builder) VertexCount() int {
	return len(b.vertices)
}

// AddPolygon appends a polygon. Polygons without indices are dropped, and
// so are indices outside the vertices added so far.
func (b *Builder) AddPolygon(indices []int) {
	n := len(b.vertices)
	kept := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < n {
			kept = append(kept, idx)
		}
	}
	if len(kept) == 0 {
		return
	}
	b.polygons = append(b.polygons, Polygon{Indices: kept})
}

// Build finalizes the cached counts and returns the mesh.
// The builder must not be used afterwards.
func (b *Builder) Build() *Mesh {
	m := &Mesh{}
	b.BuildInto(m)
	return m
}

// BuildInto replaces the contents of dst with the built mesh.
// The builder must not be used afterwards.
func (b *Builder) BuildInto(dst *Mesh) {
	*dst = Mesh{
		vertices:    b.vertices,
		polygons:    b.polygons,
		numVertices: len(b.vertices),
	}
	dst.numEdges = rawEdgeCount(dst.polygons)
	b.vertices, b.polygons = nil, nil
}
