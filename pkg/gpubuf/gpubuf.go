// Package gpubuf prepares the buffers a line renderer uploads for a mesh: an
// interleaved float32 position array and a uint32 index array holding one
// pair per wireframe edge. It also reads and writes them as a small binary
// file so they can be produced ahead of time.
package gpubuf

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/mesh"
)

// Magic identifies a buffer file
var Magic = [4]byte{'G', 'W', 'I', 'R'}

// Version is the file format version written by Write
const Version uint32 = 1

var (
	// ErrBadMagic is returned when the input is not a buffer file
	ErrBadMagic = errors.New("not a gowire buffer file")
	// ErrCorrupt is returned when the header disagrees with the payload
	ErrCorrupt = errors.New("corrupt buffer file")
)

// Header is the fixed-size prefix of a buffer file, little-endian
type Header struct {
	Magic       [4]byte
	Version     uint32
	VertexCount uint32
	IndexCount  uint32
	AabbCenter  [3]float32
	AabbExtent  [3]float32
}

// Buffers holds data ready for upload
type Buffers struct {
	// Vertices is x0, y0, z0, x1, y1, z1, ...
	Vertices []float32
	// Indices is a0, b0, a1, b1, ... with one pair per line segment
	Indices []uint32
	Bounds  geometry.BoundingBox
}

// Prepare builds the buffers for m using canonical edges
func Prepare(m *mesh.Mesh) *Buffers {
	return PrepareWithEdges(m, m.EdgesCanonical())
}

// PrepareWithEdges builds the buffers for m around an edge list that was
// already derived, for example on a background goroutine
func PrepareWithEdges(m *mesh.Mesh, edges []uint32) *Buffers {
	vertices := m.Vertices()
	buf := &Buffers{
		Vertices: make([]float32, 0, 3*len(vertices)),
		Indices:  edges,
		Bounds:   m.ComputeAabb(),
	}
	for _, v := range vertices {
		p := v.Float32()
		buf.Vertices = append(buf.Vertices, p[0], p[1], p[2])
	}
	return buf
}

// VertexCount returns the number of positions
func (b *Buffers) VertexCount() int {
	return len(b.Vertices) / 3
}

// SegmentCount returns the number of line segments
func (b *Buffers) SegmentCount() int {
	return len(b.Indices) / 2
}

// Header returns the file header describing b
func (b *Buffers) Header() Header {
	center := b.Bounds.Center().Float32()
	extent := b.Bounds.Extent().Float32()
	return Header{
		Magic:       Magic,
		Version:     Version,
		VertexCount: uint32(b.VertexCount()),
		IndexCount:  uint32(len(b.Indices)),
		AabbCenter:  center,
		AabbExtent:  extent,
	}
}

// Write encodes the header followed by the vertex and index arrays
func (b *Buffers) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, b.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, b.Vertices); err != nil {
		return fmt.Errorf("failed to write vertices: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, b.Indices); err != nil {
		return fmt.Errorf("failed to write indices: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffers: %w", err)
	}
	return nil
}

// WriteFile writes b to path, replacing any existing file
func (b *Buffers) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := b.Write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Read decodes buffers written by Write. The bounding box is rebuilt from
// the header's float32 center and extent.
func Read(r io.Reader) (*Buffers, error) {
	br := bufio.NewReader(r)

	var h Header
	if err := binary.Read(br, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if h.Magic != Magic {
		return nil, ErrBadMagic
	}
	if h.Version != Version {
		return nil, fmt.Errorf("unsupported buffer file version %d", h.Version)
	}
	if h.IndexCount%2 != 0 {
		return nil, fmt.Errorf("%w: odd index count %d", ErrCorrupt, h.IndexCount)
	}

	vertices, err := readChunked[float32](br, 3*int(h.VertexCount))
	if err != nil {
		return nil, fmt.Errorf("failed to read vertices: %w", err)
	}
	indices, err := readChunked[uint32](br, int(h.IndexCount))
	if err != nil {
		return nil, fmt.Errorf("failed to read indices: %w", err)
	}
	buf := &Buffers{Vertices: vertices, Indices: indices, Bounds: boundsOf(h)}
	for _, idx := range buf.Indices {
		if idx >= h.VertexCount {
			return nil, fmt.Errorf("%w: index %d out of range", ErrCorrupt, idx)
		}
	}
	return buf, nil
}

// readChunk is the most elements read ahead of the data that backs them
const readChunk = 1 << 16

// readChunked reads n little-endian values, growing the result only as the
// payload arrives so a header cannot force an allocation the input does not
// back. A short payload is reported as ErrCorrupt.
func readChunked[T float32 | uint32](r io.Reader, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: count overflows", ErrCorrupt)
	}
	out := make([]T, 0, min(n, readChunk))
	chunk := make([]T, min(n, readChunk))
	for len(out) < n {
		part := chunk[:min(n-len(out), readChunk)]
		if err := binary.Read(r, binary.LittleEndian, part); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: payload ends after %d of %d values", ErrCorrupt, len(out), n)
			}
			return nil, err
		}
		out = append(out, part...)
	}
	return out, nil
}

// ReadFile reads buffers from path
func ReadFile(path string) (*Buffers, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return Read(file)
}

func boundsOf(h Header) geometry.BoundingBox {
	c := geometry.NewVector3(float64(h.AabbCenter[0]), float64(h.AabbCenter[1]), float64(h.AabbCenter[2]))
	e := geometry.NewVector3(float64(h.AabbExtent[0]), float64(h.AabbExtent[1]), float64(h.AabbExtent[2]))
	return geometry.BoundingBox{Min: c.Sub(e), Max: c.Add(e)}
}
