package obj

import (
	"bytes"

	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/mesh"
)

// Line kinds recognized by the loader
const (
	lineOther = iota
	lineVertex
	lineFace
)

// classify looks only at the first two bytes: "v " or "f ".
func classify(line []byte) int {
	if len(line) < 2 || line[1] != ' ' {
		return lineOther
	}
	switch line[0] {
	case 'v':
		return lineVertex
	case 'f':
		return lineFace
	}
	return lineOther
}

// countDirectives counts vertex and face lines in data, split on '\n'
func countDirectives(data []byte) (vertices, faces int) {
	forEachLine(data, func(line []byte) {
		switch classify(line) {
		case lineVertex:
			vertices++
		case lineFace:
			faces++
		}
	})
	return vertices, faces
}

// forEachLine calls fn for every '\n'-terminated line of data, plus the
// unterminated tail if there is one. The newline is not part of the line.
func forEachLine(data []byte, fn func(line []byte)) {
	for len(data) > 0 {
		nl := bytes.IndexByte(data, '\n')
		if nl < 0 {
			fn(data)
			return
		}
		fn(data[:nl])
		data = data[nl+1:]
	}
}

// lineParser turns lines into builder calls. Both load strategies feed it the
// same line boundaries, which is what keeps their results identical.
type lineParser struct {
	b    *mesh.Builder
	face []int
}

func newLineParser(b *mesh.Builder) *lineParser {
	return &lineParser{b: b, face: make([]int, 0, 8)}
}

// parseLine handles one line without its trailing '\n'
func (p *lineParser) parseLine(line []byte) {
	switch classify(line) {
	case lineVertex:
		p.parseVertex(line[2:])
	case lineFace:
		p.parseFace(line[2:])
	}
}

// parseVertex reads the first three numbers. Anything after them is ignored.
func (p *lineParser) parseVertex(s []byte) {
	x, s := scanFloat(s)
	s = trimSeparators(s)
	y, s := scanFloat(s)
	s = trimSeparators(s)
	z, _ := scanFloat(s)
	p.b.AddVertex(geometry.NewVector3(x, y, z))
}

// parseFace reads the leading integer of every token. Indices resolve
// against the vertices read so far; ones that miss are dropped, tokens
// without a leading integer are skipped.
func (p *lineParser) parseFace(s []byte) {
	count := p.b.VertexCount()
	face := p.face[:0]

	for {
		s = trimSeparators(s)
		if len(s) == 0 {
			break
		}
		a, n, ok := scanInt(s)
		if !ok {
			s = skipToken(s)
			continue
		}
		// "7/3/2": the texture and normal references are skipped
		s = skipToken(s[n:])

		if idx, ok := resolveIndex(a, count); ok {
			face = append(face, idx)
		}
	}

	p.face = face
	p.b.AddPolygon(face)
}
