package obj

import (
	"os"

	"github.com/philipparndt/gowire/pkg/mesh"
)

// loadMapped parses a regular, non-empty file through a read-only mapping.
// The first pass counts vertex and face lines so the builder never grows;
// the second pass parses. The mapping is released before returning.
func loadMapped(file *os.File, size int64) (*mesh.Builder, error) {
	data, err := mapFile(file, size)
	if err != nil {
		return nil, err
	}
	defer unmapFile(data)

	return parseMapped(data), nil
}

// parseMapped runs both passes over an in-memory file image
func parseMapped(data []byte) *mesh.Builder {
	vertices, faces := countDirectives(data)
	b := mesh.NewBuilder(vertices, faces)

	p := newLineParser(b)
	forEachLine(data, p.parseLine)
	return b
}
