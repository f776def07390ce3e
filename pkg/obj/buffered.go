package obj

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/philipparndt/gowire/pkg/mesh"
)

// Rough bytes per line, used to size the builder when lines are not
// pre-counted. "v 0.123456 0.123456 0.123456" plus a face share is about 40.
const (
	bytesPerVertex  = 40
	bytesPerPolygon = 2 * bytesPerVertex
)

// parseBuffered reads r line by line through the shared line parser
func parseBuffered(r io.Reader, sizeHint int64) (*mesh.Builder, error) {
	var vertexHint, polygonHint int
	if sizeHint > 0 {
		vertexHint = int(sizeHint / bytesPerVertex)
		polygonHint = int(sizeHint / bytesPerPolygon)
	}
	b := mesh.NewBuilder(vertexHint, polygonHint)
	p := newLineParser(b)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	scanner.Split(scanRawLines)

	for scanner.Scan() {
		p.parseLine(scanner.Bytes())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}
	return b, nil
}

// scanRawLines is bufio.ScanLines without the '\r' stripping, so the
// buffered driver sees the same lines as forEachLine.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
