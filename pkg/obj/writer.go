package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/philipparndt/gowire/pkg/mesh"
)

// Write encodes m as "v" and "f" lines with 1-based indices. Coordinates use
// the shortest representation that reads back to the same float64.
func Write(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 96)

	for _, v := range m.Vertices() {
		buf = append(buf[:0], 'v')
		for _, c := range [3]float64{v.X, v.Y, v.Z} {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("failed to write vertex: %w", err)
		}
	}

	for _, poly := range m.Polygons() {
		buf = append(buf[:0], 'f')
		for _, idx := range poly.Indices {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx)+1, 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("failed to write face: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush OBJ: %w", err)
	}
	return nil
}

// WriteFile writes m to path, replacing any existing file
func WriteFile(path string, m *mesh.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(file, m); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
