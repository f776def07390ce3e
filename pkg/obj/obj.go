// Package obj loads the vertex and face subset of Wavefront OBJ files.
//
// Only "v " and "f " lines are read; normals, texture coordinates, groups,
// materials and everything else are skipped. Parsing is lenient: malformed
// numbers read as zero, unresolvable face indices are dropped, and only a
// file that cannot be opened or read fails the load.
package obj

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gowire/pkg/mesh"
)

// ErrMapUnsupported is returned by the mapped strategy on platforms without
// memory mapping
var ErrMapUnsupported = errors.New("memory mapping not supported on this platform")

// Strategy selects how file bytes reach the parser
type Strategy int

const (
	// StrategyAuto maps the file when possible and falls back to buffered reads
	StrategyAuto Strategy = iota
	// StrategyMapped maps the whole file and pre-counts lines before parsing
	StrategyMapped
	// StrategyBuffered reads the file line by line
	StrategyBuffered
)

func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyMapped:
		return "mapped"
	case StrategyBuffered:
		return "buffered"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy parses "auto", "mapped" or "buffered"
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "auto":
		return StrategyAuto, nil
	case "mapped", "mmap":
		return StrategyMapped, nil
	case "buffered":
		return StrategyBuffered, nil
	}
	return 0, fmt.Errorf("unknown loader strategy %q (expected auto, mapped or buffered)", s)
}

// Options configures a load
type Options struct {
	Strategy Strategy
}

// Load reads the mesh at path using the automatic strategy
func Load(path string) (*mesh.Mesh, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions reads the mesh at path
func LoadWithOptions(path string, opts Options) (*mesh.Mesh, error) {
	b, err := load(path, opts)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// LoadInto replaces the contents of m with the mesh at path. m is emptied
// before anything is read, so after a failed load it is empty rather than
// holding stale or partial data.
func LoadInto(path string, m *mesh.Mesh, opts Options) error {
	m.Reset()
	b, err := load(path, opts)
	if err != nil {
		return err
	}
	b.BuildInto(m)
	return nil
}

// Parse reads a mesh from r line by line. sizeHint is the expected input
// size in bytes, or 0 if unknown; it only affects preallocation.
func Parse(r io.Reader, sizeHint int64) (*mesh.Mesh, error) {
	b, err := parseBuffered(r, sizeHint)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func load(path string, opts Options) (*mesh.Builder, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	size := info.Size()

	// An empty file is a valid, empty mesh.
	if info.Mode().IsRegular() && size == 0 {
		return mesh.NewBuilder(0, 0), nil
	}

	switch opts.Strategy {
	case StrategyBuffered:
		return parseBuffered(file, size)

	case StrategyMapped:
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("cannot map %s: not a regular file", path)
		}
		return loadMapped(file, size)

	default:
		if !info.Mode().IsRegular() {
			return parseBuffered(file, size)
		}
		if b, err := loadMapped(file, size); err == nil {
			return b, nil
		}
		// Mapping reads nothing through the file offset, but rewind anyway
		// so the fallback never depends on that.
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to reset file pointer: %w", err)
		}
		return parseBuffered(file, size)
	}
}
