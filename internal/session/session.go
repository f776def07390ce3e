// Package session owns the mesh a front end works on. It serializes loads
// and transforms and hands back the edge list to draw after each one.
package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/philipparndt/gowire/pkg/mesh"
	"github.com/philipparndt/gowire/pkg/obj"
	"github.com/philipparndt/gowire/pkg/stl"
	"github.com/philipparndt/gowire/pkg/watcher"
)

// ErrNoFile is returned by Watch before anything was loaded
var ErrNoFile = errors.New("no file loaded")

// Options configures a session
type Options struct {
	Loader obj.Strategy
	Edges  mesh.EdgeMode
}

// Update describes the mesh after a load or transform
type Update struct {
	VertexCount int
	// EdgeCount is the raw edge count cached at load time
	EdgeCount int
	// Edges is the flattened edge list in the session's edge mode
	Edges   []uint32
	Elapsed time.Duration
}

// Segments returns the number of line segments in Edges
func (u Update) Segments() int {
	return len(u.Edges) / 2
}

// Result is delivered by LoadAsync
type Result struct {
	Update
	Path string
	Err  error
}

// Session holds one mesh and the path it came from
type Session struct {
	mu   sync.Mutex
	mesh *mesh.Mesh
	path string
	opts Options
	// gen counts load requests. Only the newest may swap in its mesh.
	gen uint64
}

// New creates a session with an empty mesh
func New(opts Options) *Session {
	return &Session{mesh: mesh.New(), opts: opts}
}

// Options returns the session options
func (s *Session) Options() Options {
	return s.opts
}

// Path returns the path of the last successful load
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// View calls fn with the current mesh while holding the session lock.
// fn must not keep the mesh or call back into the session.
func (s *Session) View(fn func(m *mesh.Mesh)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.mesh)
}

// Load replaces the mesh with the contents of path. On failure the mesh is
// left empty.
func (s *Session) Load(path string) (Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	start := time.Now()
	if err := loadInto(path, s.mesh, s.opts.Loader); err != nil {
		s.path = ""
		return Update{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	s.path = path

	u := s.update()
	u.Elapsed = time.Since(start)
	return u, nil
}

// LoadAsync parses path on a new goroutine into a fresh mesh and swaps it
// in when done. The returned channel yields one Result and is then closed.
//
// A failed load leaves the current mesh untouched. A load overtaken by a
// later Load or LoadAsync never replaces the newer mesh. Cancelling ctx does
// not interrupt the parse, but its result is then discarded. In both cases
// the channel is closed without a value.
func (s *Session) LoadAsync(ctx context.Context, path string) <-chan Result {
	out := make(chan Result, 1)

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	go func() {
		defer close(out)

		start := time.Now()
		m, err := LoadFile(path, s.opts.Loader)
		if err != nil {
			if ctx.Err() == nil {
				out <- Result{Path: path, Err: fmt.Errorf("failed to load %s: %w", path, err)}
			}
			return
		}
		edges := mesh.BuildEdges(m, s.opts.Edges)

		if ctx.Err() != nil {
			return
		}

		s.mu.Lock()
		if s.gen != gen {
			s.mu.Unlock()
			return
		}
		s.mesh = m
		s.path = path
		s.mu.Unlock()

		out <- Result{
			Update: Update{
				VertexCount: m.VertexCount(),
				EdgeCount:   m.EdgeCount(),
				Edges:       edges,
				Elapsed:     time.Since(start),
			},
			Path: path,
		}
	}()

	return out
}

// Apply runs t against the mesh and rebuilds the edges
func (s *Session) Apply(t mesh.Transform) Update {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	s.mesh.Apply(t)
	u := s.update()
	u.Elapsed = time.Since(start)
	return u
}

// Translate moves the mesh by (dx, dy, dz)
func (s *Session) Translate(dx, dy, dz float64) Update {
	return s.Apply(mesh.Translation(dx, dy, dz))
}

// Scale scales the mesh about its bounding box center
func (s *Session) Scale(k float64) Update {
	return s.Apply(mesh.Scaling(k))
}

// RotateX rotates the mesh about its bounding box center
func (s *Session) RotateX(deg float64) Update {
	return s.Apply(mesh.Rotation(mesh.AxisX, deg))
}

// RotateY rotates the mesh about its bounding box center
func (s *Session) RotateY(deg float64) Update {
	return s.Apply(mesh.Rotation(mesh.AxisY, deg))
}

// RotateZ rotates the mesh about its bounding box center
func (s *Session) RotateZ(deg float64) Update {
	return s.Apply(mesh.Rotation(mesh.AxisZ, deg))
}

// Watch reloads the current file whenever it changes and blocks until ctx
// is done. onReload receives every reload result and every watcher error.
func (s *Session) Watch(ctx context.Context, debounce time.Duration, onReload func(Result)) error {
	path := s.Path()
	if path == "" {
		return ErrNoFile
	}

	fw, err := watcher.NewFileWatcher(debounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	fw.OnError = func(err error) {
		onReload(Result{Path: path, Err: fmt.Errorf("watcher error: %w", err)})
	}

	// Reloads run one at a time on the timer goroutine.
	var reloading sync.Mutex
	callback := func(string) {
		reloading.Lock()
		defer reloading.Unlock()
		if res, ok := <-s.LoadAsync(ctx, path); ok {
			onReload(res)
		}
	}

	if err := fw.Watch([]string{path}, callback); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Run(ctx)
	return nil
}

// LoadFile reads a mesh from path. Files ending in .stl are imported as
// STL, everything else is read as OBJ with the given strategy.
func LoadFile(path string, strategy obj.Strategy) (*mesh.Mesh, error) {
	m := mesh.New()
	if err := loadInto(path, m, strategy); err != nil {
		return nil, err
	}
	return m, nil
}

func loadInto(path string, m *mesh.Mesh, strategy obj.Strategy) error {
	if strings.EqualFold(filepath.Ext(path), ".stl") {
		return stl.LoadInto(path, m)
	}
	return obj.LoadInto(path, m, obj.Options{Strategy: strategy})
}

// update must be called with s.mu held
func (s *Session) update() Update {
	return Update{
		VertexCount: s.mesh.VertexCount(),
		EdgeCount:   s.mesh.EdgeCount(),
		Edges:       mesh.BuildEdges(s.mesh, s.opts.Edges),
	}
}
