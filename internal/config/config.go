// Package config reads the optional TOML settings file of the gowire CLI.
//
//	loader = "auto"        # auto, mapped or buffered
//	edges  = "canonical"   # canonical or raw
//
//	[watch]
//	debounce = "500ms"
//
//	[export]
//	output = "mesh.bin"
//
//	[render]
//	width = 800
//	height = 600
//	projection = "perspective"  # or orthographic
//	background = "#17171c"
//	edge_color = "#ffffff"
//	edge_width = 1
//	vertex_size = 0
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gowire/pkg/mesh"
	"github.com/philipparndt/gowire/pkg/obj"
	"github.com/philipparndt/gowire/pkg/render"
)

// DefaultFile is read from the working directory when no path is given
const DefaultFile = ".gowire.toml"

// ErrUnknownValue is returned for keys or values the CLI does not know
var ErrUnknownValue = errors.New("unknown configuration value")

// Config holds resolved settings
type Config struct {
	Loader   obj.Strategy
	Edges    mesh.EdgeMode
	Debounce time.Duration
	Output   string
	Render   render.Settings

	// Source is the file the settings were read from, empty for defaults
	Source string
}

// Default returns the settings used when no file is present
func Default() Config {
	return Config{
		Loader:   obj.StrategyAuto,
		Edges:    mesh.EdgesCanonical,
		Debounce: 500 * time.Millisecond,
		Output:   "mesh.bin",
		Render:   render.DefaultSettings(),
	}
}

type fileConfig struct {
	Loader string `toml:"loader"`
	Edges  string `toml:"edges"`
	Watch  struct {
		Debounce duration `toml:"debounce"`
	} `toml:"watch"`
	Export struct {
		Output string `toml:"output"`
	} `toml:"export"`
	Render renderConfig `toml:"render"`
}

type renderConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Projection string `toml:"projection"`
	Background string `toml:"background"`
	EdgeColor  string `toml:"edge_color"`
	EdgeWidth  int    `toml:"edge_width"`
	VertexSize int    `toml:"vertex_size"`
}

type duration struct {
	time.Duration
	set bool
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("negative duration %q", text)
	}
	d.Duration, d.set = v, true
	return nil
}

// Load reads path. An empty path means DefaultFile if it exists, otherwise
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			return Default(), nil
		}
		path = DefaultFile
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Decode reads settings from r on top of the defaults
func Decode(r io.Reader) (Config, error) {
	var fc fileConfig
	meta, err := toml.NewDecoder(r).Decode(&fc)
	if err != nil {
		return Config{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: key(s) %s", ErrUnknownValue, strings.Join(keys, ", "))
	}

	cfg := Default()
	if err := cfg.SetLoader(fc.Loader); err != nil {
		return Config{}, err
	}
	if err := cfg.SetEdges(fc.Edges); err != nil {
		return Config{}, err
	}
	if fc.Watch.Debounce.set {
		cfg.Debounce = fc.Watch.Debounce.Duration
	}
	if fc.Export.Output != "" {
		cfg.Output = fc.Export.Output
	}
	if err := fc.Render.apply(&cfg.Render); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (rc renderConfig) apply(s *render.Settings) error {
	if rc.Width < 0 || rc.Height < 0 || rc.EdgeWidth < 0 || rc.VertexSize < 0 {
		return fmt.Errorf("render sizes must not be negative")
	}
	if rc.Width > 0 {
		s.Width = rc.Width
	}
	if rc.Height > 0 {
		s.Height = rc.Height
	}
	if rc.EdgeWidth > 0 {
		s.EdgeWidth = rc.EdgeWidth
	}
	if rc.VertexSize > 0 {
		s.VertexSize = rc.VertexSize
	}

	if rc.Projection != "" {
		p, err := render.ParseProjection(rc.Projection)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownValue, err)
		}
		s.Projection = p
	}
	for _, c := range []struct {
		value string
		dst   *color.RGBA
	}{
		{rc.Background, &s.Background},
		{rc.EdgeColor, &s.EdgeColor},
	} {
		if c.value == "" {
			continue
		}
		parsed, err := render.ParseColor(c.value)
		if err != nil {
			return err
		}
		*c.dst = parsed
	}
	return nil
}

// SetLoader overrides the loader strategy. An empty value keeps the current one.
func (c *Config) SetLoader(s string) error {
	if s == "" {
		return nil
	}
	strategy, err := obj.ParseStrategy(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownValue, err)
	}
	c.Loader = strategy
	return nil
}

// SetEdges overrides the edge mode. An empty value keeps the current one.
func (c *Config) SetEdges(s string) error {
	if s == "" {
		return nil
	}
	mode, err := mesh.ParseEdgeMode(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownValue, err)
	}
	c.Edges = mode
	return nil
}
