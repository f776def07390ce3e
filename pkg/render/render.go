// Package render draws wireframe snapshots of a mesh into images: single
// frames as PNG and turntable animations as GIF.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/gowire/pkg/mesh"
	"golang.org/x/image/draw"
)

// Settings controls the look of a frame
type Settings struct {
	Width, Height int
	Background    color.RGBA
	EdgeColor     color.RGBA
	EdgeWidth     int
	VertexColor   color.RGBA
	// VertexSize is the side of the square drawn per vertex, 0 hides them
	VertexSize int
	Projection Projection
	// Supersample renders at this multiple of the output size and scales
	// down, which smooths the lines
	Supersample int
}

// DefaultSettings returns white 1px lines on a dark background
func DefaultSettings() Settings {
	return Settings{
		Width:       800,
		Height:      600,
		Background:  color.RGBA{R: 23, G: 23, B: 28, A: 255},
		EdgeColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		EdgeWidth:   1,
		VertexColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Projection:  Perspective,
		Supersample: 2,
	}
}

// Frame draws the edges of m as seen from cam. edges is a flattened
// [a0, b0, a1, b1, ...] list of indices into m's vertices.
func Frame(m *mesh.Mesh, edges []uint32, cam *Camera, s Settings) *image.RGBA {
	ss := max(s.Supersample, 1)
	width, height := max(s.Width, 1), max(s.Height, 1)
	w, h := width*ss, height*ss

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Rect, image.NewUniform(s.Background), image.Point{}, draw.Src)

	view := *cam
	view.Projection = s.Projection

	type point struct {
		x, y    int
		visible bool
	}
	vertices := m.Vertices()
	points := make([]point, len(vertices))
	for i, v := range vertices {
		fx, fy, _, ok := view.Project(v, float64(w), float64(h))
		if !ok {
			continue
		}
		x, okX := clipCoord(fx, w)
		y, okY := clipCoord(fy, h)
		points[i] = point{x: x, y: y, visible: okX && okY}
	}

	lineWidth := max(s.EdgeWidth, 1) * ss
	for i := 0; i+1 < len(edges); i += 2 {
		a, b := points[edges[i]], points[edges[i+1]]
		if !a.visible || !b.visible {
			continue
		}
		drawLine(img, a.x, a.y, b.x, b.y, lineWidth, s.EdgeColor)
	}

	if s.VertexSize > 0 {
		for _, p := range points {
			if p.visible {
				plot(img, p.x, p.y, s.VertexSize*ss, s.VertexColor)
			}
		}
	}

	if ss == 1 {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(out, out.Rect, img, img.Rect, draw.Src, nil)
	return out
}

// Turntable renders frames while orbiting cam one full turn about the
// vertical axis. cam itself is not modified.
func Turntable(m *mesh.Mesh, edges []uint32, cam *Camera, s Settings, frames int) []*image.Paletted {
	frames = max(frames, 1)
	view := *cam
	step := 2 * math.Pi / float64(frames)

	out := make([]*image.Paletted, 0, frames)
	for range frames {
		rgba := Frame(m, edges, &view, s)
		paletted := image.NewPaletted(rgba.Rect, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, rgba.Rect, rgba, image.Point{})
		out = append(out, paletted)
		view.Rotate(0, step)
	}
	return out
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WriteGIF encodes frames as a looping GIF with delayCs hundredths of a
// second between frames
func WriteGIF(w io.Writer, frames []*image.Paletted, delayCs int) error {
	anim := &gif.GIF{
		Image:     frames,
		Delay:     make([]int, len(frames)),
		LoopCount: 0,
	}
	for i := range anim.Delay {
		anim.Delay[i] = delayCs
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("failed to encode GIF: %w", err)
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa"
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q (expected #rrggbb)", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
