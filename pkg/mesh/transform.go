package mesh

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/gowire/pkg/geometry"
)

// ErrInvalidTransform is returned when a transform expression cannot be parsed
var ErrInvalidTransform = errors.New("invalid transform")

// Translate adds the offset to every vertex
func (m *Mesh) Translate(dx, dy, dz float64) {
	if len(m.vertices) == 0 {
		return
	}
	offset := geometry.NewVector3(dx, dy, dz)
	for i := range m.vertices {
		m.vertices[i] = m.vertices[i].Add(offset)
	}
}

// Scale scales the mesh by k about the center of its current bounding box
func (m *Mesh) Scale(k float64) {
	// k == 1 must leave coordinates bit-identical, which (v-c)*1+c does not
	// guarantee.
	if len(m.vertices) == 0 || k == 1 {
		return
	}
	c := m.ComputeAabb().Center()
	for i := range m.vertices {
		m.vertices[i] = m.vertices[i].ScaleAbout(c, k)
	}
}

// RotateX rotates the mesh by deg degrees about the X axis through the
// center of its current bounding box
func (m *Mesh) RotateX(deg float64) {
	m.rotate(AxisX, deg)
}

// RotateY rotates the mesh by deg degrees about the Y axis through the
// center of its current bounding box
func (m *Mesh) RotateY(deg float64) {
	m.rotate(AxisY, deg)
}

// RotateZ rotates the mesh by deg degrees about the Z axis through the
// center of its current bounding box
func (m *Mesh) RotateZ(deg float64) {
	m.rotate(AxisZ, deg)
}

func (m *Mesh) rotate(axis Axis, deg float64) {
	if len(m.vertices) == 0 {
		return
	}
	c := m.ComputeAabb().Center()
	s, cs := math.Sincos(geometry.Radians(deg))

	for i, v := range m.vertices {
		switch axis {
		case AxisX:
			m.vertices[i] = v.RotateX(c, s, cs)
		case AxisY:
			m.vertices[i] = v.RotateY(c, s, cs)
		case AxisZ:
			m.vertices[i] = v.RotateZ(c, s, cs)
		}
	}
}

// Axis names a rotation axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// TransformKind tags the variant held by a Transform
type TransformKind int

const (
	KindTranslate TransformKind = iota
	KindScale
	KindRotate
)

// Transform is one in-place operation on a mesh. Only the fields of its
// Kind are meaningful.
type Transform struct {
	Kind    TransformKind
	Offset  geometry.Vector3 // KindTranslate
	Factor  float64          // KindScale
	Axis    Axis             // KindRotate
	Degrees float64          // KindRotate
}

// Translation returns a translate transform
func Translation(dx, dy, dz float64) Transform {
	return Transform{Kind: KindTranslate, Offset: geometry.NewVector3(dx, dy, dz)}
}

// Scaling returns a scale transform
func Scaling(k float64) Transform {
	return Transform{Kind: KindScale, Factor: k}
}

// Rotation returns a rotate transform
func Rotation(axis Axis, deg float64) Transform {
	return Transform{Kind: KindRotate, Axis: axis, Degrees: deg}
}

// Apply runs the transform against the mesh
func (m *Mesh) Apply(t Transform) {
	switch t.Kind {
	case KindTranslate:
		m.Translate(t.Offset.X, t.Offset.Y, t.Offset.Z)
	case KindScale:
		m.Scale(t.Factor)
	case KindRotate:
		m.rotate(t.Axis, t.Degrees)
	}
}

func (t Transform) String() string {
	switch t.Kind {
	case KindTranslate:
		return fmt.Sprintf("translate:%g,%g,%g", t.Offset.X, t.Offset.Y, t.Offset.Z)
	case KindScale:
		return fmt.Sprintf("scale:%g", t.Factor)
	case KindRotate:
		return fmt.Sprintf("rot%s:%g", t.Axis, t.Degrees)
	}
	return fmt.Sprintf("Transform(%d)", int(t.Kind))
}

// ParseTransform parses the textual form produced by Transform.String:
//
//	translate:dx,dy,dz
//	scale:k
//	rotx:deg, roty:deg, rotz:deg
func ParseTransform(s string) (Transform, error) {
	name, args, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Transform{}, fmt.Errorf("%w %q: missing ':'", ErrInvalidTransform, s)
	}
	name = strings.ToLower(name)

	values, err := parseFloats(args)
	if err != nil {
		return Transform{}, fmt.Errorf("%w %q: %v", ErrInvalidTransform, s, err)
	}

	want := 1
	if name == "translate" {
		want = 3
	}
	if len(values) != want {
		return Transform{}, fmt.Errorf("%w %q: expected %d value(s), got %d", ErrInvalidTransform, s, want, len(values))
	}

	switch name {
	case "translate":
		return Translation(values[0], values[1], values[2]), nil
	case "scale":
		return Scaling(values[0]), nil
	case "rotx":
		return Rotation(AxisX, values[0]), nil
	case "roty":
		return Rotation(AxisY, values[0]), nil
	case "rotz":
		return Rotation(AxisZ, values[0]), nil
	}
	return Transform{}, fmt.Errorf("%w %q: unknown operation %q", ErrInvalidTransform, s, name)
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
