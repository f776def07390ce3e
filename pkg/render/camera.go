package render

import (
	"fmt"
	"math"

	"github.com/philipparndt/gowire/pkg/geometry"
)

// Projection selects how camera space maps onto the image
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	}
	return fmt.Sprintf("Projection(%d)", int(p))
}

// ParseProjection parses "perspective" or "orthographic" ("ortho")
func ParseProjection(s string) (Projection, error) {
	switch s {
	case "", "perspective":
		return Perspective, nil
	case "ortho", "orthographic":
		return Orthographic, nil
	}
	return 0, fmt.Errorf("unknown projection %q (expected perspective or orthographic)", s)
}

// nearPlane is the closest camera-space depth still drawn in perspective
const nearPlane = 0.01

// Camera orbits a target point
type Camera struct {
	Position   geometry.Vector3
	Target     geometry.Vector3
	Up         geometry.Vector3
	FOV        float64 // Field of view in radians
	Distance   float64
	RotationX  float64 // Rotation around X axis (vertical)
	RotationY  float64 // Rotation around Y axis (horizontal)
	Projection Projection
	// OrthoHeight is the world-space height covered by an orthographic view
	OrthoHeight float64
}

// NewCamera creates a new camera positioned to view a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	size := bbox.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim <= 0 {
		maxDim = 1
	}
	distance := maxDim * 2.0

	return &Camera{
		Position:    center.Add(geometry.NewVector3(0, 0, distance)),
		Target:      center,
		Up:          geometry.NewVector3(0, 1, 0),
		FOV:         math.Pi / 4, // 45 degrees
		Distance:    distance,
		OrthoHeight: maxDim * 1.2,
	}
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles in radians
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = math.Max(-maxAngle, math.Min(maxAngle, c.RotationX))

	c.UpdatePosition()
}

// Zoom changes the camera distance by a relative amount
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	c.OrthoHeight *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Project projects a 3D point to 2D screen coordinates. visible is false for
// points behind the near plane of a perspective camera.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (x, y, depth float64, visible bool) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	cx := relative.Dot(right)
	cy := relative.Dot(up)
	cz := relative.Dot(forward)

	if c.Projection == Orthographic {
		scale := height / c.OrthoHeight
		return cx*scale + width/2, -cy*scale + height/2, cz, true
	}

	if cz <= nearPlane {
		return 0, 0, cz, false
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	x = (cx/(cz*fovScale*aspect))*(width/2) + (width / 2)
	y = (-cy/(cz*fovScale))*(height/2) + (height / 2)
	return x, y, cz, true
}
