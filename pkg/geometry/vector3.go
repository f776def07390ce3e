package geometry

import "math"

// Vector3 represents a 3D point or offset in double precision
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction, or the zero vector
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return v.Mul(1 / length)
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{X: math.Min(v.X, other.X), Y: math.Min(v.Y, other.Y), Z: math.Min(v.Z, other.Z)}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{X: math.Max(v.X, other.X), Y: math.Max(v.Y, other.Y), Z: math.Max(v.Z, other.Z)}
}

// Float32 returns the components narrowed to single precision, the layout
// vertex buffers are uploaded in.
func (v Vector3) Float32() [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// ScaleAbout scales the point's offset from pivot by k.
func (v Vector3) ScaleAbout(pivot Vector3, k float64) Vector3 {
	return Vector3{
		X: (v.X-pivot.X)*k + pivot.X,
		Y: (v.Y-pivot.Y)*k + pivot.Y,
		Z: (v.Z-pivot.Z)*k + pivot.Z,
	}
}

// RotateX rotates the point in the Y→Z plane around pivot.
// sin and cos are passed in so a whole vertex set shares one evaluation.
func (v Vector3) RotateX(pivot Vector3, sin, cos float64) Vector3 {
	y := v.Y - pivot.Y
	z := v.Z - pivot.Z
	return Vector3{
		X: v.X,
		Y: y*cos - z*sin + pivot.Y,
		Z: y*sin + z*cos + pivot.Z,
	}
}

// RotateY rotates the point in the Z→X plane around pivot.
func (v Vector3) RotateY(pivot Vector3, sin, cos float64) Vector3 {
	x := v.X - pivot.X
	z := v.Z - pivot.Z
	return Vector3{
		X: x*cos + z*sin + pivot.X,
		Y: v.Y,
		Z: -x*sin + z*cos + pivot.Z,
	}
}

// RotateZ rotates the point in the X→Y plane around pivot.
func (v Vector3) RotateZ(pivot Vector3, sin, cos float64) Vector3 {
	x := v.X - pivot.X
	y := v.Y - pivot.Y
	return Vector3{
		X: x*cos - y*sin + pivot.X,
		Y: x*sin + y*cos + pivot.Y,
		Z: v.Z,
	}
}

// Radians converts an angle in degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
