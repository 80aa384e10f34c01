package physics

import (
	"fmt"
	"math"
)

// Vec2 is an ordered pair of single-precision floats, the module's sole
// linear-algebra primitive.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) String() string {
	return fmt.Sprintf("%f,%f", v.X, v.Y)
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross is the z-component of the 3D cross product of the two vectors,
// extended with zero z-components.
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// CrossVS is the cross product of a vector and a scalar (treated as the
// z-component of a 3D vector), equivalent to rotating v by -90 degrees and
// scaling by z.
func CrossVS(v Vec2, z float32) Vec2 {
	return Vec2{z * v.Y, -z * v.X}
}

// CrossSV is the mirror of CrossVS: cross(z, v) instead of cross(v, z).
func CrossSV(z float32, v Vec2) Vec2 {
	return Vec2{-z * v.Y, z * v.X}
}

func (v Vec2) LengthSq() float32 {
	return v.Dot(v)
}

func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return v.Scale(1 - t).Add(other.Scale(t))
}

// Abs returns the componentwise absolute value, used by the SAT axis search
// on the centre offset projected into a box's local frame.
func (v Vec2) Abs() Vec2 {
	return Vec2{float32(math.Abs(float64(v.X))), float32(math.Abs(float64(v.Y)))}
}

// component returns v.X for i == 0 and v.Y for i == 1, used where an axis
// index rather than a named field selects the component.
func component(v Vec2, i uint8) float32 {
	if i == 0 {
		return v.X
	}
	return v.Y
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampF(f, lo, hi float32) float32 {
	return maxF(lo, minF(f, hi))
}
