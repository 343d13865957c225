// Package vec provides the three component vector used for every physical
// quantity in the simulation: velocity, angular velocity, position and force.
//
// A [Vector3] carries no unit. Callers track units by convention. All
// operations return a new value; nothing mutates its receiver.
package vec

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrDivisionByZero is returned by operations that divide by a zero scalar
// or by the length of a zero vector.
var ErrDivisionByZero = errors.New("vec: division by zero")

// Vector3 is an immutable 3D vector backed by mgl64.Vec3.
type Vector3 mgl64.Vec3

// Zero is the origin.
var Zero = Vector3{}

func New(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

func (v Vector3) X() float64 { return v[0] }
func (v Vector3) Y() float64 { return v[1] }
func (v Vector3) Z() float64 { return v[2] }

func (v Vector3) mgl() mgl64.Vec3 { return mgl64.Vec3(v) }

func (v Vector3) Add(o Vector3) Vector3 { return Vector3(v.mgl().Add(o.mgl())) }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3(v.mgl().Sub(o.mgl())) }

// Scale multiplies every component by k. Zero and negative k are allowed.
func (v Vector3) Scale(k float64) Vector3 { return Vector3(v.mgl().Mul(k)) }

func (v Vector3) Neg() Vector3 { return v.Scale(-1) }

// Div divides every component by k.
func (v Vector3) Div(k float64) (Vector3, error) {
	if k == 0 {
		return Zero, ErrDivisionByZero
	}
	return Vector3{v[0] / k, v[1] / k, v[2] / k}, nil
}

func (v Vector3) Dot(o Vector3) float64 { return v.mgl().Dot(o.mgl()) }

// Cross is the right-handed cross product, so a.Cross(b) == b.Cross(a).Neg().
func (v Vector3) Cross(o Vector3) Vector3 { return Vector3(v.mgl().Cross(o.mgl())) }

func (v Vector3) LengthSquared() float64 { return v.Dot(v) }

func (v Vector3) Length() float64 { return v.mgl().Len() }

// Normalize returns v / |v|. The division is done per component rather than
// by multiplying with 1/|v| so results match the plain quotient bit for bit.
func (v Vector3) Normalize() (Vector3, error) {
	l := v.Length()
	if l == 0 {
		return Zero, ErrDivisionByZero
	}
	return v.Div(l)
}

// HorizontalDistance is the distance between v and o in the x,y plane. The z
// component is ignored.
func (v Vector3) HorizontalDistance(o Vector3) float64 {
	dx := v[0] - o[0]
	dy := v[1] - o[1]
	return math.Sqrt(dx*dx + dy*dy)
}

// Distance3D is the full Euclidean distance between v and o.
func (v Vector3) Distance3D(o Vector3) float64 {
	return v.Sub(o).Length()
}

func (v Vector3) IsZero() bool { return v == Zero }

func (v Vector3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
