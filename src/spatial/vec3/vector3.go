package vec3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 is a single (x, y, z) triple. Fields are individually settable;
// every geometric operation returns a new value.
type Vector3 struct {
	X, Y, Z float64
}

var scalarOps = Ops[float64]{
	Add:  func(a, b float64) float64 { return a + b },
	Sub:  func(a, b float64) float64 { return a - b },
	Mul:  func(a, b float64) float64 { return a * b },
	Div:  func(a, b float64) float64 { return a / b },
	Neg:  func(a float64) float64 { return -a },
	One:  func(float64) float64 { return 1 },
	Sqrt: math.Sqrt,
	Sin:  math.Sin,
	Cos:  math.Cos,
}

func New(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func Origin() Vector3 {
	return Vector3{}
}

// FromSpherical uses the physics convention: theta is the polar angle from
// the z axis, phi the azimuth from the x axis.
func FromSpherical(r, theta, phi float64) Vector3 {
	return Vector3{
		X: r * math.Sin(theta) * math.Cos(phi),
		Y: r * math.Sin(theta) * math.Sin(phi),
		Z: r * math.Cos(theta),
	}
}

func FromCylindrical(rho, phi, z float64) Vector3 {
	return Vector3{
		X: rho * math.Cos(phi),
		Y: rho * math.Sin(phi),
		Z: z,
	}
}

func FromR3(v r3.Vec) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// R3 converts to a gonum spatial/r3 vector.
func (v Vector3) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Maker reconstructs a vector kind from three coordinates. A type embedding
// Vector3 satisfies Maker[itself] to get kernel-derived values of its own
// concrete kind instead of plain Vector3.
type Maker[T any] interface {
	Make(x, y, z float64) T
}

func (Vector3) Make(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) triple() triple[float64] {
	return triple[float64]{v.X, v.Y, v.Z}
}

func (v Vector3) Dot(b Vector3) float64 {
	return dot(scalarOps, v.triple(), b.triple())
}

func (v Vector3) Cross(b Vector3) Vector3 {
	return CrossAs[Vector3](v, v, b)
}

func (v Vector3) Mag2() float64 {
	return v.Dot(v)
}

func (v Vector3) Mag() float64 {
	return math.Sqrt(v.Mag2())
}

func (v Vector3) Rho2() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector3) Rho() float64 {
	return math.Sqrt(v.Rho2())
}

// Unit divides by Mag. The zero vector yields NaN coordinates, not an error.
func (v Vector3) Unit() Vector3 {
	return v.Scale(1 / v.Mag())
}

// Theta is the polar angle, atan2(rho, z).
func (v Vector3) Theta() float64 {
	return math.Atan2(v.Rho(), v.Z)
}

// Phi is the azimuthal angle, atan2(y, x).
func (v Vector3) Phi() float64 {
	return math.Atan2(v.Y, v.X)
}

// CotTheta is rho / z. z = 0 yields ±Inf or NaN per IEEE 754.
func (v Vector3) CotTheta() float64 {
	return cotTheta(scalarOps, v.triple())
}

func (v Vector3) Add(b Vector3) Vector3 {
	return Vector3{v.X + b.X, v.Y + b.Y, v.Z + b.Z}
}

func (v Vector3) Sub(b Vector3) Vector3 {
	return Vector3{v.X - b.X, v.Y - b.Y, v.Z - b.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// RotateAxis rotates v about axis by angle radians, right-hand rule. axis
// need not be a unit vector; it is normalized internally.
func (v Vector3) RotateAxis(axis Vector3, angle float64) Vector3 {
	return RotateAxisAs[Vector3](v, v, axis, angle)
}

func (v Vector3) RotateX(angle float64) Vector3 {
	return v.RotateAxis(Vector3{X: 1}, angle)
}

func (v Vector3) RotateY(angle float64) Vector3 {
	return v.RotateAxis(Vector3{Y: 1}, angle)
}

func (v Vector3) RotateZ(angle float64) Vector3 {
	return v.RotateAxis(Vector3{Z: 1}, angle)
}

// RotateEuler applies the intrinsic Z(phi) -> Y(theta) -> Z(psi) rotation.
// Zero angles are the identity.
func (v Vector3) RotateEuler(phi, theta, psi float64) Vector3 {
	return RotateEulerAs[Vector3](v, v, phi, theta, psi)
}

// String renders each coordinate to 4 significant digits, trailing zeros
// kept. Repeated calls render identically.
func (v Vector3) String() string {
	return fmt.Sprintf("Vector3(%#.4g, %#.4g, %#.4g)", v.X, v.Y, v.Z)
}

// CrossAs, RotateAxisAs and RotateEulerAs are the polymorphic-construction
// seams: they run the kernel on plain coordinates and hand the result to m,
// so embedding types come back out as themselves.

func CrossAs[T any](m Maker[T], a, b Vector3) T {
	c := cross(scalarOps, a.triple(), b.triple())
	return m.Make(c.x, c.y, c.z)
}

func RotateAxisAs[T any](m Maker[T], v, axis Vector3, angle float64) T {
	r := rotateAxis(scalarOps, v.triple(), axis.triple(), angle)
	return m.Make(r.x, r.y, r.z)
}

func RotateEulerAs[T any](m Maker[T], v Vector3, phi, theta, psi float64) T {
	r := rotateEuler(scalarOps, v.triple(), phi, theta, psi)
	return m.Make(r.x, r.y, r.z)
}
