package vec3

import (
	"fmt"

	"trivector/src/spatial/columnar"
	"trivector/src/spatial/ewise"
)

const (
	colX = "x"
	colY = "y"
	colZ = "z"
)

var columnOps = Ops[[]float64]{
	Add:  ewise.Add,
	Sub:  ewise.Sub,
	Mul:  ewise.Mul,
	Div:  ewise.Div,
	Neg:  ewise.Neg,
	One:  func(like []float64) []float64 { return ewise.Full(len(like), 1) },
	Sqrt: ewise.Sqrt,
	Sin:  ewise.Sin,
	Cos:  ewise.Cos,
}

// Array is a batch of (x, y, z) triples stored as three aligned columns.
// The row count is fixed at construction; geometric operations allocate a
// new Array and leave the receiver untouched. Only the column setters
// mutate, and the table rejects any write that would break alignment.
type Array struct {
	tab *columnar.Table
}

// NewArray builds a batch from three coordinate sequences. The row count is
// the shortest input's length; the inputs are copied, not aliased.
func NewArray(x, y, z []float64) *Array {
	n := minLen(x, y, z)
	a := emptyArray(n)
	a.tab.MustSet(colX, append([]float64(nil), x[:n]...))
	a.tab.MustSet(colY, append([]float64(nil), y[:n]...))
	a.tab.MustSet(colZ, append([]float64(nil), z[:n]...))
	return a
}

func minLen(x, y, z []float64) int {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if len(z) < n {
		n = len(z)
	}
	return n
}

func emptyArray(n int) *Array {
	t := columnar.New(n)
	t.MustSet(colX, ewise.Zeros(n))
	t.MustSet(colY, ewise.Zeros(n))
	t.MustSet(colZ, ewise.Zeros(n))
	return &Array{tab: t}
}

// OriginArray returns a batch of n zero vectors.
func OriginArray(n int) *Array {
	return emptyArray(n)
}

// OriginLike returns a batch of zero vectors with the same row count as a.
func OriginLike(a *Array) *Array {
	return OriginArray(a.Len())
}

// SphericalArray builds a batch from per-row (r, theta, phi), physics
// convention. Inputs are truncated to the shortest length.
func SphericalArray(r, theta, phi []float64) *Array {
	n := minLen(r, theta, phi)
	r, theta, phi = r[:n], theta[:n], phi[:n]
	st, ct := ewise.Sin(theta), ewise.Cos(theta)
	sp, cp := ewise.Sin(phi), ewise.Cos(phi)
	return NewArray(
		ewise.Mul(r, ewise.Mul(st, cp)),
		ewise.Mul(r, ewise.Mul(st, sp)),
		ewise.Mul(r, ct),
	)
}

// CylindricalArray builds a batch from per-row (rho, phi, z).
func CylindricalArray(rho, phi, z []float64) *Array {
	n := minLen(rho, phi, z)
	rho, phi, z = rho[:n], phi[:n], z[:n]
	return NewArray(
		ewise.Mul(rho, ewise.Cos(phi)),
		ewise.Mul(rho, ewise.Sin(phi)),
		z,
	)
}

func (a *Array) Len() int {
	return a.tab.Len()
}

// X returns the x column. The slice aliases the store; use SetX to replace
// it wholesale.
func (a *Array) X() []float64 { return a.tab.Get(colX) }
func (a *Array) Y() []float64 { return a.tab.Get(colY) }
func (a *Array) Z() []float64 { return a.tab.Get(colZ) }

func (a *Array) SetX(col []float64) error { return a.tab.Set(colX, col) }
func (a *Array) SetY(col []float64) error { return a.tab.Set(colY, col) }
func (a *Array) SetZ(col []float64) error { return a.tab.Set(colZ, col) }

// At materializes row i as a scalar Vector3. Rows are views built on demand,
// never cached; writing to the returned value does not touch the batch.
func (a *Array) At(i int) Vector3 {
	return Vector3{
		X: a.tab.Value(colX, i),
		Y: a.tab.Value(colY, i),
		Z: a.tab.Value(colZ, i),
	}
}

// EmptyLike allocates a batch with the same row count and zeroed columns.
func (a *Array) EmptyLike() *Array {
	return emptyArray(a.Len())
}

// Like checks a raw column against the receiver's shape and returns it.
func (a *Array) Like(col []float64) []float64 {
	if len(col) != a.Len() {
		panic(fmt.Errorf("%w: sequence has %d rows, batch has %d",
			columnar.ErrLength, len(col), a.Len()))
	}
	return col
}

func (a *Array) triple() triple[[]float64] {
	return triple[[]float64]{a.X(), a.Y(), a.Z()}
}

func (a *Array) pack(t triple[[]float64]) *Array {
	out := a.EmptyLike()
	out.tab.MustSet(colX, t.x)
	out.tab.MustSet(colY, t.y)
	out.tab.MustSet(colZ, t.z)
	return out
}

func (a *Array) Dot(b *Array) []float64 {
	return dot(columnOps, a.triple(), b.triple())
}

func (a *Array) Cross(b *Array) *Array {
	return a.pack(cross(columnOps, a.triple(), b.triple()))
}

func (a *Array) Mag2() []float64 {
	return a.Dot(a)
}

func (a *Array) Mag() []float64 {
	return ewise.Sqrt(a.Mag2())
}

func (a *Array) Rho2() []float64 {
	return rho2(columnOps, a.triple())
}

func (a *Array) Rho() []float64 {
	return ewise.Sqrt(a.Rho2())
}

// Unit scales each row to unit magnitude. Zero rows come back as NaN.
func (a *Array) Unit() *Array {
	m := a.Mag()
	return a.pack(triple[[]float64]{
		ewise.Div(a.X(), m),
		ewise.Div(a.Y(), m),
		ewise.Div(a.Z(), m),
	})
}

// Theta is the per-row polar angle, atan2(rho, z).
func (a *Array) Theta() []float64 {
	return ewise.Atan2(a.Rho(), a.Z())
}

// Phi is the per-row azimuthal angle, atan2(y, x).
func (a *Array) Phi() []float64 {
	return ewise.Atan2(a.Y(), a.X())
}

// CotTheta is rho / z per row; rows with z = 0 carry ±Inf or NaN.
func (a *Array) CotTheta() []float64 {
	return cotTheta(columnOps, a.triple())
}

// RotateAxis rotates every row about the same axis by the same angle. The
// scalar parameters are broadcast to constant columns so the kernel sees
// aligned sequences throughout.
func (a *Array) RotateAxis(axis Vector3, angle float64) *Array {
	n := a.Len()
	ax := triple[[]float64]{
		ewise.Full(n, axis.X),
		ewise.Full(n, axis.Y),
		ewise.Full(n, axis.Z),
	}
	return a.pack(rotateAxis(columnOps, a.triple(), ax, ewise.Full(n, angle)))
}

func (a *Array) RotateX(angle float64) *Array {
	return a.RotateAxis(Vector3{X: 1}, angle)
}

func (a *Array) RotateY(angle float64) *Array {
	return a.RotateAxis(Vector3{Y: 1}, angle)
}

func (a *Array) RotateZ(angle float64) *Array {
	return a.RotateAxis(Vector3{Z: 1}, angle)
}

// RotateEuler applies the same fused Z-Y-Z rotation to every row.
func (a *Array) RotateEuler(phi, theta, psi float64) *Array {
	n := a.Len()
	return a.pack(rotateEuler(columnOps, a.triple(),
		ewise.Full(n, phi), ewise.Full(n, theta), ewise.Full(n, psi)))
}

// RotateEulerCols applies a per-row Z-Y-Z rotation; the three angle columns
// must match the batch's row count.
func (a *Array) RotateEulerCols(phi, theta, psi []float64) *Array {
	return a.pack(rotateEuler(columnOps, a.triple(),
		a.Like(phi), a.Like(theta), a.Like(psi)))
}
