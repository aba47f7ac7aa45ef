package vec3

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// EulerMatrix returns the fused Z(phi) -> Y(theta) -> Z(psi) rotation as a
// dense 3x3 matrix. The coefficients are the same ones the kernel applies;
// the matrix form exists for inspection and cross-checking.
func EulerMatrix(phi, theta, psi float64) *mat.Dense {
	c1, s1 := math.Cos(phi), math.Sin(phi)
	c2, s2 := math.Cos(theta), math.Sin(theta)
	c3, s3 := math.Cos(psi), math.Sin(psi)

	return mat.NewDense(3, 3, []float64{
		c3*c2*c1 - s3*s1, -c3*c2*s1 - s3*c1, c3 * s2,
		s3*c2*c1 + c3*s1, -s3*c2*s1 + c3*c1, s3 * s2,
		-s2 * c1, s2 * s1, c2,
	})
}

// AxisMatrix returns the Rodrigues rotation about axis by angle radians as a
// dense 3x3 matrix. axis is normalized first.
func AxisMatrix(axis Vector3, angle float64) *mat.Dense {
	u := axis.Unit()
	c := math.Cos(angle)
	s := math.Sin(angle)
	c1 := 1 - c

	return mat.NewDense(3, 3, []float64{
		c + u.X*u.X*c1, u.X*u.Y*c1 - u.Z*s, u.X*u.Z*c1 + u.Y*s,
		u.X*u.Y*c1 + u.Z*s, c + u.Y*u.Y*c1, u.Y*u.Z*c1 - u.X*s,
		u.X*u.Z*c1 - u.Y*s, u.Y*u.Z*c1 + u.X*s, c + u.Z*u.Z*c1,
	})
}

// ApplyMatrix multiplies a 3x3 rotation into v, returning the transformed
// vector.
func ApplyMatrix(m mat.Matrix, v Vector3) Vector3 {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return Vector3{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}
