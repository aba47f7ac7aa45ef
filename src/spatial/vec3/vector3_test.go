package vec3

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// tol absorbs the rounding of the ~30 multiplies inside a rotation.
const tol = 1e4 * Epsilon

func requireVec(t *testing.T, want, got Vector3) {
	t.Helper()
	require.InDelta(t, want.X, got.X, tol)
	require.InDelta(t, want.Y, got.Y, tol)
	require.InDelta(t, want.Z, got.Z, tol)
}

func TestDot(t *testing.T) {
	for idx, tc := range []struct {
		a, b Vector3
		want float64
	}{
		{New(1, 2, 3), New(4, 5, 6), 32},
		{New(1, 0, 0), New(0, 1, 0), 0},
		{New(-1, 2, -3), New(1, 2, 3), -6},
		{Origin(), New(4, 5, 6), 0},
	} {
		t.Run(fmt.Sprintf("%d/%v.%v", idx, tc.a, tc.b), func(t *testing.T) {
			require.InDelta(t, tc.want, tc.a.Dot(tc.b), tol)
			require.InDelta(t, tc.a.Dot(tc.b), tc.b.Dot(tc.a), tol)
		})
	}
}

func TestCross(t *testing.T) {
	for idx, tc := range []struct {
		a, b, want Vector3
	}{
		{New(1, 0, 0), New(0, 1, 0), New(0, 0, 1)},
		{New(0, 1, 0), New(0, 0, 1), New(1, 0, 0)},
		{New(0, 0, 1), New(1, 0, 0), New(0, 1, 0)},
		{New(1, 2, 3), New(4, 5, 6), New(-3, 6, -3)},
		{New(1, 2, 3), New(2, 4, 6), Origin()}, // parallel
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			got := tc.a.Cross(tc.b)
			requireVec(t, tc.want, got)
			requireVec(t, got.Neg(), tc.b.Cross(tc.a))
			require.InDelta(t, 0, tc.a.Dot(got), tol)
			require.InDelta(t, 0, tc.b.Dot(got), tol)
		})
	}
}

func TestAngles(t *testing.T) {
	v := New(3, 4, 5)
	require.InDelta(t, 5.0, v.Rho(), tol)
	require.InDelta(t, math.Atan2(5, 5), v.Theta(), tol)
	require.InDelta(t, math.Atan2(4, 3), v.Phi(), tol)
	require.InDelta(t, 1.0, v.CotTheta(), tol)

	require.InDelta(t, math.Pi/2, New(1, 0, 0).Theta(), tol)
	require.InDelta(t, 0.0, New(0, 0, 2).Theta(), tol)
	require.InDelta(t, math.Pi, New(0, 0, -2).Theta(), tol)
}

func TestCotThetaZeroZ(t *testing.T) {
	require.True(t, math.IsInf(New(1, 0, 0).CotTheta(), 1))
	require.True(t, math.IsInf(New(-3, 4, 0).CotTheta(), 1))
	require.True(t, math.IsNaN(Origin().CotTheta()))
}

func TestUnit(t *testing.T) {
	u := New(3, 4, 12).Unit()
	require.InDelta(t, 1.0, u.Mag(), tol)
	requireVec(t, New(3.0/13, 4.0/13, 12.0/13), u)
}

func TestRotateAxisIdentity(t *testing.T) {
	vectors := []Vector3{New(1, 2, 3), New(-4, 0.5, 2), New(0, 0, 1)}
	axes := []Vector3{New(0, 0, 1), New(1, 1, 1), New(-2, 3, 0.5)}
	for _, v := range vectors {
		for _, axis := range axes {
			requireVec(t, v, v.RotateAxis(axis, 0))
			requireVec(t, v, v.RotateAxis(axis, 2*math.Pi))
		}
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	got := New(1, 0, 0).RotateAxis(New(0, 0, 1), math.Pi/2)
	requireVec(t, New(0, 1, 0), got)
}

func TestRotateAxisPreservesMag(t *testing.T) {
	v := New(1.5, -2.5, 3.5)
	for _, angle := range []float64{0.1, 1, math.Pi, 5} {
		got := v.RotateAxis(New(1, -1, 2), angle)
		require.InDelta(t, v.Mag(), got.Mag(), tol)
	}
}

func TestRotateAxisUnnormalizedAxis(t *testing.T) {
	// scaling the axis must not change the rotation
	v := New(1, 2, 3)
	a := v.RotateAxis(New(0, 0, 1), 1.25)
	b := v.RotateAxis(New(0, 0, 10), 1.25)
	requireVec(t, a, b)
}

func TestRotateXYZ(t *testing.T) {
	v := New(1, 2, 3)
	for _, angle := range []float64{0.3, -1.1, math.Pi / 3} {
		requireVec(t, v.RotateAxis(New(1, 0, 0), angle), v.RotateX(angle))
		requireVec(t, v.RotateAxis(New(0, 1, 0), angle), v.RotateY(angle))
		requireVec(t, v.RotateAxis(New(0, 0, 1), angle), v.RotateZ(angle))
	}
}

func TestRotateEuler(t *testing.T) {
	v := New(1.5, -0.5, 2)

	t.Run("identity", func(t *testing.T) {
		requireVec(t, v, v.RotateEuler(0, 0, 0))
	})
	t.Run("phi only is a Z rotation", func(t *testing.T) {
		requireVec(t, v.RotateZ(0.7), v.RotateEuler(0.7, 0, 0))
	})
	t.Run("theta only is a Y rotation", func(t *testing.T) {
		requireVec(t, v.RotateY(-1.2), v.RotateEuler(0, -1.2, 0))
	})
	t.Run("psi only is a Z rotation", func(t *testing.T) {
		requireVec(t, v.RotateZ(0.4), v.RotateEuler(0, 0, 0.4))
	})
	t.Run("matches matrix form", func(t *testing.T) {
		m := EulerMatrix(0.7, -1.2, 0.4)
		requireVec(t, ApplyMatrix(m, v), v.RotateEuler(0.7, -1.2, 0.4))
	})
	t.Run("preserves magnitude", func(t *testing.T) {
		require.InDelta(t, v.Mag(), v.RotateEuler(0.7, -1.2, 0.4).Mag(), tol)
	})
}

func TestAxisMatrixMatchesRotateAxis(t *testing.T) {
	v := New(1, 2, 3)
	axis := New(1, -1, 0.5)
	m := AxisMatrix(axis, 0.9)
	requireVec(t, ApplyMatrix(m, v), v.RotateAxis(axis, 0.9))
}

func TestFromSpherical(t *testing.T) {
	for idx, tc := range []struct {
		r, theta, phi float64
	}{
		{1, 0, 0},
		{1, math.Pi / 2, 0},
		{2.5, math.Pi / 3, math.Pi / 4},
		{10, math.Pi, 1},
		{0, 1, 1},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			v := FromSpherical(tc.r, tc.theta, tc.phi)
			require.InDelta(t, tc.r, v.Mag(), tol)
			if tc.r > 0 && tc.theta > 0 && tc.theta < math.Pi {
				require.InDelta(t, tc.theta, v.Theta(), tol)
				require.InDelta(t, tc.phi, v.Phi(), tol)
			}
		})
	}

	requireVec(t, New(1, 0, 0), FromSpherical(1, math.Pi/2, 0))
	requireVec(t, New(0, 0, 1), FromSpherical(1, 0, 0))
}

func TestFromCylindrical(t *testing.T) {
	v := FromCylindrical(2, math.Pi/6, -3)
	require.InDelta(t, 2.0, v.Rho(), tol)
	require.InDelta(t, math.Pi/6, v.Phi(), tol)
	require.InDelta(t, -3.0, v.Z, tol)
}

func TestOrigin(t *testing.T) {
	require.Equal(t, Vector3{}, Origin())
}

func TestArithmetic(t *testing.T) {
	a, b := New(1, 2, 3), New(4, 5, 6)
	require.Equal(t, New(5, 7, 9), a.Add(b))
	require.Equal(t, New(-3, -3, -3), a.Sub(b))
	require.Equal(t, New(2, 4, 6), a.Scale(2))
	require.Equal(t, New(-1, -2, -3), a.Neg())
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		v    Vector3
		want string
	}{
		{New(1, 2, 3), "Vector3(1.000, 2.000, 3.000)"},
		{New(1.23456, -2, 0.0001), "Vector3(1.235, -2.000, 0.0001000)"},
		{Origin(), "Vector3(0.000, 0.000, 0.000)"},
	} {
		require.Equal(t, tc.want, tc.v.String())
		require.Equal(t, tc.v.String(), tc.v.String()) // idempotent
	}
}

func TestR3RoundTrip(t *testing.T) {
	v := New(1.5, -2.5, 3.5)
	require.Equal(t, v, FromR3(v.R3()))
}

// offset embeds Vector3; Make returns offset so kernel-derived values keep
// the concrete kind.
type offset struct {
	Vector3
}

func (offset) Make(x, y, z float64) offset {
	return offset{Vector3{X: x, Y: y, Z: z}}
}

func TestMakerReconstruction(t *testing.T) {
	o := offset{New(1, 0, 0)}
	rotated := RotateAxisAs[offset](o, o.Vector3, New(0, 0, 1), math.Pi/2)
	requireVec(t, New(0, 1, 0), rotated.Vector3)

	crossed := CrossAs[offset](o, New(1, 0, 0), New(0, 1, 0))
	requireVec(t, New(0, 0, 1), crossed.Vector3)
}

func TestPlanePredicates(t *testing.T) {
	// unit box around the origin
	planes := []Plane{
		{N: New(1, 0, 0), D: -1},
		{N: New(-1, 0, 0), D: -1},
		{N: New(0, 1, 0), D: -1},
		{N: New(0, -1, 0), D: -1},
		{N: New(0, 0, 1), D: -1},
		{N: New(0, 0, -1), D: -1},
	}
	require.True(t, PointInsidePlanes(planes, Origin(), 0))
	require.True(t, PointInsidePlanes(planes, New(0.5, -0.5, 0.5), 0))
	require.False(t, PointInsidePlanes(planes, New(2, 0, 0), 0))
	require.False(t, PointInsidePlanes(planes, New(0.95, 0, 0), 0.1))

	pl := Plane{N: New(0, 0, 1), D: 0}
	require.True(t, PointsBehindPlane(pl, []Vector3{New(1, 1, -1), New(0, 0, -5)}, 0))
	require.False(t, PointsBehindPlane(pl, []Vector3{New(0, 0, -1), New(0, 0, 1)}, 0))
}
