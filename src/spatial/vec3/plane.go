package vec3

// Plane is a half-space boundary: points p with N.Dot(p) + D = 0 lie on it,
// negative side is inside.
type Plane struct {
	N Vector3
	D float64
}

// Side is the signed distance of p from the plane, scaled by |N|.
func (pl Plane) Side(p Vector3) float64 {
	return pl.N.Dot(p) + pl.D
}

// PointInsidePlanes reports whether p lies at least margin inside every
// half-space.
func PointInsidePlanes(planes []Plane, p Vector3, margin float64) bool {
	for i := 0; i < len(planes); i++ {
		if planes[i].Side(p)-margin > 0 {
			return false
		}
	}
	return true
}

// PointsBehindPlane reports whether every point lies at least margin behind
// the plane.
func PointsBehindPlane(pl Plane, points []Vector3, margin float64) bool {
	for i := 0; i < len(points); i++ {
		if pl.Side(points[i])-margin > 0 {
			return false
		}
	}
	return true
}
