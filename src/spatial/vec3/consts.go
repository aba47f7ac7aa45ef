package vec3

const (
	// Epsilon is DBL_EPSILON, the spacing between 1.0 and the next float64.
	//
	// WARNING: this is a unit-roundoff bound, not a general-purpose
	// comparison tolerance; errors accumulate across the ~30 multiplies of a
	// rotation, so comparisons use a small multiple of it.
	Epsilon = 2.220446049250313e-16
)
