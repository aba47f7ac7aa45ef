package vec3

// triple carries one coordinate set through the kernel. E is float64 for the
// scalar form and []float64 for the batched form; the kernel body never
// knows which.
type triple[E any] struct {
	x, y, z E
}

// Ops is the arithmetic the kernel is allowed to use. Each representation
// supplies one instance (scalarOps, columnOps); everything below is written
// against it and nothing else.
type Ops[E any] struct {
	Add  func(a, b E) E
	Sub  func(a, b E) E
	Mul  func(a, b E) E
	Div  func(a, b E) E
	Neg  func(a E) E
	One  func(like E) E
	Sqrt func(a E) E
	Sin  func(a E) E
	Cos  func(a E) E
}

func dot[E any](o Ops[E], a, b triple[E]) E {
	out := o.Mul(a.x, b.x)
	out = o.Add(out, o.Mul(a.y, b.y))
	out = o.Add(out, o.Mul(a.z, b.z))
	return out
}

func cross[E any](o Ops[E], a, b triple[E]) triple[E] {
	return triple[E]{
		x: o.Sub(o.Mul(a.y, b.z), o.Mul(a.z, b.y)), // y * b.z - z * b.y
		y: o.Sub(o.Mul(a.z, b.x), o.Mul(a.x, b.z)), // z * b.x - x * b.z
		z: o.Sub(o.Mul(a.x, b.y), o.Mul(a.y, b.x)), // x * b.y - y * b.x
	}
}

func rho2[E any](o Ops[E], v triple[E]) E {
	return o.Add(o.Mul(v.x, v.x), o.Mul(v.y, v.y))
}

// cotTheta is rho / z. z = 0 is not guarded; IEEE division propagates
// ±Inf or NaN to the caller.
func cotTheta[E any](o Ops[E], v triple[E]) E {
	return o.Div(o.Sqrt(rho2(o, v)), v.z)
}

// rotateAxis rotates v about axis by angle radians (right-hand rule) using
// the expanded Rodrigues matrix. axis is normalized here; a zero-magnitude
// axis propagates NaN.
func rotateAxis[E any](o Ops[E], v, axis triple[E], angle E) triple[E] {
	mag := o.Sqrt(dot(o, axis, axis))
	ux := o.Div(axis.x, mag)
	uy := o.Div(axis.y, mag)
	uz := o.Div(axis.z, mag)

	c := o.Cos(angle)
	s := o.Sin(angle)
	c1 := o.Sub(o.One(c), c)

	uuc := func(a, b E) E { return o.Mul(o.Mul(a, b), c1) }

	xx := o.Add(c, uuc(ux, ux))
	xy := o.Sub(uuc(ux, uy), o.Mul(uz, s))
	xz := o.Add(uuc(ux, uz), o.Mul(uy, s))
	yx := o.Add(uuc(ux, uy), o.Mul(uz, s))
	yy := o.Add(c, uuc(uy, uy))
	yz := o.Sub(uuc(uy, uz), o.Mul(ux, s))
	zx := o.Sub(uuc(ux, uz), o.Mul(uy, s))
	zy := o.Add(uuc(uy, uz), o.Mul(ux, s))
	zz := o.Add(c, uuc(uz, uz))

	return apply3(o, v, xx, xy, xz, yx, yy, yz, zx, zy, zz)
}

// rotateEuler applies the intrinsic Z(phi) -> Y(theta) -> Z(psi) rotation as
// one fused 3x3 transform, coefficients computed once from the three angles.
func rotateEuler[E any](o Ops[E], v triple[E], phi, theta, psi E) triple[E] {
	c1 := o.Cos(phi)
	s1 := o.Sin(phi)
	c2 := o.Cos(theta)
	s2 := o.Sin(theta)
	c3 := o.Cos(psi)
	s3 := o.Sin(psi)

	// row z: Z(phi) then Y(theta)
	zx := o.Neg(o.Mul(s2, c1)) // -s2*c1
	zy := o.Mul(s2, s1)        // s2*s1
	zz := c2

	// rows x, y: then Z(psi)
	xx := o.Sub(o.Mul(o.Mul(c3, c2), c1), o.Mul(s3, s1))        // c3*c2*c1 - s3*s1
	xy := o.Neg(o.Add(o.Mul(o.Mul(c3, c2), s1), o.Mul(s3, c1))) // -c3*c2*s1 - s3*c1
	xz := o.Mul(c3, s2)                                         // c3*s2
	yx := o.Add(o.Mul(o.Mul(s3, c2), c1), o.Mul(c3, s1))        // s3*c2*c1 + c3*s1
	yy := o.Sub(o.Mul(c3, c1), o.Mul(o.Mul(s3, c2), s1))        // -s3*c2*s1 + c3*c1
	yz := o.Mul(s3, s2)                                         // s3*s2

	return apply3(o, v, xx, xy, xz, yx, yy, yz, zx, zy, zz)
}

func apply3[E any](o Ops[E], v triple[E], xx, xy, xz, yx, yy, yz, zx, zy, zz E) triple[E] {
	return triple[E]{
		x: o.Add(o.Add(o.Mul(xx, v.x), o.Mul(xy, v.y)), o.Mul(xz, v.z)),
		y: o.Add(o.Add(o.Mul(yx, v.x), o.Mul(yy, v.y)), o.Mul(yz, v.z)),
		z: o.Add(o.Add(o.Mul(zx, v.x), o.Mul(zy, v.y)), o.Mul(zz, v.z)),
	}
}
