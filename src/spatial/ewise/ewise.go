// Package ewise provides elementwise numeric primitives over []float64
// columns. Binary primitives require aligned lengths; gonum panics on
// mismatch, which is the caller's contract to uphold.
package ewise

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

func Add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	floats.AddTo(out, a, b)
	return out
}

func Sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	floats.SubTo(out, a, b)
	return out
}

func Mul(a, b []float64) []float64 {
	out := make([]float64, len(a))
	floats.MulTo(out, a, b)
	return out
}

// Div divides elementwise. A zero divisor yields ±Inf or NaN per IEEE 754,
// never a fault.
func Div(a, b []float64) []float64 {
	out := make([]float64, len(a))
	floats.DivTo(out, a, b)
	return out
}

func Scale(a []float64, s float64) []float64 {
	out := make([]float64, len(a))
	floats.ScaleTo(out, s, a)
	return out
}

func Neg(a []float64) []float64 {
	return Scale(a, -1)
}

func Abs(a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = math.Abs(v)
	}
	return out
}

func Sqrt(a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = math.Sqrt(v)
	}
	return out
}

func Sin(a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = math.Sin(v)
	}
	return out
}

func Cos(a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = math.Cos(v)
	}
	return out
}

func Atan2(y, x []float64) []float64 {
	out := make([]float64, len(y))
	for i := range y {
		out[i] = math.Atan2(y[i], x[i])
	}
	return out
}

func Hypot(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = math.Hypot(a[i], b[i])
	}
	return out
}

// Modf splits each element into integer and fractional parts, both carrying
// the sign of the input.
func Modf(a []float64) (ipart, frac []float64) {
	ipart = make([]float64, len(a))
	frac = make([]float64, len(a))
	for i, v := range a {
		ipart[i], frac[i] = math.Modf(v)
	}
	return ipart, frac
}

func Zeros(n int) []float64 {
	return make([]float64, n)
}

// Full returns a length-n column with every element set to v.
func Full(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
