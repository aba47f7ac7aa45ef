package vec3

import (
	"errors"
	"fmt"

	"trivector/src/spatial/columnar"
	"trivector/src/spatial/ewise"
)

// Op enumerates the elementwise operators the dispatch table understands.
// Static dispatch over an enumerated table replaces the open-ended operator
// interception a dynamic runtime would allow.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpNeg
	OpAbs
	OpSqrt
	OpModf
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpNeg:
		return "neg"
	case OpAbs:
		return "abs"
	case OpSqrt:
		return "sqrt"
	case OpModf:
		return "modf"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Mode is the invocation mode. Only ModeApply computes; ModeReduce is
// rejected and ModeAt yields no result, since accumulation and partial row
// selection are ill-defined over a structured triple.
type Mode int

const (
	ModeApply Mode = iota
	ModeReduce
	ModeAt
)

var (
	ErrNotImplemented = errors.New("vec3: not implemented")
	ErrArity          = errors.New("vec3: operand count mismatch")
	ErrOperand        = errors.New("vec3: unsupported operand")
)

func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

type opEntry struct {
	arity int
	nout  int
	apply func(args [][]float64) [][]float64
}

var opTable = map[Op]opEntry{
	OpAdd: {2, 1, func(args [][]float64) [][]float64 {
		return [][]float64{ewise.Add(args[0], args[1])}
	}},
	OpSub: {2, 1, func(args [][]float64) [][]float64 {
		return [][]float64{ewise.Sub(args[0], args[1])}
	}},
	OpMul: {2, 1, func(args [][]float64) [][]float64 {
		return [][]float64{ewise.Mul(args[0], args[1])}
	}},
	OpDiv: {2, 1, func(args [][]float64) [][]float64 {
		return [][]float64{ewise.Div(args[0], args[1])}
	}},
	OpNeg: {1, 1, func(args [][]float64) [][]float64 {
		return [][]float64{ewise.Neg(args[0])}
	}},
	OpAbs: {1, 1, func(args [][]float64) [][]float64 {
		return [][]float64{ewise.Abs(args[0])}
	}},
	OpSqrt: {1, 1, func(args [][]float64) [][]float64 {
		return [][]float64{ewise.Sqrt(args[0])}
	}},
	// modf has two output channels and exercises the zip path below.
	OpModf: {1, 2, func(args [][]float64) [][]float64 {
		ipart, frac := ewise.Modf(args[0])
		return [][]float64{ipart, frac}
	}},
}

// Dispatch projects op onto the coordinate columns of its operands. Each
// *Array operand is split into its x, y, z columns; a float64 or aligned
// []float64 operand is broadcast unchanged into all three axis positions.
// The op then runs once per axis and the per-axis results are repacked into
// one new Array per output channel. Operands and receiver-like inputs are
// never mutated.
func Dispatch(mode Mode, op Op, operands ...any) ([]*Array, error) {
	if mode == ModeReduce {
		return nil, fmt.Errorf("%w: reduction over a vector batch", ErrNotImplemented)
	}
	entry, ok := opTable[op]
	if !ok {
		return nil, fmt.Errorf("%w: operator %v", ErrNotImplemented, op)
	}
	if len(operands) != entry.arity {
		return nil, fmt.Errorf("%w: %v takes %d operands, got %d",
			ErrArity, op, entry.arity, len(operands))
	}

	var ref *Array
	for _, operand := range operands {
		if a, ok := operand.(*Array); ok {
			ref = a
			break
		}
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: no vector batch among operands", ErrOperand)
	}
	n := ref.Len()

	xs := make([][]float64, len(operands))
	ys := make([][]float64, len(operands))
	zs := make([][]float64, len(operands))
	for i, operand := range operands {
		switch v := operand.(type) {
		case *Array:
			xs[i], ys[i], zs[i] = v.X(), v.Y(), v.Z()
		case float64:
			col := ewise.Full(n, v)
			xs[i], ys[i], zs[i] = col, col, col
		case []float64:
			if len(v) != n {
				return nil, fmt.Errorf("%w: operand %d has %d rows, batch has %d",
					columnar.ErrLength, i, len(v), n)
			}
			xs[i], ys[i], zs[i] = v, v, v
		default:
			return nil, fmt.Errorf("%w: %T", ErrOperand, operand)
		}
	}

	if mode == ModeAt {
		// Row selection yields no elementwise result.
		return nil, nil
	}

	resx := entry.apply(xs)
	resy := entry.apply(ys)
	resz := entry.apply(zs)

	out := make([]*Array, entry.nout)
	for k := range out {
		out[k] = ref.pack(triple[[]float64]{resx[k], resy[k], resz[k]})
	}
	return out, nil
}

func one(out []*Array, err error) *Array {
	if err != nil {
		panic(err)
	}
	return out[0]
}

// Arithmetic conveniences routed through the dispatch table. Misuse panics
// since the fixed op and operand kinds cannot produce a dispatch error.

func (a *Array) Add(b *Array) *Array {
	return one(Dispatch(ModeApply, OpAdd, a, b))
}

func (a *Array) Sub(b *Array) *Array {
	return one(Dispatch(ModeApply, OpSub, a, b))
}

func (a *Array) MulElem(b *Array) *Array {
	return one(Dispatch(ModeApply, OpMul, a, b))
}

func (a *Array) DivElem(b *Array) *Array {
	return one(Dispatch(ModeApply, OpDiv, a, b))
}

func (a *Array) ScaleBy(s float64) *Array {
	return one(Dispatch(ModeApply, OpMul, a, s))
}

func (a *Array) Neg() *Array {
	return one(Dispatch(ModeApply, OpNeg, a))
}
