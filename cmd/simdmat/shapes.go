package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/pflag"

	"github.com/hwy-kernels/simdmat/hwy"
	"github.com/hwy-kernels/simdmat/hwy/contrib/matrix"
)

// Operation names accepted by --op.
const (
	opAdd     = "add"
	opSub     = "sub"
	opMatMul  = "matmul"
	opMatMulT = "matmul-t"
)

var operations = []string{opAdd, opSub, opMatMul, opMatMulT}

// shape is the problem size: A is m x k, B is k x n (or n x k for matmul-t),
// and elementwise operations work on m x n.
type shape struct {
	m, n, k int
}

func addShapeFlags(fs *pflag.FlagSet, s *shape, def int) {
	fs.IntVar(&s.m, "m", def, "rows of A and of the result")
	fs.IntVar(&s.n, "n", def, "columns of the result")
	fs.IntVar(&s.k, "k", def, "inner dimension (columns of A)")
}

func (s shape) String() string {
	return fmt.Sprintf("m=%d n=%d k=%d", s.m, s.n, s.k)
}

// problem is one set of operands for an operation, allocated on 32-byte
// boundaries so that every backend accepts it.
type problem struct {
	op   string
	s    shape
	a, b []float32
	r    []float32
}

func newProblem(op string, s shape, rng *rand.Rand) (*problem, error) {
	p := &problem{op: op, s: s}
	switch op {
	case opAdd, opSub:
		p.a = randomMatrix(rng, s.m*s.n)
		p.b = randomMatrix(rng, s.m*s.n)
		p.r = hwy.AlignedFloat32s(s.m*s.n, 32)
	case opMatMul, opMatMulT:
		p.a = randomMatrix(rng, s.m*s.k)
		p.b = randomMatrix(rng, s.k*s.n)
		p.r = hwy.AlignedFloat32s(s.m*s.n, 32)
	default:
		return nil, fmt.Errorf("unknown --op %q (want one of %s)", op, strings.Join(operations, ", "))
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func randomMatrix(rng *rand.Rand, n int) []float32 {
	s := hwy.AlignedFloat32s(n, 32)
	for i := range s {
		s[i] = rng.Float32()*2 - 1
	}
	return s
}

func (p *problem) validate() error {
	s := p.s
	switch p.op {
	case opAdd, opSub:
		return matrix.ValidateElementwise(p.a, p.b, s.n, s.m, p.r)
	case opMatMul:
		return matrix.ValidateMatMul(p.a, p.b, s.k, s.m, s.n, s.k, p.r)
	default:
		return matrix.ValidateMatMulTransposed(p.a, p.b, s.k, s.m, s.k, s.n, p.r)
	}
}

// run computes the operation into r on backend.
func (p *problem) run(backend matrix.Backend) {
	p.runInto(backend, p.r)
}

func (p *problem) runInto(backend matrix.Backend, r []float32) {
	s := p.s
	switch p.op {
	case opAdd:
		matrix.AddWith(backend, p.a, p.b, s.n, s.m, r)
	case opSub:
		matrix.SubWith(backend, p.a, p.b, s.n, s.m, r)
	case opMatMul:
		matrix.MatMulWith(backend, p.a, p.b, s.k, s.m, s.n, s.k, r)
	case opMatMulT:
		matrix.MatMulTransposedWith(backend, p.a, p.b, s.k, s.m, s.k, s.n, r)
	}
}

// flops is the floating-point operation count of one run.
func (p *problem) flops() float64 {
	s := p.s
	if p.op == opMatMul || p.op == opMatMulT {
		return 2 * float64(s.m) * float64(s.n) * float64(s.k)
	}
	return float64(s.m) * float64(s.n)
}
