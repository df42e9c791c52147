package matrix

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwy-kernels/simdmat/hwy"
)

func TestMatMulInnerDimensionMismatch(t *testing.T) {
	a := filled(6, 1) // 3 wide, 2 high
	b := filled(8, 1) // 2 wide, 4 high: 3 != 4
	r := filled(4, 42)

	for _, vectorize := range []bool{false, true} {
		expectPrecondition(t, ErrShape, func() {
			MatMul(vectorize, a, b, 3, 2, 2, 4, r)
		})
	}
	// Rejected before anything was written.
	assert.Equal(t, []float32{42, 42, 42, 42}, r)

	err := ValidateMatMul(a, b, 3, 2, 2, 4, r)
	require.ErrorIs(t, err, ErrShape)
	assert.Contains(t, err.Error(), "A width 3 != B height 4")
}

func TestMatMulTransposedInnerDimensionMismatch(t *testing.T) {
	a := filled(6, 1) // 3 wide, 2 high
	b := filled(8, 1) // 4 wide, 2 high: 3 != 4
	r := filled(4, 42)

	for _, vectorize := range []bool{false, true} {
		expectPrecondition(t, ErrShape, func() {
			MatMulTransposed(vectorize, a, b, 3, 2, 4, 2, r)
		})
	}
	assert.Equal(t, []float32{42, 42, 42, 42}, r)

	err := ValidateMatMulTransposed(a, b, 3, 2, 4, 2, r)
	require.ErrorIs(t, err, ErrShape)
	assert.Contains(t, err.Error(), "A width 3 != B width 4")
}

func TestNonPositiveDimensions(t *testing.T) {
	buf := filled(16, 1)
	r := filled(16, 0)

	cases := []struct {
		name string
		fn   func()
	}{
		{"Add zero width", func() { Add(true, buf, buf, 0, 4, r) }},
		{"Sub negative height", func() { Sub(false, buf, buf, 4, -1, r) }},
		{"MatMul zero h1", func() { MatMul(true, buf, buf, 2, 0, 2, 2, r) }},
		{"MatMul zero w2", func() { MatMul(false, buf, buf, 2, 2, 0, 2, r) }},
		{"MatMulTransposed zero h2", func() { MatMulTransposed(true, buf, buf, 2, 2, 2, 0, r) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			expectPrecondition(t, ErrShape, c.fn)
		})
	}
}

func TestShapeOverflow(t *testing.T) {
	// huge*huge is exactly 2^IntSize, which wraps to 0.
	const huge = 1 << (strconv.IntSize / 2)
	// half*3 wraps to a negative int.
	const half = math.MaxInt/2 + 1

	buf := filled(4, 1)
	r := filled(4, -1)

	require.ErrorIs(t, ValidateElementwise(buf, buf, huge, huge, r), ErrShape)
	require.ErrorIs(t, ValidateElementwise(buf, buf, half, 3, r), ErrShape)
	require.ErrorIs(t, ValidateMatMul(buf, buf, huge, huge, huge, huge, r), ErrShape)
	require.ErrorIs(t, ValidateMatMulTransposed(buf, buf, 1, 3, 1, half, r), ErrShape)

	cases := []struct {
		name string
		fn   func()
	}{
		{"Add", func() { Add(false, buf, buf, huge, huge, r) }},
		{"Sub", func() { Sub(true, buf, buf, half, 3, r) }},
		{"MatMul", func() { MatMul(false, buf, buf, huge, huge, huge, huge, r) }},
		{"MatMul result", func() { MatMul(true, buf, buf, 1, half, 3, 1, r) }},
		{"MatMulTransposed", func() { MatMulTransposed(false, buf, buf, huge, huge, huge, huge, r) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			expectPrecondition(t, ErrShape, c.fn)
		})
	}
	assert.Equal(t, []float32{-1, -1, -1, -1}, r)
}

func TestNilBuffers(t *testing.T) {
	buf := filled(4, 1)

	expectPrecondition(t, ErrNilBuffer, func() { Add(false, nil, buf, 2, 2, buf) })
	expectPrecondition(t, ErrNilBuffer, func() { Sub(true, buf, nil, 2, 2, buf) })
	expectPrecondition(t, ErrNilBuffer, func() { MatMul(false, buf, buf, 2, 2, 2, 2, nil) })
	expectPrecondition(t, ErrNilBuffer, func() { MatMulTransposed(true, nil, buf, 2, 2, 2, 2, make([]float32, 4)) })
}

func TestShortBuffers(t *testing.T) {
	short := filled(3, 1)
	ok := filled(4, 1)

	expectPrecondition(t, ErrShape, func() { Add(false, short, ok, 2, 2, make([]float32, 4)) })
	expectPrecondition(t, ErrShape, func() { Sub(false, ok, ok, 2, 2, make([]float32, 3)) })
	expectPrecondition(t, ErrShape, func() { MatMul(false, ok, short, 2, 2, 2, 2, make([]float32, 4)) })
	expectPrecondition(t, ErrShape, func() { MatMulTransposed(false, ok, ok, 2, 2, 2, 2, make([]float32, 3)) })
}

func TestOverlap(t *testing.T) {
	buf := filled(12, 1)

	// Elementwise ops accept exact aliasing...
	require.NoError(t, ValidateElementwise(buf[:4], buf[4:8], 2, 2, buf[:4]))
	Add(true, buf[:4], buf[4:8], 2, 2, buf[:4])
	assert.Equal(t, []float32{2, 2, 2, 2}, buf[:4])

	// ...but not a shifted window.
	expectPrecondition(t, ErrOverlap, func() { Add(false, buf[:4], buf[4:8], 2, 2, buf[2:6]) })
	expectPrecondition(t, ErrOverlap, func() { Sub(false, buf[:4], buf[4:8], 2, 2, buf[5:9]) })

	// Products accept no aliasing at all.
	a := filled(4, 1)
	expectPrecondition(t, ErrOverlap, func() { MatMul(false, a, filled(4, 1), 2, 2, 2, 2, a) })
	b := filled(4, 1)
	expectPrecondition(t, ErrOverlap, func() { MatMulTransposed(false, filled(4, 1), b, 2, 2, 2, 2, b) })

	// Adjacent, non-overlapping regions are fine.
	wide := filled(8, 1)
	require.NoError(t, ValidateMatMul(wide[:2], wide[2:4], 1, 2, 2, 1, wide[4:8]))
}

func TestWideBackendAlignment(t *testing.T) {
	if !Supported(BackendWide) {
		t.Skip("wide backend cannot run here")
	}

	base := hwy.AlignedFloat32s(20, 32)
	misaligned := base[1:17] // 4 bytes past a 32-byte boundary
	good := hwy.AlignedFloat32s(16, 32)
	r := make([]float32, 16)

	expectPrecondition(t, ErrMisaligned, func() {
		MatMulWith(BackendWide, misaligned, good, 4, 4, 4, 4, r)
	})
	expectPrecondition(t, ErrMisaligned, func() {
		MatMulTransposedWith(BackendWide, good, misaligned, 4, 4, 4, 4, r)
	})

	// B of the general product is staged, so it may be misaligned.
	assert.NotPanics(t, func() { MatMulWith(BackendWide, good, misaligned, 4, 4, 4, 4, r) })

	// Narrow and scalar backends accept any alignment.
	for _, b := range []Backend{BackendScalar, BackendNarrow} {
		if !Supported(b) {
			continue
		}
		assert.NotPanics(t, func() { MatMulWith(b, misaligned, misaligned, 4, 4, 4, 4, r) }, b.String())
		assert.NotPanics(t, func() { MatMulTransposedWith(b, misaligned, misaligned, 4, 4, 4, 4, r) }, b.String())
	}

	// Elementwise wide kernels load unaligned.
	assert.NotPanics(t, func() { AddWith(BackendWide, misaligned, misaligned, 4, 4, r) })
}

func TestUnsupportedBackend(t *testing.T) {
	buf := filled(4, 1)
	expectPrecondition(t, ErrUnsupportedBackend, func() {
		AddWith(Backend(42), buf, buf, 2, 2, make([]float32, 4))
	})
}

func TestPreconditionErrorFormat(t *testing.T) {
	err := capturePanic(func() { Add(false, filled(4, 1), filled(4, 1), 3, 3, make([]float32, 9)) })
	require.Error(t, err)

	var pe *PreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, opAdd, pe.Op)
	assert.Equal(t, "matrix.Add: shape mismatch: A has 4 elements, shape needs 9", err.Error())
}
