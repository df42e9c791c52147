// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matrix

import (
	"math"
	"unsafe"

	"github.com/hwy-kernels/simdmat/hwy"
)

const (
	opAdd              = "matrix.Add"
	opSub              = "matrix.Sub"
	opMatMul           = "matrix.MatMul"
	opMatMulTransposed = "matrix.MatMulTransposed"
	opElementwise      = "matrix.Elementwise"
)

// wideAlignment is the byte boundary the 256-bit backend expects its
// directly loaded operands to start on.
const wideAlignment = 32

// ValidateElementwise checks the contract of Add and Sub: non-nil buffers,
// positive dimensions, buffers covering width*height elements, and an output
// that is either disjoint from each input or exactly the same region.
func ValidateElementwise(a, b []float32, width, height int, r []float32) error {
	return validateElementwise(opElementwise, a, b, width, height, r)
}

func validateElementwise(op string, a, b []float32, width, height int, r []float32) error {
	if err := checkNil(op, a, b, r); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return precondition(op, ErrShape, "dimensions must be positive, got %dx%d", width, height)
	}
	n, err := elements(op, "matrix", width, height)
	if err != nil {
		return err
	}
	if err := checkLen(op, "A", a, n); err != nil {
		return err
	}
	if err := checkLen(op, "B", b, n); err != nil {
		return err
	}
	if err := checkLen(op, "result", r, n); err != nil {
		return err
	}
	// Exact self-aliasing is fine: every element is read before it is written.
	for _, in := range []struct {
		name string
		buf  []float32
	}{{"A", a[:n]}, {"B", b[:n]}} {
		if overlaps(r[:n], in.buf) && !sameRegion(r[:n], in.buf) {
			return precondition(op, ErrOverlap, "result partially overlaps %s", in.name)
		}
	}
	return nil
}

// ValidateMatMul checks the contract of MatMul: A is w1 x h1, B is w2 x h2,
// w1 == h2, the result holds w2*h1 elements and shares no memory with A or B.
func ValidateMatMul(a, b []float32, w1, h1, w2, h2 int, r []float32) error {
	op := opMatMul
	if err := checkNil(op, a, b, r); err != nil {
		return err
	}
	if w1 <= 0 || h1 <= 0 || w2 <= 0 || h2 <= 0 {
		return precondition(op, ErrShape, "dimensions must be positive, got A %dx%d, B %dx%d", w1, h1, w2, h2)
	}
	if w1 != h2 {
		return precondition(op, ErrShape, "A width %d != B height %d", w1, h2)
	}
	return checkProduct(op, a, b, r, w1, h1, w2, h2, w2, h1)
}

// ValidateMatMulTransposed checks the contract of MatMulTransposed: A is
// w1 x h1, B is w2 x h2 stored with rows that line up with A's rows, so
// w1 == w2. The result holds h2*h1 elements and shares no memory with A or B.
func ValidateMatMulTransposed(a, b []float32, w1, h1, w2, h2 int, r []float32) error {
	op := opMatMulTransposed
	if err := checkNil(op, a, b, r); err != nil {
		return err
	}
	if w1 <= 0 || h1 <= 0 || w2 <= 0 || h2 <= 0 {
		return precondition(op, ErrShape, "dimensions must be positive, got A %dx%d, B %dx%d", w1, h1, w2, h2)
	}
	if w1 != w2 {
		return precondition(op, ErrShape, "A width %d != B width %d", w1, w2)
	}
	return checkProduct(op, a, b, r, w1, h1, w2, h2, h2, h1)
}

// checkProduct checks the three operands of a product, given as A w1 x h1,
// B w2 x h2 and a result wr x hr.
func checkProduct(op string, a, b, r []float32, w1, h1, w2, h2, wr, hr int) error {
	na, err := elements(op, "A", w1, h1)
	if err != nil {
		return err
	}
	nb, err := elements(op, "B", w2, h2)
	if err != nil {
		return err
	}
	nr, err := elements(op, "result", wr, hr)
	if err != nil {
		return err
	}
	if err := checkLen(op, "A", a, na); err != nil {
		return err
	}
	if err := checkLen(op, "B", b, nb); err != nil {
		return err
	}
	if err := checkLen(op, "result", r, nr); err != nil {
		return err
	}
	if overlaps(r[:nr], a[:na]) {
		return precondition(op, ErrOverlap, "result overlaps A")
	}
	if overlaps(r[:nr], b[:nb]) {
		return precondition(op, ErrOverlap, "result overlaps B")
	}
	return nil
}

func checkNil(op string, a, b, r []float32) error {
	switch {
	case a == nil:
		return precondition(op, ErrNilBuffer, "A is nil")
	case b == nil:
		return precondition(op, ErrNilBuffer, "B is nil")
	case r == nil:
		return precondition(op, ErrNilBuffer, "result is nil")
	}
	return nil
}

// elements returns width*height for positive dimensions, or ErrShape when
// the product does not fit in an int.
func elements(op, name string, width, height int) (int, error) {
	if width > math.MaxInt/height {
		return 0, precondition(op, ErrShape, "%s of %dx%d elements overflows int", name, width, height)
	}
	return width * height, nil
}

func checkLen(op, name string, s []float32, want int) error {
	if len(s) < want {
		return precondition(op, ErrShape, "%s has %d elements, shape needs %d", name, len(s), want)
	}
	return nil
}

// checkAligned enforces the 256-bit backend's alignment contract.
func checkAligned(op, name string, s []float32) {
	if !hwy.IsAlignedPtr(s, wideAlignment) {
		panic(precondition(op, ErrMisaligned, "%s must start on a %d-byte boundary (use hwy.AlignedFloat32s)", name, wideAlignment))
	}
}

// must panics with err if it is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

func byteSpan(s []float32) (lo, hi uintptr) {
	lo = uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return lo, lo + uintptr(len(s))*unsafe.Sizeof(float32(0))
}

// overlaps reports whether x and y share any element.
func overlaps(x, y []float32) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	xl, xh := byteSpan(x)
	yl, yh := byteSpan(y)
	return xl < yh && yl < xh
}

// sameRegion reports whether x and y are exactly the same elements.
func sameRegion(x, y []float32) bool {
	return len(x) == len(y) && unsafe.SliceData(x) == unsafe.SliceData(y)
}
