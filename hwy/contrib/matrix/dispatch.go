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

// Add computes r = a + b elementwise for two width x height matrices.
//
// With vectorize set, the call runs on Preferred(); otherwise on the scalar
// backend. r may be exactly a or b, but must not partially overlap either.
// Panics with a *PreconditionError if the contract is violated.
func Add(vectorize bool, a, b []float32, width, height int, r []float32) {
	AddWith(Resolve(vectorize), a, b, width, height, r)
}

// Sub computes r = a - b elementwise for two width x height matrices.
// See Add for the dispatch and aliasing rules.
func Sub(vectorize bool, a, b []float32, width, height int, r []float32) {
	SubWith(Resolve(vectorize), a, b, width, height, r)
}

// MatMul computes R = A * B where:
//   - A is w1 wide and h1 high (row-major)
//   - B is w2 wide and h2 high (row-major), with w1 == h2
//   - R is w2 wide and h1 high (row-major)
//
// With vectorize set, the call runs on Preferred(); otherwise on the scalar
// backend. The vector backends sum in a different order than the scalar one,
// so results can differ in the low bits (well within 1e-4 relative).
// On the wide backend, a must start on a 32-byte boundary.
//
// Example:
//
//	// [[1,2],[3,4]] * [[5,6],[7,8]] = [[19,22],[43,50]]
//	a := hwy.AlignedFloat32s(4, 32)
//	copy(a, []float32{1, 2, 3, 4})
//	r := make([]float32, 4)
//	matrix.MatMul(true, a, []float32{5, 6, 7, 8}, 2, 2, 2, 2, r)
func MatMul(vectorize bool, a, b []float32, w1, h1, w2, h2 int, r []float32) {
	MatMulWith(Resolve(vectorize), a, b, w1, h1, w2, h2, r)
}

// MatMulTransposed computes R = A * B^T where:
//   - A is w1 wide and h1 high (row-major)
//   - B is w2 wide and h2 high (row-major), with w1 == w2
//   - R is h2 wide and h1 high (row-major)
//
// Each output element is the dot product of a row of A and a row of B.
// On the wide backend, both a and b must start on a 32-byte boundary.
func MatMulTransposed(vectorize bool, a, b []float32, w1, h1, w2, h2 int, r []float32) {
	MatMulTransposedWith(Resolve(vectorize), a, b, w1, h1, w2, h2, r)
}

// AddWith is Add on an explicitly chosen backend.
func AddWith(backend Backend, a, b []float32, width, height int, r []float32) {
	must(validateElementwise(opAdd, a, b, width, height, r))
	n := width * height
	kernelsFor(opAdd, backend).add(a[:n], b[:n], r[:n])
}

// SubWith is Sub on an explicitly chosen backend.
func SubWith(backend Backend, a, b []float32, width, height int, r []float32) {
	must(validateElementwise(opSub, a, b, width, height, r))
	n := width * height
	kernelsFor(opSub, backend).sub(a[:n], b[:n], r[:n])
}

// MatMulWith is MatMul on an explicitly chosen backend.
func MatMulWith(backend Backend, a, b []float32, w1, h1, w2, h2 int, r []float32) {
	must(ValidateMatMul(a, b, w1, h1, w2, h2, r))
	k := kernelsFor(opMatMul, backend)
	checkProductAlignment(opMatMul, backend, a, nil)
	k.matMul(a[:w1*h1], b[:w2*h2], r[:w2*h1], w1, h1, w2)
}

// MatMulTransposedWith is MatMulTransposed on an explicitly chosen backend.
func MatMulTransposedWith(backend Backend, a, b []float32, w1, h1, w2, h2 int, r []float32) {
	must(ValidateMatMulTransposed(a, b, w1, h1, w2, h2, r))
	k := kernelsFor(opMatMulTransposed, backend)
	checkProductAlignment(opMatMulTransposed, backend, a, b)
	k.matMulT(a[:w1*h1], b[:w2*h2], r[:h2*h1], w1, h1, h2)
}

// checkProductAlignment enforces the wide backend's 32-byte alignment on A
// and, when non-nil, on B. Other backends load unaligned.
func checkProductAlignment(op string, backend Backend, a, b []float32) {
	if backend != BackendWide {
		return
	}
	checkAligned(op, "A", a)
	if b != nil {
		checkAligned(op, "B", b)
	}
}
