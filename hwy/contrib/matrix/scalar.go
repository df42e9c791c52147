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

// The scalar kernels define the reference semantics. The vector backends
// reproduce add and sub bit for bit; for the products they sum in a different
// order and may differ in the last bits.

// addScalar computes r[i] = a[i] + b[i] for every i in r.
// Also used for the tails of the vector backends.
func addScalar(a, b, r []float32) {
	a = a[:len(r)]
	b = b[:len(r)]
	for i := range r {
		r[i] = a[i] + b[i]
	}
}

// subScalar computes r[i] = a[i] - b[i] for every i in r.
func subScalar(a, b, r []float32) {
	a = a[:len(r)]
	b = b[:len(r)]
	for i := range r {
		r[i] = a[i] - b[i]
	}
}

// matMulScalar computes R = A * B where:
//   - A is h1 rows of w1 (row-major)
//   - B is w1 rows of w2 (row-major)
//   - R is h1 rows of w2 (row-major)
//
// R[j,i] = sum(A[j,k] * B[k,i]) for k ascending.
func matMulScalar(a, b, r []float32, w1, h1, w2 int) {
	for i := range w2 {
		for j := range h1 {
			row := a[j*w1 : (j+1)*w1]
			var sum float32
			for k, x := range row {
				sum += float32(x * b[k*w2+i])
			}
			r[j*w2+i] = sum
		}
	}
}

// matMulTransposedScalar computes R = A * B^T where:
//   - A is h1 rows of w1 (row-major)
//   - B is h2 rows of w1 (row-major, already transposed)
//   - R is h1 rows of h2 (row-major)
//
// R[j,i] = dot(A[j,:], B[i,:]), summed with k ascending.
func matMulTransposedScalar(a, b, r []float32, w1, h1, h2 int) {
	for j := range h1 {
		aRow := a[j*w1 : (j+1)*w1]
		for i := range h2 {
			r[j*h2+i] = accumulateTail(0, aRow, b[i*w1:(i+1)*w1], 0)
		}
	}
}

// accumulateTail adds x[k]*y[k] for k in [from, len(x)) to sum, in order.
// The product is rounded before the add so the compiler cannot fuse it.
func accumulateTail(sum float32, x, y []float32, from int) float32 {
	y = y[:len(x)]
	for k := from; k < len(x); k++ {
		sum += float32(x[k] * y[k])
	}
	return sum
}
